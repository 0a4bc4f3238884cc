package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/colorpad-mcp/internal/bridge"
	"github.com/ironsheep/colorpad-mcp/internal/numeric"
)

func newDifferenceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "difference <format> <value> <format> <value>",
		Short: "Measure the perceptual difference between two colors",
		Long: `Print the CIE76 and CIEDE2000 differences between two colors on the 0-100
Lab scale. Each value is a single comma-separated argument:

  colorpad-mcp difference name white hex 000`,
		Args: cobra.ExactArgs(4),
		RunE: a.runDifference,
	}
}

func (a *app) runDifference(cmd *cobra.Command, args []string) error {
	ba, err := a.bridgeFor(args[:2])
	if err != nil {
		return err
	}
	bb, err := a.bridgeFor(args[2:])
	if err != nil {
		return err
	}
	d, err := bridge.Difference(ba, bb)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "#%s vs #%s\n", ba.Hex(a.cfg.UpperHex), bb.Hex(a.cfg.UpperHex))
	fmt.Fprintf(out, "CIE76:     %.4f\n", numeric.RoundTo(d.CIE76, 4))
	fmt.Fprintf(out, "CIEDE2000: %.4f\n", numeric.RoundTo(d.CIEDE2000, 4))
	return nil
}
