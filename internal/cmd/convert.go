package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/colorpad-mcp/internal/bridge"
	"github.com/ironsheep/colorpad-mcp/internal/model"
)

// Output formats understood by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func newConvertCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <format> <value>...",
		Short: "Convert a color into every supported model",
		Long: `Convert a color into every supported model.

The format is a model name (rgb, grayscale, hsb/hsv, hsl, cmyk, ycrcb, xyz, lab),
"hex" or "name". Model values may be given as one comma-separated argument or as
separate arguments:

  colorpad-mcp convert rgb 255,128,0
  colorpad-mcp convert hsb 20 100 100
  colorpad-mcp convert hex '#ff8000' --output yaml`,
		Args: cobra.MinimumNArgs(2),
		RunE: a.runConvert,
	}
	cmd.Flags().StringP("output", "o", outputText, "output format: text, json or yaml")
	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	b, err := a.bridgeFor(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(output) {
	case outputText:
		lines, err := bridge.Describe(b, a.cfg.UpperHex)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(out, line)
		}
		return nil
	case outputJSON:
		snap, err := bridge.TakeSnapshot(b, a.cfg.UpperHex)
		if err != nil {
			return err
		}
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case outputYAML:
		snap, err := bridge.TakeSnapshot(b, a.cfg.UpperHex)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		fmt.Fprint(out, string(data))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", output)
	}
}

// bridgeFor parses a <format> <value>... argument list into a bridge of the
// configured variant. Extra value arguments are joined with commas.
func (a *app) bridgeFor(args []string) (bridge.Bridge, error) {
	value := strings.Join(args[1:], ",")
	pivot, err := model.ParseInput(args[0], value)
	if err != nil {
		return nil, err
	}
	return bridge.New(a.cfg.Bridge, a.reg, pivot)
}
