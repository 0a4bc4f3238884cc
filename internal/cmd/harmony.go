package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/colorpad-mcp/internal/convert"
	"github.com/ironsheep/colorpad-mcp/internal/harmony"
	"github.com/ironsheep/colorpad-mcp/internal/model"
)

func newHarmonyCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "harmony <format> <value>...",
		Short: "Build a color scheme around a base color",
		Long: `Build a color scheme by rotating the hue of a base color. Saturation and
brightness are kept; one line is printed per member, base color first.

Schemes: monochromatic, complementary, split-complementary, analogous, triadic,
tetradic. --angle sets the spread for split-complementary (default 150, clamped to
90-179.9), analogous and tetradic (default 60, clamped to 1-90).`,
		Args: cobra.MinimumNArgs(2),
		RunE: a.runHarmony,
	}
	cmd.Flags().StringP("scheme", "s", "complementary", "harmony scheme")
	cmd.Flags().Float64("angle", 0, "hue spread in degrees")
	return cmd
}

func (a *app) runHarmony(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("scheme")
	scheme, err := harmony.ParseScheme(name)
	if err != nil {
		return err
	}
	var angle *float64
	if cmd.Flags().Changed("angle") {
		v, _ := cmd.Flags().GetFloat64("angle")
		angle = &v
	}

	b, err := a.bridgeFor(args)
	if err != nil {
		return err
	}
	base, err := b.Hsb()
	if err != nil {
		return err
	}
	members, err := harmony.Apply(base, scheme, angle)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, hsb := range members {
		rgb, err := convert.To[model.Rgb](a.reg, hsb)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "#%s  %s\n", rgb.Hex(a.cfg.UpperHex), hsb)
	}
	return nil
}
