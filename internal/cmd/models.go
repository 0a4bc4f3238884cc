package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/colorpad-mcp/internal/model"
)

func newModelsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the color models and registered conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			var names []string
			for _, k := range model.Kinds() {
				names = append(names, k.String())
			}
			fmt.Fprintf(out, "Models: %s\n", strings.Join(names, ", "))
			fmt.Fprintf(out, "Grayscale: %s\n", a.cfg.Grayscale)
			fmt.Fprintf(out, "Bridge: %s\n", a.cfg.Bridge)
			fmt.Fprintln(out, "Conversions:")
			for _, p := range a.reg.Pairs() {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}
}
