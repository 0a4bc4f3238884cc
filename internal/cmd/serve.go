package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/colorpad-mcp/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the color tools over MCP (stdin/stdout)",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	if a.cfg.Debug() {
		log.Printf("ColorPad MCP Server v%s (built %s, commit %s, %s bridge, %s grayscale)",
			Version, BuildTime, GitCommit, a.cfg.Bridge, a.cfg.Grayscale)
	}

	srv := server.New(server.Options{
		Registry: a.reg,
		Variant:  a.cfg.Bridge,
		UpperHex: a.cfg.UpperHex,
		Debug:    a.cfg.Debug(),
		Version:  Version,
	})
	return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
}
