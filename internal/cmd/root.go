// Package cmd wires the colorpad-mcp command tree: the MCP server plus a
// few commands that run the conversion engine from a terminal.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/colorpad-mcp/internal/config"
	"github.com/ironsheep/colorpad-mcp/internal/convert"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// app carries the configuration shared by every command of one tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	reg     *convert.Registry
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns the root command. Run without a subcommand it
// serves MCP over stdio.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:   "colorpad-mcp",
		Short: "MCP server for color model conversion",
		Long: `colorpad-mcp converts colors between RGB, grayscale, HSB, HSL, CMYK, YCrCb,
CIE-XYZ and CIE-Lab. Without a subcommand it serves the conversions as MCP tools
over stdin/stdout; configure it in your MCP client (e.g., Claude Desktop).`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		RunE:              a.runServe,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.colorpad.yaml)")
	flags.String("log-level", "info", "log level: info or debug")
	flags.String("grayscale", "luma", "RGB to grayscale algorithm: luma or average")
	flags.String("bridge", "lazy", "bridge variant: eager or lazy")
	flags.Bool("upper-hex", true, "render hex digits in upper case")
	a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	a.v.BindPFlag(config.KeyGrayscale, flags.Lookup("grayscale"))
	a.v.BindPFlag(config.KeyBridge, flags.Lookup("bridge"))
	a.v.BindPFlag(config.KeyUpperHex, flags.Lookup("upper-hex"))

	rootCmd.AddCommand(
		newServeCommand(a),
		newConvertCommand(a),
		newHarmonyCommand(a),
		newDifferenceCommand(a),
		newModelsCommand(a),
		newVersionCommand(),
	)
	return rootCmd
}

// init loads .env and the configuration, then sets up logging. It runs
// before every command.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	// A missing .env is fine; the environment can still be set in the shell.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	a.cfg, a.reg = cfg, reg

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if cfg.Debug() && cfg.File != "" {
		log.Printf("Using config file: %s", cfg.File)
	}
	return nil
}
