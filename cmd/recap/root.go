package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recap/internal/artifact"
	"recap/internal/config"
	"recap/internal/logging"
	"recap/internal/tools"
)

// version is set at build time via -ldflags.
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "recap",
	Short: "Work summary tools over MCP",
	Long: "Recap generates daily and weekly work summaries by instructing an MCP\n" +
		"client to collect Slack, Calendar and Gmail data, then storing the\n" +
		"rendered reports as local artifacts.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.Version = version
}

// setup loads the configuration, initializes logging and wires the tool
// handler. Every subcommand goes through here.
func setup() (*config.Config, *tools.Handler, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logging.Init(cfg.Debug)
	handler := tools.NewHandler(cfg, artifact.NewStore(cfg.Output.Dir))
	return cfg, handler, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
