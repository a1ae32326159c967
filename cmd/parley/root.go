package main

import (
	"fmt"
	"os"

	"github.com/aretw0/parley/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Parley is a nested interactive command prompt",
	Long: `Parley runs a command prompt whose commands can open nested prompts with
their own commands and state. Type 'help' at any prompt to list its commands and
'exit' to leave it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves settings for cmd from --config, PARLEY_* and flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path, cmd.Flags())
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file (default: ./parley.yaml)")
	flags.String("prompt", ">> ", "Prompt shown at the top level")
	flags.String("history-file", "", "File used to persist line history")
	flags.Bool("debug", false, "Enable debug logging on stderr")
	flags.Bool("plain", false, "Use plain line I/O even on a terminal")
	flags.Bool("markdown", false, "Render command output as Markdown")
	flags.Bool("banner", true, "Print the banner on start")
	flags.Bool("sanitize-input", true, "Strip control characters and reject oversized lines before dispatch")
	flags.Int("max-input-size", 4096, "Longest accepted input line in bytes (with --sanitize-input)")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
}
