package main

import (
	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive prompt",
	Long:  `Starts the conversation demo: 'converse <name>' opens a nested prompt for that person.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.RunSession(cmd.Context(), cfg, parley.Version, cli.StdStreams())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// 'parley' alone behaves like 'parley run'.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Args = cobra.NoArgs
}
