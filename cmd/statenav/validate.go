package main

import (
	"os"

	"github.com/aretw0/statenav/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check the graph for consistency",
	Long: `Loads the graph and reports missing start states, dangling references,
states that cannot be reached from the start states, and "previous" transitions
on states that never hide anything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := options(cmd).File
		if len(args) > 0 {
			path = args[0]
		}
		return cli.Validate(cli.NewPrinter(os.Stdout), path)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
