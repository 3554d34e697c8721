package main

import (
	"os"

	"github.com/aretw0/statenav/internal/cli"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths <target>",
	Short: "List the candidate paths to a state, best first",
	Long:  `Scores every path from the active states to the target. Without --session the graph's start states are used.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		defer a.Close()

		id, _ := cmd.Flags().GetString("session")
		s, err := a.session(cmd, id)
		if err != nil {
			return err
		}
		return cli.PrintPaths(cli.NewPrinter(os.Stdout), a.engine, s, args[0])
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	pathsCmd.Flags().StringP("session", "s", "", "Session to start from")
}
