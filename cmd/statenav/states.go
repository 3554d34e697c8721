package main

import (
	"os"

	"github.com/aretw0/statenav/internal/cli"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/spf13/cobra"
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List the states of the graph",
	Long:  `Lists every state in natural order. With --session, active states are ticked and hidden ones marked.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		defer a.Close()

		id, _ := cmd.Flags().GetString("session")
		if id == "" {
			cli.PrintStates(cli.NewPrinter(os.Stdout), a.engine, nil)
			return nil
		}
		s, err := a.session(cmd, id)
		if err != nil {
			return err
		}
		cli.PrintStates(cli.NewPrinter(os.Stdout), a.engine, s)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
	statesCmd.Flags().StringP("session", "s", "", "Session to overlay")
}
