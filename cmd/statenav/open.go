package main

import (
	"context"
	"os"

	"github.com/aretw0/statenav/internal/cli"
	"github.com/aretw0/statenav/internal/presentation/tui"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [target...]",
	Short: "Navigate a session to one or more states",
	Long: `Opens each target in turn on a persisted session, stopping at the first
that cannot be reached. Transitions run the graph's mock behaviours.

With --interactive, commands are read from stdin instead:
open <state>, close <state>, paths <state>, active and quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive, _ := cmd.Flags().GetBool("interactive")
		headless, _ := cmd.Flags().GetBool("headless")
		id, _ := cmd.Flags().GetString("session")
		if len(args) == 0 && !interactive {
			return cmd.Help()
		}

		a, err := newApp(cmd, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		defer a.Close()

		p := cli.NewPrinter(os.Stdout)
		if id == "" {
			id = uuid.NewString()
			if !headless {
				p.System("Session '%s' created (reuse it with --session).", id)
			}
		}

		if !interactive {
			return cli.Open(cmd.Context(), p, a.manager, id, args...)
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()
		if !headless {
			tui.PrintBanner(os.Stdout)
		}
		if err := cli.Open(ctx, p, a.manager, id, args...); err != nil {
			return err
		}
		return cli.RunSession(ctx, p, os.Stdin, a.manager, id, headless)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().StringP("session", "s", "", "Session id (default: a new session)")
	openCmd.Flags().BoolP("interactive", "i", false, "Read commands from stdin")
	openCmd.Flags().Bool("headless", false, "No banner or prompts (strict IO)")
}
