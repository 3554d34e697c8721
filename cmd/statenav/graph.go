package main

import (
	"fmt"

	"github.com/aretw0/statenav/internal/presentation/graph"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the state graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the states and transitions.
With --session, active and hidden states are highlighted; adding --target
highlights the best path to it as well.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		defer a.Close()

		id, _ := cmd.Flags().GetString("session")
		target, _ := cmd.Flags().GetString("target")

		var overlay *graph.GraphOverlay
		if id != "" || target != "" {
			s, err := a.session(cmd, id)
			if err != nil {
				return err
			}
			overlay = graph.OverlayFromSnapshot(s.Snapshot())
			if target != "" {
				paths, err := a.engine.Paths(s, target)
				if err != nil {
					return err
				}
				if best, ok := paths.Best(); ok {
					overlay.Path = best.States
				}
			}
		}

		fmt.Print(graph.GenerateMermaid(a.engine.Registry(), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("session", "s", "", "Session to overlay")
	graphCmd.Flags().StringP("target", "t", "", "Highlight the best path to this state")
}
