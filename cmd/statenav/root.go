package main

import (
	"fmt"
	"os"

	"github.com/aretw0/statenav/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statenav",
	Short: "statenav navigates application state graphs",
	Long: `statenav loads a YAML graph of application states and transitions,
finds the cheapest path between states and walks it, recovering through
alternative paths when a transition fails. Mock hooks declared in the graph
make it possible to rehearse navigations without a screen.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.StringP("file", "f", "graph.yaml", "YAML graph definition")
	flags.String("log-level", "", "Log level (debug, info, warn, error); empty disables logs")
	flags.Bool("log-json", false, "Write logs as JSON")
	flags.String("redis", "", "Redis address for session storage (default: files in --session-dir)")
	flags.String("session-dir", "", "Directory for file-backed sessions (default .statenav/sessions)")
	flags.String("session-key", os.Getenv("STATENAV_SESSION_KEY"), "Hex AES-256 key to encrypt stored sessions (env STATENAV_SESSION_KEY)")
}

func options(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	file, _ := flags.GetString("file")
	level, _ := flags.GetString("log-level")
	jsonLogs, _ := flags.GetBool("log-json")
	redis, _ := flags.GetString("redis")
	dir, _ := flags.GetString("session-dir")
	key, _ := flags.GetString("session-key")
	return cli.Options{
		File:       file,
		LogLevel:   level,
		JSONLogs:   jsonLogs,
		Redis:      redis,
		SessionDir: dir,
		SessionKey: key,
	}
}
