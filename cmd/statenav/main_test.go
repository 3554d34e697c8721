package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/statenav/pkg/adapters/file"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const graphYAML = `
name: shop
start: [Home]
states:
  - name: Home
    transitions:
      - to: Cart
      - to: Help
        stays_visible: true
  - name: Cart
    transitions:
      - to: Home
  - name: Help
    overlay: true
    can_hide: [Home]
    transitions:
      - to: previous
`

func run(t *testing.T, args ...string) error {
	t.Helper()
	// Flag values outlive a single Execute.
	for _, name := range []string{"log-level", "redis", "session-key"} {
		_ = rootCmd.PersistentFlags().Set(name, "")
	}
	for _, c := range []*cobra.Command{statesCmd, pathsCmd, openCmd, graphCmd} {
		_ = c.Flags().Set("session", "")
	}
	_ = graphCmd.Flags().Set("target", "")
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func fixture(t *testing.T) (graph, sessions string) {
	t.Helper()
	dir := t.TempDir()
	graph = filepath.Join(dir, "shop.yaml")
	require.NoError(t, os.WriteFile(graph, []byte(graphYAML), 0644))
	return graph, filepath.Join(dir, "sessions")
}

func TestValidateCommand(t *testing.T) {
	graph, _ := fixture(t)
	assert.NoError(t, run(t, "validate", graph))

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("start: [Nope]\nstates:\n  - name: A\n"), 0644))
	assert.Error(t, run(t, "validate", broken))
}

func TestOpenCommand_PersistsSession(t *testing.T) {
	graph, sessions := fixture(t)

	err := run(t, "open", "Cart", "--file", graph, "--session-dir", sessions, "--session", "s1")
	require.NoError(t, err)

	snap, err := file.New(sessions).Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, snap.Active, 1)

	assert.NoError(t, run(t, "states", "--file", graph, "--session-dir", sessions, "--session", "s1"))
	assert.NoError(t, run(t, "paths", "Home", "--file", graph, "--session-dir", sessions, "--session", "s1"))
	assert.NoError(t, run(t, "graph", "--file", graph, "--session-dir", sessions, "--session", "s1", "--target", "Home"))
	assert.NoError(t, run(t, "session", "ls", "--session-dir", sessions))
	assert.NoError(t, run(t, "session", "inspect", "s1", "--session-dir", sessions))
	assert.NoError(t, run(t, "session", "rm", "s1", "--session-dir", sessions))

	_, err = file.New(sessions).Load(context.Background(), "s1")
	assert.Error(t, err)
}

func TestOpenCommand_Errors(t *testing.T) {
	graph, sessions := fixture(t)

	assert.Error(t, run(t, "open", "Nowhere", "--file", graph, "--session-dir", sessions, "--session", "s2"))
	assert.Error(t, run(t, "open", "Cart", "--file", filepath.Join(t.TempDir(), "missing.yaml"), "--session-dir", sessions, "--session", "s2"))
	assert.Error(t, run(t, "paths", "Cart", "--file", graph, "--session-dir", sessions, "--session", "ghost"))
	assert.Error(t, run(t, "states", "--file", graph, "--log-level", "loud", "--session", ""))
}
