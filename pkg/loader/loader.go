// Package loader reads state graphs from YAML files.
//
// A graph file lists states, their transitions and optional mock behaviours:
//
//	name: settings-app
//	start: [Main]
//	states:
//	  - name: Main
//	    score: 1
//	    transitions:
//	      - to: Settings
//	        cost: 2
//	      - to: Modal
//	  - name: Settings
//	    transitions:
//	      - to: Main
//	        mock: flaky:1
//	  - name: Modal
//	    overlay: true
//	    transitions:
//	      - to: previous
//
// Without a HookBinder the mock behaviours drive the hooks, which makes a
// graph file runnable without a screen. With an action registry, "action"
// and "check" entries name the real hooks instead.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/statenav/internal/compiler"
	"github.com/aretw0/statenav/pkg/adapters/memory"
	"github.com/aretw0/statenav/pkg/mock"
	"github.com/aretw0/statenav/pkg/ports"
	"github.com/aretw0/statenav/pkg/registry"
)

// Graph is a loaded state graph.
type Graph struct {
	// Name of the graph; defaults to the file name.
	Name string
	// Start lists the states active when a session begins.
	Start []string
	// Registry holds the compiled states and transitions.
	Registry *memory.Registry
	// Mock scripts the hooks from the file's mock behaviours.
	// It is bound to Registry unless another binder was supplied.
	Mock *mock.Binder
}

// Option configures loading.
type Option func(*options)

type options struct {
	binder  ports.HookBinder
	actions *registry.Registry
}

// WithHookBinder attaches real hook implementations instead of the file's mock behaviours.
func WithHookBinder(binder ports.HookBinder) Option {
	return func(o *options) {
		o.binder = binder
	}
}

// WithActions resolves the file's action and check names against reg.
// Transitions without an action keep their mock behaviour.
func WithActions(reg *registry.Registry) Option {
	return func(o *options) {
		o.actions = reg
	}
}

// Load reads and compiles a graph file.
func Load(path string, opts ...Option) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph: %w", err)
	}
	g, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if g.Name == "" {
		g.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return g, nil
}

// Parse compiles a graph document.
func Parse(data []byte, opts ...Option) (*Graph, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	file, err := compiler.NewParser().Parse(data)
	if err != nil {
		return nil, err
	}
	binder, err := compiler.MockBinder(file)
	if err != nil {
		return nil, err
	}

	var hooks ports.HookBinder = binder
	switch {
	case o.binder != nil:
		hooks = o.binder
	case o.actions != nil:
		hooks, err = compiler.ActionBinder(file, o.actions, binder)
		if err != nil {
			return nil, err
		}
	}
	registry, err := compiler.Compile(file, hooks)
	if err != nil {
		return nil, err
	}

	return &Graph{
		Name:     file.Name,
		Start:    file.Start,
		Registry: registry,
		Mock:     binder,
	}, nil
}
