package statenav

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/statenav/internal/logging"
	"github.com/aretw0/statenav/internal/navigation"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/loader"
	"github.com/aretw0/statenav/pkg/ports"
	"github.com/aretw0/statenav/pkg/registry"
)

// Session is the mutable context of one automation session: the states on
// screen and what each overlay conceals. One navigation at a time may use it.
type Session = navigation.Session

// JointTable indexes the graph in both directions for reachability queries.
type JointTable = navigation.JointTable

// Engine is the high-level entry point for the statenav library.
// It wraps the navigation core and provides a simplified API for consumers.
type Engine struct {
	navigator *navigation.Navigator
	registry  ports.StateRegistry
	binder    ports.HookBinder
	actions   *registry.Registry
	start     []string
	navOpts   []navigation.Option
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	Name      string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRegistry injects a state registry, bypassing the graph file.
func WithRegistry(r ports.StateRegistry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithHookBinder attaches real hook implementations to a graph file.
// Without it, the file's mock behaviours are used.
func WithHookBinder(b ports.HookBinder) Option {
	return func(e *Engine) {
		e.binder = b
	}
}

// WithActions resolves the "action" and "check" names of the graph file
// against reg. It is ignored when WithHookBinder is given.
func WithActions(reg *registry.Registry) Option {
	return func(e *Engine) {
		e.actions = reg
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStartStates configures the states active when a session begins.
// It overrides the graph file's start list.
func WithStartStates(names ...string) Option {
	return func(e *Engine) {
		e.start = names
	}
}

// WithMaxVisits lets candidate paths revisit a state up to n times.
func WithMaxVisits(n int) Option {
	return func(e *Engine) {
		e.navOpts = append(e.navOpts, navigation.WithMaxVisits(n))
	}
}

// WithMaxDepth bounds the number of states on a candidate path.
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		e.navOpts = append(e.navOpts, navigation.WithMaxDepth(n))
	}
}

// WithMaxPaths bounds the number of candidate paths per navigation.
func WithMaxPaths(n int) Option {
	return func(e *Engine) {
		e.navOpts = append(e.navOpts, navigation.WithMaxPaths(n))
	}
}

// New initializes a new Engine.
// By default, it loads the YAML graph file at path.
// If WithRegistry option is provided, path can be empty and the file is skipped.
func New(path string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	// Apply Options first to check if a registry is provided
	for _, opt := range opts {
		opt(eng)
	}

	if eng.registry == nil {
		if path == "" {
			return nil, fmt.Errorf("path is required when no custom registry is provided")
		}

		var loadOpts []loader.Option
		if eng.binder != nil {
			loadOpts = append(loadOpts, loader.WithHookBinder(eng.binder))
		}
		if eng.actions != nil {
			loadOpts = append(loadOpts, loader.WithActions(eng.actions))
		}
		graph, err := loader.Load(path, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load graph: %w", err)
		}
		eng.registry = graph.Registry
		eng.Name = graph.Name
		if eng.start == nil {
			eng.start = graph.Start
		}
	} else if path != "" {
		// With a custom registry the path is only a descriptive label.
		eng.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("graph", eng.Name)
	}

	navOpts := []navigation.Option{
		navigation.WithLogger(eng.logger),
		navigation.WithLifecycleHooks(eng.hooks),
	}
	navOpts = append(navOpts, eng.navOpts...)
	eng.navigator = navigation.New(eng.registry, navOpts...)

	return eng, nil
}

// Start creates a session with the given states active, or the configured
// start states when none are given.
func (e *Engine) Start(sessionID string, active ...string) (*Session, error) {
	if len(active) == 0 {
		active = e.start
	}
	ids := make([]domain.StateID, 0, len(active))
	for _, name := range active {
		s, ok := e.registry.StateByName(name)
		if !ok {
			return nil, &domain.StateNotFoundError{Name: name}
		}
		ids = append(ids, s.ID)
	}
	e.logger.Debug("session started", "session_id", sessionID, "active", active)
	return navigation.NewSession(sessionID, ids...), nil
}

// Restore rebuilds a session from a snapshot.
func (e *Engine) Restore(snap *domain.Snapshot) *Session {
	return navigation.RestoreSession(snap)
}

// OpenState navigates the session to the named state.
// It reports false, with a nil error, when every known path failed.
func (e *Engine) OpenState(ctx context.Context, s *Session, name string) (bool, error) {
	return e.navigator.OpenState(ctx, s, name)
}

// OpenStates opens the named states in order, stopping at the first that cannot be reached.
func (e *Engine) OpenStates(ctx context.Context, s *Session, names ...string) (bool, error) {
	return e.navigator.OpenStates(ctx, s, names...)
}

// CloseState removes a state from the screen and restores what it concealed.
func (e *Engine) CloseState(ctx context.Context, s *Session, name string) (bool, error) {
	return e.navigator.CloseState(ctx, s, name)
}

// Paths returns the scored candidate paths to the named state, best first.
func (e *Engine) Paths(s *Session, name string) (*domain.Paths, error) {
	return e.navigator.Paths(s, name)
}

// ActiveStateNames lists the names of the session's active states.
func (e *Engine) ActiveStateNames(s *Session) []string {
	return e.navigator.ActiveStateNames(s)
}

// Inspect returns every state of the graph for visualization or introspection tools.
func (e *Engine) Inspect() []*domain.State {
	return e.registry.States()
}

// JointTable returns the graph's adjacency, including the PREVIOUS edges
// implied by the session's hidden states when s is not nil.
func (e *Engine) JointTable(s *Session) *JointTable {
	table := navigation.NewJointTable(e.registry)
	if s != nil {
		table.ObserveHidden(s.Visibility())
	}
	return table
}

// Registry returns the underlying state registry used by the engine.
func (e *Engine) Registry() ports.StateRegistry {
	return e.registry
}

// StartStates returns the states a new session begins with.
func (e *Engine) StartStates() []string {
	return append([]string(nil), e.start...)
}
