package navigation

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/statenav/internal/logging"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
)

// Navigator opens target states by walking the cheapest known path and
// recovering through alternative paths when a hop fails.
type Navigator struct {
	registry  ports.StateRegistry
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	maxVisits int
	maxDepth  int
	maxPaths  int

	finder    *PathFinder
	manager   *PathManager
	executor  *Executor
	traverser *Traverser
}

// Option configures the Navigator.
type Option func(*Navigator)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(n *Navigator) {
		n.hooks = hooks
	}
}

// WithMaxVisits sets how often a state may appear on one candidate path.
// Values above 1 let the search produce bounded cycles.
func WithMaxVisits(visits int) Option {
	return func(n *Navigator) {
		if visits > 0 {
			n.maxVisits = visits
		}
	}
}

// WithMaxDepth bounds the number of states on a candidate path.
func WithMaxDepth(depth int) Option {
	return func(n *Navigator) {
		if depth > 1 {
			n.maxDepth = depth
		}
	}
}

// WithMaxPaths bounds the number of candidates collected per search.
func WithMaxPaths(paths int) Option {
	return func(n *Navigator) {
		if paths > 0 {
			n.maxPaths = paths
		}
	}
}

// New creates a navigator over the registry.
func New(registry ports.StateRegistry, opts ...Option) *Navigator {
	n := &Navigator{
		registry:  registry,
		logger:    logging.NewNop(),
		maxVisits: DefaultMaxVisits,
		maxDepth:  DefaultMaxDepth,
		maxPaths:  DefaultMaxPaths,
	}
	for _, opt := range opts {
		opt(n)
	}

	n.finder = NewPathFinder(registry, n.logger)
	n.finder.maxVisits = n.maxVisits
	n.finder.maxDepth = n.maxDepth
	n.finder.maxPaths = n.maxPaths
	n.manager = NewPathManager(registry, n.logger)
	n.executor = NewExecutor(registry, n.logger, n.hooks)
	n.traverser = NewTraverser(n.executor)
	return n
}

// Finder returns the path finder.
func (n *Navigator) Finder() *PathFinder { return n.finder }

// Manager returns the path manager.
func (n *Navigator) Manager() *PathManager { return n.manager }

// Executor returns the transition executor.
func (n *Navigator) Executor() *Executor { return n.executor }

// OpenState navigates the session to the named state.
// An unknown name is the only error; exhausting every path returns false, nil.
func (n *Navigator) OpenState(ctx context.Context, s *Session, name string) (bool, error) {
	state, ok := n.registry.StateByName(name)
	if !ok {
		n.emitNavigation(ctx, s, name, domain.OutcomeNotFound, 0, time.Now())
		return false, &domain.StateNotFoundError{Name: name}
	}
	return n.open(ctx, s, state)
}

// OpenStateByID navigates the session to the state with the given id.
func (n *Navigator) OpenStateByID(ctx context.Context, s *Session, id domain.StateID) (bool, error) {
	state, ok := n.registry.State(id)
	if !ok {
		n.emitNavigation(ctx, s, "", domain.OutcomeNotFound, 0, time.Now())
		return false, &domain.StateNotFoundError{ID: id}
	}
	return n.open(ctx, s, state)
}

// OpenStates opens each named state in order and stops at the first one that
// cannot be reached.
func (n *Navigator) OpenStates(ctx context.Context, s *Session, names ...string) (bool, error) {
	for _, name := range names {
		ok, err := n.OpenState(ctx, s, name)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// CloseState removes the named state from the screen and restores what it concealed.
// It reports false when the state was not active.
func (n *Navigator) CloseState(ctx context.Context, s *Session, name string) (bool, error) {
	state, ok := n.registry.StateByName(name)
	if !ok {
		return false, &domain.StateNotFoundError{Name: name}
	}
	return n.executor.Close(ctx, s, state.ID), nil
}

// Paths returns the scored candidate paths from the session to the named state, best first.
func (n *Navigator) Paths(s *Session, name string) (*domain.Paths, error) {
	state, ok := n.registry.StateByName(name)
	if !ok {
		return nil, &domain.StateNotFoundError{Name: name}
	}
	paths := n.finder.PathsToState(s, state.ID)
	n.manager.UpdateScores(paths)
	return paths, nil
}

// ActiveStateNames lists the names of the session's active states in id order.
func (n *Navigator) ActiveStateNames(s *Session) []string {
	ids := s.ActiveStates()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if state, ok := n.registry.State(id); ok {
			names = append(names, state.Name)
		}
	}
	return names
}

func (n *Navigator) open(ctx context.Context, s *Session, target *domain.State) (bool, error) {
	start := time.Now()
	logger := n.logger.With("target", target.Name, "session_id", s.ID)

	if s.IsActive(target.ID) {
		n.refresh(ctx, s, target)
		logger.Info("target already active")
		n.emitNavigation(ctx, s, target.Name, domain.OutcomeAlready, 0, start)
		return true, nil
	}

	paths := n.finder.PathsToState(s, target.ID)
	n.manager.UpdateScores(paths)
	if paths.Empty() {
		logger.Info("no path to target", "active", s.ActiveStates())
		n.emitNavigation(ctx, s, target.Name, domain.OutcomeNoPath, 0, start)
		return false, nil
	}

	attempts := 0
	for !paths.Empty() {
		best, _ := paths.Best()
		attempts++
		logger.Debug("trying path", "path", best.String(), "attempt", attempts)
		n.emitPathAttempt(ctx, s, target.ID, best, attempts)

		ok, failedStart := n.traverser.Traverse(ctx, s, best)
		if ok {
			logger.Info("navigation successful", "attempts", attempts, "active", s.ActiveStates())
			n.emitNavigation(ctx, s, target.Name, domain.OutcomeSuccess, attempts, start)
			return true, nil
		}

		paths = n.manager.CleanPaths(s.ActiveSet(), paths, failedStart)
		logger.Info("path failed, recovering",
			"failed_start", describe(n.registry, failedStart),
			"remaining", paths.Len(),
		)
	}

	logger.Info("navigation exhausted", "attempts", attempts, "active", s.ActiveStates())
	n.emitNavigation(ctx, s, target.Name, domain.OutcomeExhausted, attempts, start)
	return false, nil
}

// refresh runs the self-transition of an active state. Membership is unchanged
// whatever the hook reports.
func (n *Navigator) refresh(ctx context.Context, s *Session, target *domain.State) {
	st, ok := n.registry.Transitions(target.ID)
	if !ok {
		return
	}
	t, ok := st.SelfTransition()
	if !ok {
		return
	}
	if !t.Hook.Run(ctx) {
		n.logger.Warn("self transition failed", "state", target.Name)
	}
}

func (n *Navigator) emitPathAttempt(ctx context.Context, s *Session, target domain.StateID, p *domain.Path, attempt int) {
	if n.hooks.OnPathAttempt == nil {
		return
	}
	n.hooks.OnPathAttempt(ctx, &domain.PathEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventPathAttempt, SessionID: s.ID},
		Target:    target,
		States:    append([]domain.StateID(nil), p.States...),
		Score:     p.Score,
		Attempt:   attempt,
	})
}

func (n *Navigator) emitNavigation(ctx context.Context, s *Session, target string, outcome domain.Outcome, attempts int, start time.Time) {
	if n.hooks.OnNavigation == nil {
		return
	}
	n.hooks.OnNavigation(ctx, &domain.NavigationEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNavigation, SessionID: s.ID},
		Target:    target,
		Outcome:   outcome,
		Attempts:  attempts,
		Duration:  time.Since(start),
	})
}
