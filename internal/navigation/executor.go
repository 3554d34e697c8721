package navigation

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/aretw0/statenav/internal/logging"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
)

// Executor performs single hops between states and keeps the session's
// active and hidden sets in step with what each hop opened and closed.
type Executor struct {
	registry ports.StateRegistry
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
}

// NewExecutor creates an executor over the registry.
func NewExecutor(registry ports.StateRegistry, logger *slog.Logger, hooks domain.LifecycleHooks) *Executor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Executor{registry: registry, logger: logger, hooks: hooks}
}

// Go moves from one state to another using t, or the registry's transition
// between them when t is nil. It reports whether to is active afterwards.
func (e *Executor) Go(ctx context.Context, s *Session, from, to domain.StateID, t *domain.Transition) bool {
	start := time.Now()
	ok := e.doTransitions(ctx, s, from, to, t)

	if ok {
		e.logger.Info("transition successful", "from", e.describe(from), "to", e.describe(to))
	} else {
		e.logger.Info("transition failed", "from", e.describe(from), "to", e.describe(to))
	}
	if e.hooks.OnTransition != nil {
		e.hooks.OnTransition(ctx, &domain.TransitionEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransition, SessionID: s.ID},
			From:      from,
			To:        to,
			OK:        ok,
			Duration:  time.Since(start),
		})
	}
	return ok
}

func (e *Executor) doTransitions(ctx context.Context, s *Session, from, to domain.StateID, t *domain.Transition) bool {
	if !s.IsActive(from) {
		e.logger.Debug("transition source not active", "from", from, "active", s.ActiveStates())
		return false
	}
	if t == nil {
		var found bool
		if t, found = e.Fetch(s, from, to); !found {
			e.logger.Debug("no transition found", "from", from, "to", to)
			return false
		}
	}

	// Previous is resolved before the hook runs: the hook may close the overlay.
	toActivate, revealed := e.statesToActivate(s, from, to, t)

	if !t.Hook.Run(ctx) {
		return false
	}

	for _, id := range toActivate {
		verify := id == to || !revealed[id]
		e.activate(ctx, s, id, verify, !t.StaysVisible)
	}
	for _, id := range t.Exit {
		e.exit(ctx, s, id)
	}

	if !s.IsActive(to) {
		return false
	}
	if !t.StaysVisible && from != to && s.IsActive(from) {
		e.exit(ctx, s, from)
	}
	return true
}

// Fetch finds the transition leaving from that can reach to: a concrete
// target first, then a Previous target while from hides to.
func (e *Executor) Fetch(s *Session, from, to domain.StateID) (*domain.Transition, bool) {
	st, ok := e.registry.Transitions(from)
	if !ok {
		return nil, false
	}
	if t, ok := st.TransitionTo(to); ok {
		return t, true
	}
	if slices.Contains(s.Visibility().HiddenBy(from), to) {
		for _, t := range st.Transitions {
			if t.HasKind(domain.TargetPrevious) {
				return t, true
			}
		}
	}
	if from == to {
		return st.SelfTransition()
	}
	return nil, false
}

// statesToActivate lists what the hop opens, in order: the states the source
// stops concealing, the declared targets, then the hop's destination.
// Revealed states were on screen before the overlay and are restored without
// an arrival check; restoring them first lets a newly opened overlay conceal them.
func (e *Executor) statesToActivate(s *Session, from, to domain.StateID, t *domain.Transition) ([]domain.StateID, map[domain.StateID]bool) {
	var order []domain.StateID
	revealed := make(map[domain.StateID]bool)
	add := func(id domain.StateID) {
		if !slices.Contains(order, id) {
			order = append(order, id)
		}
	}

	hidden := s.Visibility().HiddenBy(from)
	if !t.StaysVisible || t.HasKind(domain.TargetPrevious) {
		for _, id := range hidden {
			add(id)
			revealed[id] = true
		}
	}
	for _, target := range t.Activate {
		if target.IsConcrete() {
			add(target.ID)
		}
	}
	if to != from {
		add(to)
	}
	return order, revealed
}

// activate opens a state. With verify set, the state's arrival hook must pass.
// An overlay opened by a hop that does not keep its source visible conceals
// the active states it may hide.
func (e *Executor) activate(ctx context.Context, s *Session, id domain.StateID, verify, conceal bool) bool {
	if s.IsActive(id) {
		return true
	}
	state, ok := e.registry.State(id)
	if !ok {
		e.logger.Warn("inconsistent graph: cannot activate unknown state", "state_id", id)
		return false
	}
	if verify {
		if st, ok := e.registry.Transitions(id); ok && !st.Arrival.Run(ctx) {
			e.logger.Info("arrival check failed", "state", e.describe(id))
			return false
		}
	}

	if conceal {
		for _, other := range s.ActiveStates() {
			candidate, ok := e.registry.State(other)
			if !ok || !state.Hides(candidate) {
				continue
			}
			// An overlay still concealing something stays on screen.
			if len(s.Visibility().HiddenBy(other)) > 0 {
				continue
			}
			s.hide(id, other)
			e.emitState(ctx, s, other, false, true)
		}
	}

	s.AddActiveState(id)
	e.emitState(ctx, s, id, true, false)
	return true
}

// exit closes a state and discards what it was concealing.
func (e *Executor) exit(ctx context.Context, s *Session, id domain.StateID) bool {
	if !s.RemoveInactiveState(id) {
		return false
	}
	e.emitState(ctx, s, id, false, false)
	return true
}

// Close exits a state and restores what it was concealing.
func (e *Executor) Close(ctx context.Context, s *Session, id domain.StateID) bool {
	if !s.IsActive(id) {
		return false
	}
	revealed := s.Visibility().Reveal(id)
	for _, hidden := range revealed {
		s.AddActiveState(hidden)
		e.emitState(ctx, s, hidden, true, false)
	}
	return e.exit(ctx, s, id)
}

func (e *Executor) emitState(ctx context.Context, s *Session, id domain.StateID, active, hidden bool) {
	if e.hooks.OnStateChanged == nil {
		return
	}
	e.hooks.OnStateChanged(ctx, &domain.StateEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStateChanged, SessionID: s.ID},
		StateID:   id,
		Active:    active,
		Hidden:    hidden,
	})
}

func (e *Executor) describe(id domain.StateID) string {
	return describe(e.registry, id)
}

func describe(registry ports.StateRegistry, id domain.StateID) string {
	if s, ok := registry.State(id); ok {
		return s.Name + "(" + strconv.FormatInt(int64(id), 10) + ")"
	}
	return "(" + strconv.FormatInt(int64(id), 10) + ")"
}
