package dsl

import (
	"fmt"

	"github.com/aretw0/statenav/pkg/domain"
)

// StateBuilder provides a fluent API for configuring a state and its outgoing transitions.
// Transition modifiers (Cost, Exit, StaysVisible, Hook) apply to the most recently added transition.
type StateBuilder struct {
	state       domain.State
	canHide     []string
	arrival     domain.Hook
	transitions []*transitionBuilder
	builder     *Builder
	errs        []error
}

// ID pins the state id. States without one get the next free id.
func (s *StateBuilder) ID(id domain.StateID) *StateBuilder {
	s.state.ID = id
	return s
}

// Score sets the state's path score.
func (s *StateBuilder) Score(score int) *StateBuilder {
	s.state.PathScore = score
	return s
}

// Overlay marks the state as one that conceals what it opens over.
func (s *StateBuilder) Overlay() *StateBuilder {
	s.state.Overlay = true
	return s
}

// CanHide restricts the states this one conceals when it opens.
func (s *StateBuilder) CanHide(names ...string) *StateBuilder {
	s.canHide = append(s.canHide, names...)
	return s
}

// Blocking marks the state as one that must be dealt with before others.
func (s *StateBuilder) Blocking() *StateBuilder {
	s.state.Blocking = true
	return s
}

// Objects lists the names of the screen objects that identify the state.
func (s *StateBuilder) Objects(names ...string) *StateBuilder {
	s.state.Objects = append(s.state.Objects, names...)
	return s
}

// Arrival sets the check run when the state is opened by a transition.
func (s *StateBuilder) Arrival(hook domain.Hook) *StateBuilder {
	s.arrival = hook
	return s
}

// Reserved target names resolved when the transition runs.
const (
	// PreviousState targets whatever the source state currently hides.
	PreviousState = "$previous"
	// CurrentState targets the source state itself.
	CurrentState = "$current"
)

// Go adds a transition activating the named states.
// PreviousState and CurrentState may be mixed with concrete names.
func (s *StateBuilder) Go(targets ...string) *StateBuilder {
	tb := &transitionBuilder{}
	for _, name := range targets {
		switch name {
		case PreviousState:
			tb.targets = append(tb.targets, targetRef{kind: domain.TargetPrevious})
		case CurrentState:
			tb.targets = append(tb.targets, targetRef{kind: domain.TargetCurrent})
		default:
			tb.targets = append(tb.targets, targetRef{kind: domain.TargetConcrete, name: name})
		}
	}
	s.transitions = append(s.transitions, tb)
	return s
}

// Back adds a transition returning to whatever this state currently hides.
func (s *StateBuilder) Back() *StateBuilder {
	return s.Go(PreviousState)
}

// Refresh adds a transition that leaves this state on screen.
func (s *StateBuilder) Refresh() *StateBuilder {
	return s.Go(CurrentState).StaysVisible()
}

// Cost sets the cost of the last transition.
func (s *StateBuilder) Cost(cost int) *StateBuilder {
	if tb := s.last("Cost"); tb != nil {
		tb.cost = cost
	}
	return s
}

// Exit lists states the last transition closes.
func (s *StateBuilder) Exit(names ...string) *StateBuilder {
	if tb := s.last("Exit"); tb != nil {
		tb.exit = append(tb.exit, names...)
	}
	return s
}

// StaysVisible keeps this state on screen after the last transition.
func (s *StateBuilder) StaysVisible() *StateBuilder {
	if tb := s.last("StaysVisible"); tb != nil {
		tb.staysVisible = true
	}
	return s
}

// Hook sets the action performed by the last transition.
func (s *StateBuilder) Hook(hook domain.Hook) *StateBuilder {
	if tb := s.last("Hook"); tb != nil {
		tb.hook = hook
	}
	return s
}

// Add starts another state on the same builder.
func (s *StateBuilder) Add(name string) *StateBuilder {
	return s.builder.Add(name)
}

func (s *StateBuilder) last(modifier string) *transitionBuilder {
	if len(s.transitions) == 0 {
		s.errs = append(s.errs, fmt.Errorf("state %q: %s called before any transition", s.state.Name, modifier))
		return nil
	}
	return s.transitions[len(s.transitions)-1]
}

type targetRef struct {
	kind domain.TargetKind
	name string
}

type transitionBuilder struct {
	targets      []targetRef
	exit         []string
	cost         int
	staysVisible bool
	hook         domain.Hook
}

func (tb *transitionBuilder) resolve(ids map[string]domain.StateID) (*domain.Transition, error) {
	t := &domain.Transition{
		Cost:         tb.cost,
		StaysVisible: tb.staysVisible,
		Hook:         tb.hook,
	}
	for _, ref := range tb.targets {
		switch ref.kind {
		case domain.TargetConcrete:
			id, ok := ids[ref.name]
			if !ok {
				return nil, fmt.Errorf("transition target %q: %w", ref.name, domain.ErrStateNotFound)
			}
			t.Activate = append(t.Activate, domain.To(id))
		case domain.TargetPrevious:
			t.Activate = append(t.Activate, domain.Previous())
		case domain.TargetCurrent:
			t.Activate = append(t.Activate, domain.Current())
		}
	}
	for _, name := range tb.exit {
		id, ok := ids[name]
		if !ok {
			return nil, fmt.Errorf("exit %q: %w", name, domain.ErrStateNotFound)
		}
		t.Exit = append(t.Exit, id)
	}
	return t, nil
}
