package domain

import (
	"context"
	"fmt"
)

// Hook executes the side-effect behind a transition and reports success.
// Implementations belong to the action layer; they own waiting and timeouts.
type Hook func(ctx context.Context) bool

// Run executes the hook. A nil hook always succeeds.
func (h Hook) Run(ctx context.Context) bool {
	if h == nil {
		return true
	}
	return h(ctx)
}

// TargetKind discriminates Target.
type TargetKind int

const (
	// TargetConcrete points at a registry state.
	TargetConcrete TargetKind = iota
	// TargetPrevious resolves to the states the source overlay hides.
	TargetPrevious
	// TargetCurrent is the source state itself (refresh / stay).
	TargetCurrent
)

func (k TargetKind) String() string {
	switch k {
	case TargetPrevious:
		return "previous"
	case TargetCurrent:
		return "current"
	default:
		return "concrete"
	}
}

// Target is where a transition leads.
// Previous and Current are resolved at execution time, never during static path search.
type Target struct {
	Kind TargetKind
	ID   StateID
}

// To returns a concrete target.
func To(id StateID) Target { return Target{Kind: TargetConcrete, ID: id} }

// Previous returns the dynamic "whatever this overlay hides" target.
func Previous() Target { return Target{Kind: TargetPrevious} }

// Current returns the self target.
func Current() Target { return Target{Kind: TargetCurrent} }

// IsConcrete reports whether the target names a registry state.
func (t Target) IsConcrete() bool { return t.Kind == TargetConcrete }

func (t Target) String() string {
	if t.Kind == TargetConcrete {
		return fmt.Sprintf("%d", t.ID)
	}
	return t.Kind.String()
}

// Transition is a directed, costed edge leaving a source state.
type Transition struct {
	// Activate lists the states opened by the transition (fan-out allowed).
	Activate []Target

	// Exit lists states closed by the transition, besides the source.
	Exit []StateID

	// Cost is added to the score of paths using this transition. Never negative.
	Cost int

	// StaysVisible keeps the source active after the transition.
	StaysVisible bool

	// Hook performs the transition. Nil always succeeds.
	Hook Hook
}

// Activates reports whether the transition lists the concrete target id.
func (t *Transition) Activates(id StateID) bool {
	for _, target := range t.Activate {
		if target.IsConcrete() && target.ID == id {
			return true
		}
	}
	return false
}

// HasKind reports whether the transition has a target of the given kind.
func (t *Transition) HasKind(kind TargetKind) bool {
	for _, target := range t.Activate {
		if target.Kind == kind {
			return true
		}
	}
	return false
}

// StateTransitions groups everything a source state contributes to the graph.
type StateTransitions struct {
	StateID StateID

	// Transitions are the outgoing edges, in declaration order.
	Transitions []*Transition

	// Arrival verifies the state after it was opened. Nil always succeeds.
	Arrival Hook
}

// TransitionTo returns the first transition that activates id.
func (st *StateTransitions) TransitionTo(id StateID) (*Transition, bool) {
	if st == nil {
		return nil, false
	}
	for _, t := range st.Transitions {
		if t.Activates(id) {
			return t, true
		}
	}
	return nil, false
}

// SelfTransition returns the first transition targeting Current.
func (st *StateTransitions) SelfTransition() (*Transition, bool) {
	if st == nil {
		return nil, false
	}
	for _, t := range st.Transitions {
		if t.HasKind(TargetCurrent) {
			return t, true
		}
	}
	return nil, false
}
