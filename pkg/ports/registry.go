package ports

import "github.com/aretw0/statenav/pkg/domain"

// StateRegistry resolves the states of an application graph.
// Lookups use the comma-ok form: absence is a normal branch, not an error.
type StateRegistry interface {
	// State returns the state with the given id.
	State(id domain.StateID) (*domain.State, bool)

	// StateByName returns the state with the given name.
	StateByName(name string) (*domain.State, bool)

	// States lists every state in ascending id order.
	States() []*domain.State

	// Transitions returns the outgoing transitions and arrival hook of a state.
	Transitions(id domain.StateID) (*domain.StateTransitions, bool)
}

// HookBinder supplies hook implementations for a graph that was loaded without them
// (YAML files, HTTP uploads). Returning nil leaves the hook unset, which always succeeds.
type HookBinder interface {
	// Outgoing returns the hook of the index-th transition leaving the named state.
	Outgoing(state string, index int) domain.Hook

	// Arrival returns the arrival check of the named state.
	Arrival(state string) domain.Hook
}
