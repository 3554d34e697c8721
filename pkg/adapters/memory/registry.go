package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/statenav/pkg/domain"
)

// Registry implements ports.StateRegistry using in-memory maps.
// States can be added or replaced between navigations; lookups are safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	byID        map[domain.StateID]*domain.State
	byName      map[string]domain.StateID
	transitions map[domain.StateID]*domain.StateTransitions
	nextID      domain.StateID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:        make(map[domain.StateID]*domain.State),
		byName:      make(map[string]domain.StateID),
		transitions: make(map[domain.StateID]*domain.StateTransitions),
		nextID:      1,
	}
}

// NewFromStates creates a registry holding the given states.
// This handles id assignment automatically, improving DX for tests.
func NewFromStates(states ...domain.State) (*Registry, error) {
	r := NewRegistry()
	for _, s := range states {
		if _, err := r.Add(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add stores a state. A zero ID is replaced by the next free id.
// Names and ids must be unique; scores must not be negative.
func (r *Registry) Add(s domain.State) (domain.StateID, error) {
	if s.Name == "" {
		return domain.NullStateID, fmt.Errorf("state missing name")
	}
	if s.PathScore < 0 {
		return domain.NullStateID, fmt.Errorf("state %q has negative path score %d", s.Name, s.PathScore)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[s.Name]; exists {
		return domain.NullStateID, fmt.Errorf("duplicate state name: %s", s.Name)
	}
	if s.ID == domain.NullStateID {
		for r.byID[r.nextID] != nil {
			r.nextID++
		}
		s.ID = r.nextID
	} else if s.ID < 0 {
		return domain.NullStateID, fmt.Errorf("state %q has invalid id %d", s.Name, s.ID)
	} else if _, exists := r.byID[s.ID]; exists {
		return domain.NullStateID, fmt.Errorf("duplicate state id: %d", s.ID)
	}

	stored := s
	r.byID[s.ID] = &stored
	r.byName[s.Name] = s.ID
	if _, ok := r.transitions[s.ID]; !ok {
		r.transitions[s.ID] = &domain.StateTransitions{StateID: s.ID}
	}
	return s.ID, nil
}

// Remove deletes a state and its outgoing transitions.
// Paths still referencing it score it as 0.
func (r *Registry) Remove(id domain.StateID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.byID[id]; ok {
		delete(r.byName, s.Name)
	}
	delete(r.byID, id)
	delete(r.transitions, id)
}

// AddTransition appends an outgoing transition to a state.
func (r *Registry) AddTransition(from domain.StateID, t *domain.Transition) error {
	if t == nil {
		return fmt.Errorf("nil transition from state %d", from)
	}
	if t.Cost < 0 {
		return fmt.Errorf("transition from state %d has negative cost %d", from, t.Cost)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.transitions[from]
	if !ok {
		return fmt.Errorf("transition source %d: %w", from, domain.ErrStateNotFound)
	}
	st.Transitions = append(st.Transitions, t)
	return nil
}

// SetArrival sets the arrival check of a state.
func (r *Registry) SetArrival(id domain.StateID, hook domain.Hook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.transitions[id]
	if !ok {
		return fmt.Errorf("arrival for state %d: %w", id, domain.ErrStateNotFound)
	}
	st.Arrival = hook
	return nil
}

// SetCanHide replaces the states the given state conceals when it opens.
func (r *Registry) SetCanHide(id domain.StateID, hides ...domain.StateID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("can_hide for state %d: %w", id, domain.ErrStateNotFound)
	}
	updated := *s
	updated.CanHide = append([]domain.StateID(nil), hides...)
	r.byID[id] = &updated
	return nil
}

// State returns the state with the given id.
func (r *Registry) State(id domain.StateID) (*domain.State, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	return s, ok
}

// StateByName returns the state with the given name.
func (r *Registry) StateByName(name string) (*domain.State, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return r.byID[id], true
}

// States lists every state in ascending id order.
func (r *Registry) States() []*domain.State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	states := make([]*domain.State, 0, len(r.byID))
	for _, s := range r.byID {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID }) // Deterministic order
	return states
}

// Transitions returns the outgoing transitions and arrival hook of a state.
func (r *Registry) Transitions(id domain.StateID) (*domain.StateTransitions, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.transitions[id]
	return st, ok
}

// Name returns the state name, or the id in parentheses when unknown.
func (r *Registry) Name(id domain.StateID) string {
	if s, ok := r.State(id); ok {
		return s.Name
	}
	return fmt.Sprintf("(%d)", id)
}
