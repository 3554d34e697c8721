package navigation

import (
	"slices"

	"github.com/aretw0/statenav/pkg/domain"
)

// ActiveStates is the set of states believed to be on screen.
type ActiveStates struct {
	ids map[domain.StateID]struct{}
}

// NewActiveStates creates a set holding the given ids.
func NewActiveStates(ids ...domain.StateID) *ActiveStates {
	a := &ActiveStates{ids: make(map[domain.StateID]struct{}, len(ids))}
	for _, id := range ids {
		a.Add(id)
	}
	return a
}

// Add inserts id. It reports false for duplicates and for NullStateID.
func (a *ActiveStates) Add(id domain.StateID) bool {
	if id == domain.NullStateID {
		return false
	}
	if _, ok := a.ids[id]; ok {
		return false
	}
	a.ids[id] = struct{}{}
	return true
}

// Remove deletes id and reports whether it was present.
func (a *ActiveStates) Remove(id domain.StateID) bool {
	if _, ok := a.ids[id]; !ok {
		return false
	}
	delete(a.ids, id)
	return true
}

// Contains reports membership.
func (a *ActiveStates) Contains(id domain.StateID) bool {
	_, ok := a.ids[id]
	return ok
}

// Len returns the number of active states.
func (a *ActiveStates) Len() int { return len(a.ids) }

// IDs lists the active ids in ascending order.
func (a *ActiveStates) IDs() []domain.StateID {
	out := make([]domain.StateID, 0, len(a.ids))
	for id := range a.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Set returns a copy usable for membership tests.
func (a *ActiveStates) Set() map[domain.StateID]bool {
	out := make(map[domain.StateID]bool, len(a.ids))
	for id := range a.ids {
		out[id] = true
	}
	return out
}

// Clear empties the set.
func (a *ActiveStates) Clear() {
	clear(a.ids)
}
