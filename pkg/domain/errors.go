package domain

import (
	"errors"
	"fmt"
)

// ErrStateNotFound is returned when a state cannot be resolved in the registry.
var ErrStateNotFound = errors.New("state not found")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// StateNotFoundError reports an unresolvable navigation target.
// Exactly one of Name or ID identifies the missing state.
type StateNotFoundError struct {
	Name string
	ID   StateID
}

func (e *StateNotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("state %q not found", e.Name)
	}
	return fmt.Sprintf("state %d not found", e.ID)
}

// Is allows errors.Is(err, ErrStateNotFound).
func (e *StateNotFoundError) Is(target error) bool {
	return target == ErrStateNotFound
}
