package navigation

import (
	"github.com/aretw0/statenav/pkg/domain"
)

// Session is the mutable context of one automation session: what is on screen
// and what overlays conceal. It has no internal locking; one navigation at a
// time may use it.
type Session struct {
	ID         string
	active     *ActiveStates
	visibility *Visibility
}

// NewSession creates a session with the given states active.
func NewSession(id string, active ...domain.StateID) *Session {
	return &Session{
		ID:         id,
		active:     NewActiveStates(active...),
		visibility: NewVisibility(),
	}
}

// RestoreSession rebuilds a session from a snapshot.
// Hidden sets of overlays that are not active are dropped.
func RestoreSession(snap *domain.Snapshot) *Session {
	s := NewSession(snap.SessionID, snap.Active...)
	for overlay, ids := range snap.Hidden {
		if s.active.Contains(overlay) {
			s.visibility.Hide(overlay, ids...)
		}
	}
	return s
}

// Snapshot captures the session for persistence.
func (s *Session) Snapshot() *domain.Snapshot {
	return &domain.Snapshot{
		SessionID: s.ID,
		Active:    s.active.IDs(),
		Hidden:    s.visibility.Snapshot(),
	}
}

// ActiveStates lists the active ids in ascending order.
func (s *Session) ActiveStates() []domain.StateID { return s.active.IDs() }

// ActiveSet returns a membership copy of the active states.
func (s *Session) ActiveSet() map[domain.StateID]bool { return s.active.Set() }

// IsActive reports whether id is active.
func (s *Session) IsActive(id domain.StateID) bool { return s.active.Contains(id) }

// AddActiveState marks id as on screen. A state cannot be active and hidden at once.
func (s *Session) AddActiveState(id domain.StateID) bool {
	s.visibility.Unhide(id)
	return s.active.Add(id)
}

// RemoveInactiveState marks id as gone and discards what it was hiding.
func (s *Session) RemoveInactiveState(id domain.StateID) bool {
	s.visibility.Reset(id)
	return s.active.Remove(id)
}

// Visibility exposes the hidden-state bookkeeping.
func (s *Session) Visibility() *Visibility { return s.visibility }

// hide moves id off screen, under overlay.
func (s *Session) hide(overlay, id domain.StateID) {
	s.active.Remove(id)
	s.visibility.Hide(overlay, id)
}

// Reset clears the active set and every hidden set.
func (s *Session) Reset() {
	s.active.Clear()
	s.visibility = NewVisibility()
}
