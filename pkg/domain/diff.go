package domain

import (
	"slices"
)

// SnapshotDiff represents the changes between two session snapshots.
// It is serialized to JSON for clients that keep a local view of a session.
type SnapshotDiff struct {
	// SessionID is always present to identify the target.
	SessionID string `json:"session_id"`

	// Activated lists states that became active.
	Activated []StateID `json:"activated,omitempty"`

	// Deactivated lists states that left the active set (exited or hidden).
	Deactivated []StateID `json:"deactivated,omitempty"`

	// Hidden contains overlays whose hidden set changed, with the new set.
	// An overlay that no longer hides anything maps to an empty list.
	Hidden map[StateID][]StateID `json:"hidden,omitempty"`
}

// Diff calculates the difference between old and new.
// If old is nil, it returns a diff representing the entire new snapshot (initial load).
// It returns nil when nothing changed.
func Diff(old, new *Snapshot) *SnapshotDiff {
	if new == nil {
		return nil
	}

	diff := &SnapshotDiff{SessionID: new.SessionID}

	var oldActive []StateID
	var oldHidden map[StateID][]StateID
	if old != nil {
		oldActive = old.Active
		oldHidden = old.Hidden
	}

	for _, id := range new.Active {
		if !slices.Contains(oldActive, id) {
			diff.Activated = append(diff.Activated, id)
		}
	}
	for _, id := range oldActive {
		if !slices.Contains(new.Active, id) {
			diff.Deactivated = append(diff.Deactivated, id)
		}
	}

	diff.Hidden = diffHidden(oldHidden, new.Hidden)

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func diffHidden(old, new map[StateID][]StateID) map[StateID][]StateID {
	delta := make(map[StateID][]StateID)

	for overlay, ids := range new {
		if !sameMembers(old[overlay], ids) {
			delta[overlay] = append([]StateID{}, ids...)
		}
	}
	for overlay, ids := range old {
		if _, ok := new[overlay]; !ok && len(ids) > 0 {
			delta[overlay] = []StateID{}
		}
	}

	if len(delta) == 0 {
		return nil
	}
	return delta
}

func sameMembers(a, b []StateID) bool {
	if len(a) != len(b) {
		return false
	}
	for _, id := range a {
		if !slices.Contains(b, id) {
			return false
		}
	}
	return true
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *SnapshotDiff) IsEmpty() bool {
	return len(d.Activated) == 0 &&
		len(d.Deactivated) == 0 &&
		len(d.Hidden) == 0
}
