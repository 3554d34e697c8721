package navigation

import (
	"slices"

	"github.com/aretw0/statenav/pkg/domain"
)

// Visibility records, per active overlay, which states it conceals.
// Hidden sets live here rather than on State values so that shared State
// pointers are never mutated during a navigation.
type Visibility struct {
	hidden map[domain.StateID][]domain.StateID
}

// NewVisibility creates an empty manager.
func NewVisibility() *Visibility {
	return &Visibility{hidden: make(map[domain.StateID][]domain.StateID)}
}

// Hide adds ids to the overlay's hidden set, keeping first-hidden order.
func (v *Visibility) Hide(overlay domain.StateID, ids ...domain.StateID) {
	set := v.hidden[overlay]
	for _, id := range ids {
		if id == overlay || slices.Contains(set, id) {
			continue
		}
		set = append(set, id)
	}
	if len(set) > 0 {
		v.hidden[overlay] = set
	}
}

// HiddenBy returns a copy of the states the overlay conceals.
func (v *Visibility) HiddenBy(overlay domain.StateID) []domain.StateID {
	return append([]domain.StateID(nil), v.hidden[overlay]...)
}

// HiderOf returns the overlay concealing id, if any.
func (v *Visibility) HiderOf(id domain.StateID) (domain.StateID, bool) {
	for _, overlay := range v.Overlays() {
		if slices.Contains(v.hidden[overlay], id) {
			return overlay, true
		}
	}
	return domain.NullStateID, false
}

// IsHidden reports whether any overlay conceals id.
func (v *Visibility) IsHidden(id domain.StateID) bool {
	_, ok := v.HiderOf(id)
	return ok
}

// Unhide removes id from every hidden set.
func (v *Visibility) Unhide(id domain.StateID) {
	for overlay, set := range v.hidden {
		if i := slices.Index(set, id); i >= 0 {
			set = slices.Delete(set, i, i+1)
			if len(set) == 0 {
				delete(v.hidden, overlay)
			} else {
				v.hidden[overlay] = set
			}
		}
	}
}

// Reveal returns the overlay's hidden states and clears the set.
func (v *Visibility) Reveal(overlay domain.StateID) []domain.StateID {
	revealed := v.hidden[overlay]
	delete(v.hidden, overlay)
	return revealed
}

// Reset discards the overlay's hidden set.
func (v *Visibility) Reset(overlay domain.StateID) {
	delete(v.hidden, overlay)
}

// Overlays lists overlays with a non-empty hidden set, ascending.
func (v *Visibility) Overlays() []domain.StateID {
	out := make([]domain.StateID, 0, len(v.hidden))
	for id := range v.hidden {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Snapshot deep-copies the hidden sets.
func (v *Visibility) Snapshot() map[domain.StateID][]domain.StateID {
	out := make(map[domain.StateID][]domain.StateID, len(v.hidden))
	for k, set := range v.hidden {
		out[k] = append([]domain.StateID(nil), set...)
	}
	return out
}

// Restore replaces the hidden sets with a copy of snap.
func (v *Visibility) Restore(snap map[domain.StateID][]domain.StateID) {
	v.hidden = make(map[domain.StateID][]domain.StateID, len(snap))
	for overlay, ids := range snap {
		v.Hide(overlay, ids...)
	}
}
