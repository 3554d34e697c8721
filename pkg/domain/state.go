package domain

// StateID identifies a State. Registry IDs are positive.
type StateID int64

// NullStateID means "no state". It is the failed-transition marker of a
// traversal that did not fail.
const NullStateID StateID = 0

// State is a named, scorable node of the application graph.
type State struct {
	ID   StateID `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`

	// PathScore is the base traversal cost. Higher is less preferred.
	PathScore int `json:"path_score" yaml:"path_score"`

	// Overlay marks states that conceal what is beneath them (dialogs, menus).
	Overlay bool `json:"overlay,omitempty" yaml:"overlay,omitempty"`

	// CanHide restricts which states an overlay conceals.
	// Empty means every active non-overlay state.
	CanHide []StateID `json:"can_hide,omitempty" yaml:"can_hide,omitempty"`

	// Blocking states must be dealt with before anything else on screen.
	Blocking bool `json:"blocking,omitempty" yaml:"blocking,omitempty"`

	// Objects are the matcher handles (images, regions) of the state.
	// They are opaque to navigation.
	Objects []string `json:"objects,omitempty" yaml:"objects,omitempty"`
}

// Hides reports whether the overlay may conceal the candidate state.
func (s *State) Hides(candidate *State) bool {
	if s == nil || candidate == nil || candidate.ID == s.ID {
		return false
	}
	if len(s.CanHide) > 0 {
		for _, id := range s.CanHide {
			if id == candidate.ID {
				return true
			}
		}
		return false
	}
	return s.Overlay && !candidate.Overlay
}
