package dto

// GraphFile is the on-disk shape of a state graph.
// It uses "mapstructure" tags to match the YAML keys after the document is decoded into a map.
type GraphFile struct {
	Name   string     `json:"name" mapstructure:"name"`
	Start  []string   `json:"start" mapstructure:"start"`
	States []StateDef `json:"states" mapstructure:"states"`
}

// StateDef describes one screen state and its outgoing transitions.
type StateDef struct {
	Name     string   `json:"name" mapstructure:"name"`
	ID       int64    `json:"id" mapstructure:"id"`
	Score    int      `json:"score" mapstructure:"score"`
	Overlay  bool     `json:"overlay" mapstructure:"overlay"`
	CanHide  []string `json:"can_hide" mapstructure:"can_hide"`
	Blocking bool     `json:"blocking" mapstructure:"blocking"`
	Objects  []string `json:"objects" mapstructure:"objects"`

	// Arrival is the mock behaviour of the state's arrival check (succeed, fail, flaky:N).
	Arrival string `json:"arrival" mapstructure:"arrival"`
	// Check names a registered action that verifies arrival; it overrides Arrival.
	Check string `json:"check" mapstructure:"check"`

	Transitions []TransitionDef `json:"transitions" mapstructure:"transitions"`
}

// TransitionDef describes one outgoing transition.
// "to" accepts a single target or a list; "previous" and "current" are reserved target names.
type TransitionDef struct {
	To           []Target `json:"to" mapstructure:"to"`
	Exit         []string `json:"exit" mapstructure:"exit"`
	Cost         int      `json:"cost" mapstructure:"cost"`
	StaysVisible bool     `json:"stays_visible" mapstructure:"stays_visible"`

	// Mock is the mock behaviour of the transition (succeed, fail, flaky:N).
	Mock string `json:"mock" mapstructure:"mock"`
	// Action names a registered action that performs the transition; it overrides Mock.
	Action string `json:"action" mapstructure:"action"`
}

// TargetKind names the kind of a transition target in a graph file.
type TargetKind string

const (
	TargetState    TargetKind = "state"
	TargetPrevious TargetKind = "previous"
	TargetCurrent  TargetKind = "current"
)

// Target is a decoded "to" entry.
type Target struct {
	Kind TargetKind `json:"kind" mapstructure:"kind"`
	Name string     `json:"name,omitempty" mapstructure:"name"`
}
