package domain

import (
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Path is a concrete route: ordered states, the transitions linking them and
// an aggregate score. States may repeat.
type Path struct {
	States      []StateID
	Transitions []*Transition
	Score       int
}

// NewPath creates a path over the given states with no transitions.
func NewPath(states ...StateID) *Path {
	return &Path{States: append([]StateID(nil), states...)}
}

// Size returns the number of states on the path.
func (p *Path) Size() int { return len(p.States) }

// Empty reports whether the path has no states.
func (p *Path) Empty() bool { return len(p.States) == 0 }

// Contains reports whether id appears anywhere on the path.
func (p *Path) Contains(id StateID) bool {
	return slices.Contains(p.States, id)
}

// Start returns the first state, or NullStateID.
func (p *Path) Start() StateID {
	if p.Empty() {
		return NullStateID
	}
	return p.States[0]
}

// End returns the last state, or NullStateID.
func (p *Path) End() StateID {
	if p.Empty() {
		return NullStateID
	}
	return p.States[len(p.States)-1]
}

// Transition returns the transition leaving the i-th state, if recorded.
func (p *Path) Transition(i int) *Transition {
	if i < 0 || i >= len(p.Transitions) {
		return nil
	}
	return p.Transitions[i]
}

// Clean returns the part of the path still usable after a failure.
// A path crossing the failed start is discarded. Otherwise the path is trimmed
// to begin at the last active state it passes through; a path touching no
// active state is discarded. Discarded paths come back empty.
func (p *Path) Clean(active map[StateID]bool, failedStart StateID) *Path {
	if failedStart != NullStateID && p.Contains(failedStart) {
		return &Path{}
	}
	for i := len(p.States) - 1; i >= 0; i-- {
		if active[p.States[i]] {
			return p.trimFrom(i)
		}
	}
	return &Path{}
}

func (p *Path) trimFrom(i int) *Path {
	trimmed := &Path{
		States: append([]StateID(nil), p.States[i:]...),
		Score:  p.Score,
	}
	if i < len(p.Transitions) {
		trimmed.Transitions = append([]*Transition(nil), p.Transitions[i:]...)
	}
	return trimmed
}

// Clone copies the path. Transitions are shared.
func (p *Path) Clone() *Path {
	return &Path{
		States:      append([]StateID(nil), p.States...),
		Transitions: append([]*Transition(nil), p.Transitions...),
		Score:       p.Score,
	}
}

func (p *Path) String() string {
	parts := make([]string, len(p.States))
	for i, id := range p.States {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}
	return "[" + strings.Join(parts, " -> ") + "] score=" + strconv.Itoa(p.Score)
}

// Paths is an ordered collection of candidate paths.
type Paths struct {
	Paths []*Path
}

// NewPaths wraps the given paths.
func NewPaths(paths ...*Path) *Paths {
	return &Paths{Paths: append([]*Path{}, paths...)}
}

// Len returns the number of paths.
func (ps *Paths) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.Paths)
}

// Empty reports whether no path is left.
func (ps *Paths) Empty() bool { return ps.Len() == 0 }

// Add appends a path.
func (ps *Paths) Add(p *Path) { ps.Paths = append(ps.Paths, p) }

// Best returns the first path, if any.
func (ps *Paths) Best() (*Path, bool) {
	if ps.Empty() {
		return nil, false
	}
	return ps.Paths[0], true
}

// Sort orders the paths ascending by score. Equal scores keep their order.
func (ps *Paths) Sort() {
	sort.SliceStable(ps.Paths, func(i, j int) bool {
		return ps.Paths[i].Score < ps.Paths[j].Score
	})
}

// Sorted reports whether scores never decrease along the collection.
func (ps *Paths) Sorted() bool {
	for i := 1; i < ps.Len(); i++ {
		if ps.Paths[i-1].Score > ps.Paths[i].Score {
			return false
		}
	}
	return true
}

// Clean applies Path.Clean to every path and keeps the non-empty results.
// The result is never nil.
func (ps *Paths) Clean(active map[StateID]bool, failedStart StateID) *Paths {
	cleaned := &Paths{Paths: []*Path{}}
	if ps == nil {
		return cleaned
	}
	for _, p := range ps.Paths {
		if c := p.Clean(active, failedStart); !c.Empty() {
			cleaned.Add(c)
		}
	}
	return cleaned
}
