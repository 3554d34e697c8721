package navigation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
)

// JointTable indexes the transition graph in both directions.
// Static edges come from concrete targets; PREVIOUS edges (overlay -> the
// states it currently hides) are layered on top from a Visibility manager.
type JointTable struct {
	incoming         map[domain.StateID]map[domain.StateID]bool
	outgoing         map[domain.StateID]map[domain.StateID]bool
	incomingPrevious map[domain.StateID]map[domain.StateID]bool
}

// NewJointTable builds the static table from the registry.
func NewJointTable(registry ports.StateRegistry) *JointTable {
	t := &JointTable{
		incoming:         make(map[domain.StateID]map[domain.StateID]bool),
		outgoing:         make(map[domain.StateID]map[domain.StateID]bool),
		incomingPrevious: make(map[domain.StateID]map[domain.StateID]bool),
	}
	for _, s := range registry.States() {
		st, ok := registry.Transitions(s.ID)
		if !ok {
			continue
		}
		for _, tr := range st.Transitions {
			for _, target := range tr.Activate {
				if target.IsConcrete() {
					t.add(target.ID, s.ID)
				}
			}
		}
	}
	return t
}

func (t *JointTable) add(to, from domain.StateID) {
	addEdge(t.incoming, to, from)
	addEdge(t.outgoing, from, to)
}

func addEdge(m map[domain.StateID]map[domain.StateID]bool, key, value domain.StateID) {
	if m[key] == nil {
		m[key] = make(map[domain.StateID]bool)
	}
	m[key][value] = true
}

// ObserveHidden replaces the dynamic PREVIOUS edges with those implied by v:
// every overlay has an edge to each state it hides.
func (t *JointTable) ObserveHidden(v *Visibility) {
	t.incomingPrevious = make(map[domain.StateID]map[domain.StateID]bool)
	if v == nil {
		return
	}
	for _, overlay := range v.Overlays() {
		for _, hidden := range v.HiddenBy(overlay) {
			addEdge(t.incomingPrevious, hidden, overlay)
		}
	}
}

// StatesWithTransitionsTo returns the parents of the given states, PREVIOUS edges included.
func (t *JointTable) StatesWithTransitionsTo(children ...domain.StateID) []domain.StateID {
	parents := make(map[domain.StateID]bool)
	for _, child := range children {
		for p := range t.incoming[child] {
			parents[p] = true
		}
		for p := range t.incomingPrevious[child] {
			parents[p] = true
		}
	}
	return sortedKeys(parents)
}

// StatesWithTransitionsFrom returns the static children of the given states.
func (t *JointTable) StatesWithTransitionsFrom(parents ...domain.StateID) []domain.StateID {
	children := make(map[domain.StateID]bool)
	for _, parent := range parents {
		for c := range t.outgoing[parent] {
			children[c] = true
		}
	}
	return sortedKeys(children)
}

// Ancestors returns every state with a route to target, target included.
func (t *JointTable) Ancestors(target domain.StateID) map[domain.StateID]bool {
	seen := map[domain.StateID]bool{target: true}
	queue := []domain.StateID{target}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, p := range t.StatesWithTransitionsTo(current) {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return seen
}

// Reachable returns every state reachable from the given states over static edges.
func (t *JointTable) Reachable(from ...domain.StateID) map[domain.StateID]bool {
	seen := make(map[domain.StateID]bool)
	queue := append([]domain.StateID(nil), from...)
	for _, id := range from {
		seen[id] = true
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, c := range t.StatesWithTransitionsFrom(current) {
			if !seen[c] {
				seen[c] = true
				queue = append(queue, c)
			}
		}
	}
	return seen
}

func (t *JointTable) String() string {
	var sb strings.Builder
	sb.WriteString("JointTable\n")
	writeSection(&sb, "incoming transitions to state", t.incoming)
	writeSection(&sb, "outgoing transitions from state", t.outgoing)
	writeSection(&sb, "incoming transitions to PREVIOUS", t.incomingPrevious)
	return sb.String()
}

func writeSection(sb *strings.Builder, label string, m map[domain.StateID]map[domain.StateID]bool) {
	keys := make([]domain.StateID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(sb, "%s %d: %v\n", label, k, sortedKeys(m[k]))
	}
}

func sortedKeys(m map[domain.StateID]bool) []domain.StateID {
	out := make([]domain.StateID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
