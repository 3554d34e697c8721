package navigation

import (
	"log/slog"

	"github.com/aretw0/statenav/internal/logging"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
)

const (
	// DefaultMaxVisits allows each state once per candidate path (simple paths).
	DefaultMaxVisits = 1
	// DefaultMaxDepth bounds the number of states on a candidate path.
	DefaultMaxDepth = 32
	// DefaultMaxPaths bounds the number of candidates collected per search.
	DefaultMaxPaths = 256
)

// PathFinder enumerates routes from the active states to a target.
type PathFinder struct {
	registry  ports.StateRegistry
	logger    *slog.Logger
	maxVisits int
	maxDepth  int
	maxPaths  int
}

// NewPathFinder creates a finder with the default search bounds.
func NewPathFinder(registry ports.StateRegistry, logger *slog.Logger) *PathFinder {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PathFinder{
		registry:  registry,
		logger:    logger,
		maxVisits: DefaultMaxVisits,
		maxDepth:  DefaultMaxDepth,
		maxPaths:  DefaultMaxPaths,
	}
}

// PathsToState returns every distinct route from an active state of the
// session to target, in discovery order. Active starts are tried in ascending
// id order, transitions in declaration order and targets in listed order.
// Current targets are never expanded; Previous targets expand to what the
// source overlay currently hides.
func (f *PathFinder) PathsToState(s *Session, target domain.StateID) *domain.Paths {
	paths := domain.NewPaths()
	if _, ok := f.registry.State(target); !ok {
		f.logger.Debug("path search target unknown", "state_id", target)
		return paths
	}

	table := NewJointTable(f.registry)
	table.ObserveHidden(s.Visibility())

	sr := &search{
		finder:   f,
		session:  s,
		target:   target,
		relevant: table.Ancestors(target),
		visits:   make(map[domain.StateID]int),
		out:      paths,
	}
	for _, start := range s.ActiveStates() {
		if start == target {
			paths.Add(domain.NewPath(target))
			continue
		}
		if !sr.relevant[start] {
			continue
		}
		sr.visit(start)
	}

	f.logger.Debug("path search finished",
		"target", target,
		"active", s.ActiveStates(),
		"paths", paths.Len(),
	)
	return paths
}

// search is the state of one depth-first enumeration.
type search struct {
	finder      *PathFinder
	session     *Session
	target      domain.StateID
	relevant    map[domain.StateID]bool
	visits      map[domain.StateID]int
	states      []domain.StateID
	transitions []*domain.Transition
	out         *domain.Paths
}

func (sr *search) full() bool {
	return sr.out.Len() >= sr.finder.maxPaths
}

func (sr *search) visit(id domain.StateID) {
	if sr.full() || len(sr.states) >= sr.finder.maxDepth || sr.visits[id] >= sr.finder.maxVisits {
		return
	}

	sr.visits[id]++
	sr.states = append(sr.states, id)
	defer func() {
		sr.visits[id]--
		sr.states = sr.states[:len(sr.states)-1]
	}()

	if id == sr.target && len(sr.states) > 1 {
		sr.out.Add(&domain.Path{
			States:      append([]domain.StateID(nil), sr.states...),
			Transitions: append([]*domain.Transition(nil), sr.transitions...),
		})
		return
	}

	st, ok := sr.finder.registry.Transitions(id)
	if !ok {
		return
	}
	for _, t := range st.Transitions {
		for _, next := range sr.successors(id, t) {
			if !sr.relevant[next] {
				continue
			}
			sr.transitions = append(sr.transitions, t)
			sr.visit(next)
			sr.transitions = sr.transitions[:len(sr.transitions)-1]
		}
	}
}

// successors resolves the states a transition can lead to during search.
func (sr *search) successors(from domain.StateID, t *domain.Transition) []domain.StateID {
	var out []domain.StateID
	seen := make(map[domain.StateID]bool)
	add := func(id domain.StateID) {
		if id == from || seen[id] {
			return
		}
		if _, ok := sr.finder.registry.State(id); !ok {
			return
		}
		seen[id] = true
		out = append(out, id)
	}
	for _, target := range t.Activate {
		switch target.Kind {
		case domain.TargetConcrete:
			add(target.ID)
		case domain.TargetPrevious:
			for _, hidden := range sr.session.Visibility().HiddenBy(from) {
				add(hidden)
			}
		}
	}
	return out
}
