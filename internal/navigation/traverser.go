package navigation

import (
	"context"

	"github.com/aretw0/statenav/pkg/domain"
)

// Traverser walks a path hop by hop.
type Traverser struct {
	executor *Executor
}

// NewTraverser creates a traverser driving the given executor.
func NewTraverser(executor *Executor) *Traverser {
	return &Traverser{executor: executor}
}

// Traverse executes every hop of the path in order and stops at the first
// failure. It returns the start state of the failed hop, or NullStateID.
// Empty and single-state paths succeed without executing anything.
func (t *Traverser) Traverse(ctx context.Context, s *Session, path *domain.Path) (bool, domain.StateID) {
	for i := 0; i+1 < len(path.States); i++ {
		from, to := path.States[i], path.States[i+1]
		if !t.executor.Go(ctx, s, from, to, path.Transition(i)) {
			return false, from
		}
	}
	return true, domain.NullStateID
}
