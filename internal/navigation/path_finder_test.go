package navigation_test

import (
	"testing"

	"github.com/aretw0/statenav/internal/navigation"
	"github.com/aretw0/statenav/internal/testutils"
	"github.com/aretw0/statenav/pkg/adapters/memory"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, b *dsl.Builder) *memory.Registry {
	t.Helper()
	r, err := b.Build()
	require.NoError(t, err)
	return r
}

func statesOf(paths *domain.Paths) [][]domain.StateID {
	out := make([][]domain.StateID, 0, paths.Len())
	for _, p := range paths.Paths {
		out = append(out, p.States)
	}
	return out
}

// diamond: A -> B -> D, A -> C -> D, D -> A
func diamond(t *testing.T) *memory.Registry {
	b := dsl.New()
	b.Add("A").ID(1).Go("B").Go("C")
	b.Add("B").ID(2).Go("D")
	b.Add("C").ID(3).Go("D")
	b.Add("D").ID(4).Go("A")
	b.Add("E").ID(5).Go("E")
	return build(t, b)
}

func TestPathFinder_DiscoveryOrder(t *testing.T) {
	r := diamond(t)
	f := navigation.NewPathFinder(r, testutils.Logger(t))

	paths := f.PathsToState(navigation.NewSession("s", 1), 4)

	assert.Equal(t, [][]domain.StateID{{1, 2, 4}, {1, 3, 4}}, statesOf(paths))
	for _, p := range paths.Paths {
		require.Len(t, p.Transitions, len(p.States)-1)
		assert.True(t, p.Transitions[0].Activates(p.States[1]))
	}
}

func TestPathFinder_MultipleStarts(t *testing.T) {
	r := diamond(t)
	f := navigation.NewPathFinder(r, nil)

	paths := f.PathsToState(navigation.NewSession("s", 3, 2), 4)

	assert.Equal(t, [][]domain.StateID{{2, 4}, {3, 4}}, statesOf(paths), "starts in ascending id order")
}

func TestPathFinder_ActiveTarget(t *testing.T) {
	r := diamond(t)
	f := navigation.NewPathFinder(r, nil)

	paths := f.PathsToState(navigation.NewSession("s", 4), 4)

	require.Equal(t, 1, paths.Len())
	assert.Equal(t, []domain.StateID{4}, paths.Paths[0].States)
}

func TestPathFinder_Unreachable(t *testing.T) {
	r := diamond(t)
	f := navigation.NewPathFinder(r, nil)

	assert.True(t, f.PathsToState(navigation.NewSession("s", 1), 5).Empty())
	assert.True(t, f.PathsToState(navigation.NewSession("s", 1), 99).Empty())
	assert.True(t, f.PathsToState(navigation.NewSession("s"), 4).Empty())
}

func TestPathFinder_CyclesAreBounded(t *testing.T) {
	b := dsl.New()
	b.Add("A").ID(1).Go("B")
	b.Add("B").ID(2).Go("C").Go("A")
	b.Add("C").ID(3)
	r := build(t, b)

	simple := navigation.New(r).Finder().PathsToState(navigation.NewSession("s", 1), 3)
	assert.Equal(t, [][]domain.StateID{{1, 2, 3}}, statesOf(simple))

	nav := navigation.New(r, navigation.WithMaxVisits(2), navigation.WithMaxDepth(8))
	cyclic := nav.Finder().PathsToState(navigation.NewSession("s", 1), 3)
	assert.Equal(t, [][]domain.StateID{{1, 2, 3}, {1, 2, 1, 2, 3}}, statesOf(cyclic))

	shallow := navigation.New(r, navigation.WithMaxVisits(10), navigation.WithMaxDepth(4))
	for _, p := range shallow.Finder().PathsToState(navigation.NewSession("s", 1), 3).Paths {
		assert.LessOrEqual(t, p.Size(), 4)
	}

	capped := navigation.New(r, navigation.WithMaxVisits(10), navigation.WithMaxPaths(3))
	assert.Equal(t, 3, capped.Finder().PathsToState(navigation.NewSession("s", 1), 3).Len())
}

func TestPathFinder_PreviousAndCurrent(t *testing.T) {
	b := dsl.New()
	b.Add("Main").ID(1).Go("Modal")
	b.Add("Modal").ID(2).Overlay().Back().Refresh()
	r := build(t, b)
	f := navigation.NewPathFinder(r, testutils.Logger(t))

	s := navigation.NewSession("s", 2)
	assert.True(t, f.PathsToState(s, 1).Empty(), "nothing hidden, nowhere to go back to")

	s.Visibility().Hide(2, 1)
	paths := f.PathsToState(s, 1)
	require.Equal(t, 1, paths.Len())
	assert.Equal(t, []domain.StateID{2, 1}, paths.Paths[0].States)
	assert.True(t, paths.Paths[0].Transitions[0].HasKind(domain.TargetPrevious))

	for _, p := range f.PathsToState(navigation.NewSession("s", 1), 2).Paths {
		assert.NotContains(t, p.States[1:len(p.States)-1], domain.StateID(2), "current targets are not expanded")
	}
}

func TestJointTable(t *testing.T) {
	r := diamond(t)
	table := navigation.NewJointTable(r)

	assert.Equal(t, []domain.StateID{2, 3}, table.StatesWithTransitionsTo(4))
	assert.Equal(t, []domain.StateID{2, 3}, table.StatesWithTransitionsFrom(1))
	assert.Equal(t, []domain.StateID{5}, table.StatesWithTransitionsTo(5))

	ancestors := table.Ancestors(4)
	assert.True(t, ancestors[1])
	assert.True(t, ancestors[4])
	assert.False(t, ancestors[5])

	reachable := table.Reachable(2)
	assert.Len(t, reachable, 4)
	assert.False(t, reachable[5])

	v := navigation.NewVisibility()
	v.Hide(5, 1)
	table.ObserveHidden(v)
	assert.Equal(t, []domain.StateID{4, 5}, table.StatesWithTransitionsTo(1))
	assert.Contains(t, table.String(), "incoming transitions to PREVIOUS 1: [5]")
}
