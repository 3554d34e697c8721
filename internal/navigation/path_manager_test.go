package navigation_test

import (
	"testing"

	"github.com/aretw0/statenav/internal/navigation"
	"github.com/aretw0/statenav/internal/testutils"
	"github.com/aretw0/statenav/pkg/adapters/memory"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoredRegistry holds states 1..5 scored 10, 20, 15, 5, 25.
func scoredRegistry(t *testing.T) *memory.Registry {
	t.Helper()
	r, err := memory.NewFromStates(
		domain.State{ID: 1, Name: "one", PathScore: 10},
		domain.State{ID: 2, Name: "two", PathScore: 20},
		domain.State{ID: 3, Name: "three", PathScore: 15},
		domain.State{ID: 4, Name: "four", PathScore: 5},
		domain.State{ID: 5, Name: "five", PathScore: 25},
	)
	require.NoError(t, err)
	return r
}

func TestPathManager_UpdateScore(t *testing.T) {
	r := scoredRegistry(t)
	m := navigation.NewPathManager(r, testutils.Logger(t))

	t.Run("Duplicates Counted", func(t *testing.T) {
		p := domain.NewPath(1, 2, 1)
		m.UpdateScore(p)
		assert.Equal(t, 40, p.Score)
	})

	t.Run("Unknown State Contributes Zero", func(t *testing.T) {
		p := domain.NewPath(1, 99, 2)
		m.UpdateScore(p)
		assert.Equal(t, 30, p.Score)
	})

	t.Run("Transition Costs Added", func(t *testing.T) {
		p := &domain.Path{
			States:      []domain.StateID{4, 5},
			Transitions: []*domain.Transition{{Activate: []domain.Target{domain.To(5)}, Cost: 7}},
		}
		m.UpdateScore(p)
		assert.Equal(t, 37, p.Score)
	})

	t.Run("Zero Cost Transitions", func(t *testing.T) {
		p := &domain.Path{
			States:      []domain.StateID{4, 5},
			Transitions: []*domain.Transition{{Activate: []domain.Target{domain.To(5)}}},
		}
		m.UpdateScore(p)
		assert.Equal(t, 30, p.Score)
	})
}

func TestPathManager_EmptyPathNeedsNoLookups(t *testing.T) {
	counting := testutils.NewCountingRegistry(scoredRegistry(t))
	m := navigation.NewPathManager(counting, nil)

	p := &domain.Path{Score: 99}
	m.UpdateScore(p)

	assert.Equal(t, 0, p.Score)
	assert.Zero(t, counting.Lookups())
}

func TestPathManager_UpdateScores_SortsAscending(t *testing.T) {
	m := navigation.NewPathManager(scoredRegistry(t), testutils.Logger(t))

	a := domain.NewPath(1, 2, 3)
	b := domain.NewPath(4, 5)
	paths := domain.NewPaths(a, b)

	m.UpdateScores(paths)

	require.Equal(t, 2, paths.Len())
	assert.Same(t, b, paths.Paths[0])
	assert.Same(t, a, paths.Paths[1])
	assert.Equal(t, 30, b.Score)
	assert.Equal(t, 45, a.Score)
	assert.True(t, paths.Sorted())
}

func TestPathManager_UpdateScores_StableTies(t *testing.T) {
	m := navigation.NewPathManager(scoredRegistry(t), nil)

	first := domain.NewPath(1, 4) // 15
	second := domain.NewPath(3)   // 15
	third := domain.NewPath(4, 4) // 10
	paths := domain.NewPaths(first, second, third)

	m.UpdateScores(paths)

	assert.Equal(t, []*domain.Path{third, first, second}, paths.Paths)
}

func TestPathManager_UpdateScores_Empty(t *testing.T) {
	m := navigation.NewPathManager(scoredRegistry(t), nil)
	paths := domain.NewPaths()
	m.UpdateScores(paths)
	assert.True(t, paths.Empty())
}

func TestPathManager_CleanPaths(t *testing.T) {
	m := navigation.NewPathManager(scoredRegistry(t), testutils.Logger(t))

	t.Run("Failed Start And No Overlap", func(t *testing.T) {
		paths := domain.NewPaths(domain.NewPath(1, 2, 3), domain.NewPath(4, 5))
		active := map[domain.StateID]bool{2: true}

		cleaned := m.CleanPaths(active, paths, 1)

		require.NotNil(t, cleaned)
		assert.True(t, cleaned.Empty())
	})

	t.Run("Survivors Trimmed And Rescored", func(t *testing.T) {
		paths := domain.NewPaths(domain.NewPath(1, 2, 3), domain.NewPath(4, 5), domain.NewPath(4, 2))
		active := map[domain.StateID]bool{2: true}

		cleaned := m.CleanPaths(active, paths, 5)

		require.Equal(t, 2, cleaned.Len())
		assert.Equal(t, []domain.StateID{2}, cleaned.Paths[0].States)
		assert.Equal(t, 20, cleaned.Paths[0].Score)
		assert.Equal(t, []domain.StateID{2, 3}, cleaned.Paths[1].States)
		assert.Equal(t, 35, cleaned.Paths[1].Score)
	})

	t.Run("Null Failed Start Drops Nothing", func(t *testing.T) {
		paths := domain.NewPaths(domain.NewPath(4, 5))
		active := map[domain.StateID]bool{4: true}

		cleaned := m.CleanPaths(active, paths, domain.NullStateID)

		require.Equal(t, 1, cleaned.Len())
		assert.Equal(t, 30, cleaned.Paths[0].Score)
	})

	t.Run("Nil Input", func(t *testing.T) {
		cleaned := m.CleanPaths(nil, nil, 1)
		require.NotNil(t, cleaned)
		assert.True(t, cleaned.Empty())
	})
}
