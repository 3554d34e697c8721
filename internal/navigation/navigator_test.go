package navigation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/statenav/internal/navigation"
	"github.com/aretw0/statenav/internal/testutils"
	"github.com/aretw0/statenav/pkg/adapters/memory"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/dsl"
	"github.com/aretw0/statenav/pkg/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter(calls *int, ok bool) domain.Hook {
	return func(ctx context.Context) bool {
		*calls++
		return ok
	}
}

func newNavigator(t *testing.T, r *memory.Registry, rec *testutils.Recorder) *navigation.Navigator {
	t.Helper()
	opts := []navigation.Option{navigation.WithLogger(testutils.Logger(t))}
	if rec != nil {
		opts = append(opts, navigation.WithLifecycleHooks(rec.Hooks()))
	}
	return navigation.New(r, opts...)
}

func modalGraph(t *testing.T) *memory.Registry {
	b := dsl.New()
	b.Add("Main").ID(1).Score(1).Go("Settings").Go("Modal")
	b.Add("Settings").ID(2).Score(1).Go("Main")
	b.Add("Modal").ID(3).Score(0).Overlay().Back()
	return build(t, b)
}

func TestNavigator_ModalHidesAndRestores(t *testing.T) {
	ctx := context.Background()
	r := modalGraph(t)
	rec := &testutils.Recorder{}
	nav := newNavigator(t, r, rec)
	s := navigation.NewSession("s", 1)

	ok, err := nav.OpenState(ctx, s, "Modal")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.StateID{3}, s.ActiveStates())
	assert.Equal(t, []domain.StateID{1}, s.Visibility().HiddenBy(3))

	ok, err = nav.OpenState(ctx, s, "Main")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.StateID{1}, s.ActiveStates())
	assert.Empty(t, s.Visibility().HiddenBy(3))
	assert.Equal(t, []string{"Main"}, nav.ActiveStateNames(s))

	assert.Equal(t, domain.OutcomeSuccess, rec.LastOutcome())
	require.Len(t, rec.Transitions, 2)
	assert.Equal(t, domain.StateID(3), rec.Transitions[1].From)
	assert.Equal(t, domain.StateID(1), rec.Transitions[1].To)
}

func TestNavigator_ScreenChangeExitsSource(t *testing.T) {
	ctx := context.Background()
	nav := newNavigator(t, modalGraph(t), nil)
	s := navigation.NewSession("s", 1)

	ok, err := nav.OpenState(ctx, s, "Settings")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.StateID{2}, s.ActiveStates())
	assert.Empty(t, s.Visibility().Overlays(), "non-overlay states do not hide their predecessors")
}

func TestNavigator_OverlayOverOverlay(t *testing.T) {
	ctx := context.Background()
	b := dsl.New()
	b.Add("Main").ID(1).Go("Modal")
	b.Add("Modal").ID(2).Overlay().Go("Dialog").Back()
	b.Add("Dialog").ID(3).Overlay().Back()
	nav := newNavigator(t, build(t, b), nil)
	s := navigation.NewSession("s", 1)

	ok, err := nav.OpenStates(ctx, s, "Modal", "Dialog")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.StateID{3}, s.ActiveStates())
	assert.Equal(t, []domain.StateID{1}, s.Visibility().HiddenBy(3))
	assert.Empty(t, s.Visibility().HiddenBy(2))

	ok, err = nav.OpenState(ctx, s, "Main")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.StateID{1}, s.ActiveStates())
	assert.Empty(t, s.Visibility().Overlays())
}

func TestNavigator_CanHideLimitsConcealment(t *testing.T) {
	ctx := context.Background()
	b := dsl.New()
	b.Add("Menu").ID(1).Go("Banner").StaysVisible()
	b.Add("Page").ID(2)
	b.Add("Banner").ID(3).Overlay().CanHide("Page").Back()
	nav := newNavigator(t, build(t, b), nil)

	s := navigation.NewSession("s", 1, 2)
	ok, err := nav.OpenState(ctx, s, "Banner")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.StateID{1, 2, 3}, s.ActiveStates(), "hops keeping the source visible conceal nothing")

	b2 := dsl.New()
	b2.Add("Menu").ID(1).Go("Banner")
	b2.Add("Page").ID(2)
	b2.Add("Banner").ID(3).Overlay().CanHide("Page").Back()
	nav = newNavigator(t, build(t, b2), nil)

	s = navigation.NewSession("s", 1, 2)
	ok, err = nav.OpenState(ctx, s, "Banner")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.StateID{3}, s.ActiveStates())
	assert.Equal(t, []domain.StateID{2}, s.Visibility().HiddenBy(3), "only declared states are hidden")
}

func TestNavigator_RecoversThroughAlternativePath(t *testing.T) {
	ctx := context.Background()
	var direct, detour int
	b := dsl.New()
	b.Add("Home").ID(1).Go("Target").Hook(counter(&direct, false))
	b.Add("Sidebar").ID(2).Go("Target").Cost(5).Hook(counter(&detour, true))
	b.Add("Target").ID(3)
	rec := &testutils.Recorder{}
	nav := newNavigator(t, build(t, b), rec)
	s := navigation.NewSession("s", 1, 2)

	ok, err := nav.OpenState(ctx, s, "Target")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, 1, direct, "the failed path is not retried")
	assert.Equal(t, 1, detour)
	assert.Equal(t, []domain.StateID{1, 3}, s.ActiveStates())

	require.Len(t, rec.Attempts, 2)
	assert.Equal(t, []domain.StateID{1, 3}, rec.Attempts[0].States)
	assert.Equal(t, []domain.StateID{2, 3}, rec.Attempts[1].States)
	require.Len(t, rec.Navigations, 1)
	assert.Equal(t, 2, rec.Navigations[0].Attempts)
	assert.Equal(t, domain.OutcomeSuccess, rec.Navigations[0].Outcome)
}

func TestNavigator_RecoversMidPath(t *testing.T) {
	ctx := context.Background()
	b := dsl.New()
	b.Add("Menu").ID(1).
		Go("Fast").StaysVisible().
		Go("Slow").Cost(10)
	b.Add("Fast").ID(2).Go("Target").Hook(mock.Fail.Hook())
	b.Add("Slow").ID(3).Go("Target")
	b.Add("Target").ID(4)
	nav := newNavigator(t, build(t, b), nil)
	s := navigation.NewSession("s", 1)

	ok, err := nav.OpenState(ctx, s, "Target")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, s.IsActive(4))
	assert.True(t, s.IsActive(2), "the state reached before the failure stays on screen")
	assert.False(t, s.IsActive(1))
	assert.False(t, s.IsActive(3))
}

func TestNavigator_ArrivalFailureIsRecovered(t *testing.T) {
	ctx := context.Background()
	b := dsl.New()
	b.Add("Home").ID(1).Go("Target")
	b.Add("Sidebar").ID(2).Go("Target").Cost(1)
	b.Add("Target").ID(3).Arrival(mock.FailFirst(1).Hook())
	nav := newNavigator(t, build(t, b), nil)
	s := navigation.NewSession("s", 1, 2)

	ok, err := nav.OpenState(ctx, s, "Target")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.StateID{1, 3}, s.ActiveStates(), "the failed hop leaves its source active")
}

func TestNavigator_Exhausted(t *testing.T) {
	ctx := context.Background()
	var calls int
	b := dsl.New()
	b.Add("A").ID(1).Go("B").Hook(counter(&calls, false))
	b.Add("B").ID(2)
	rec := &testutils.Recorder{}
	nav := newNavigator(t, build(t, b), rec)
	s := navigation.NewSession("s", 1)

	ok, err := nav.OpenState(ctx, s, "B")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []domain.StateID{1}, s.ActiveStates())
	assert.Equal(t, domain.OutcomeExhausted, rec.LastOutcome())
	require.Len(t, rec.Transitions, 1)
	assert.False(t, rec.Transitions[0].OK)
}

func TestNavigator_NoPath(t *testing.T) {
	ctx := context.Background()
	rec := &testutils.Recorder{}
	nav := newNavigator(t, modalGraph(t), rec)
	s := navigation.NewSession("s", 3)

	ok, err := nav.OpenState(ctx, s, "Settings")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.OutcomeNoPath, rec.LastOutcome())
}

func TestNavigator_AlreadyActiveRunsSelfTransition(t *testing.T) {
	ctx := context.Background()
	var refreshes int
	b := dsl.New()
	b.Add("Feed").ID(1).Refresh().Hook(counter(&refreshes, false))
	rec := &testutils.Recorder{}
	nav := newNavigator(t, build(t, b), rec)
	s := navigation.NewSession("s", 1)

	ok, err := nav.OpenState(ctx, s, "Feed")
	require.NoError(t, err)
	assert.True(t, ok, "a failing refresh does not change membership")
	assert.Equal(t, 1, refreshes)
	assert.Equal(t, []domain.StateID{1}, s.ActiveStates())
	assert.Equal(t, domain.OutcomeAlready, rec.LastOutcome())
}

func TestNavigator_UnknownState(t *testing.T) {
	ctx := context.Background()
	nav := newNavigator(t, modalGraph(t), nil)
	s := navigation.NewSession("s", 1)

	ok, err := nav.OpenState(ctx, s, "Nowhere")
	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStateNotFound))

	var notFound *domain.StateNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Nowhere", notFound.Name)

	_, err = nav.OpenStateByID(ctx, s, 42)
	assert.ErrorIs(t, err, domain.ErrStateNotFound)

	_, err = nav.Paths(s, "Nowhere")
	assert.ErrorIs(t, err, domain.ErrStateNotFound)

	_, err = nav.CloseState(ctx, s, "Nowhere")
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}

func TestNavigator_OpenStatesStopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	var calls int
	b := dsl.New()
	b.Add("A").ID(1).Go("B")
	b.Add("B").ID(2)
	b.Add("C").ID(3).Go("A").Hook(counter(&calls, true))
	nav := newNavigator(t, build(t, b), nil)
	s := navigation.NewSession("s", 1)

	ok, err := nav.OpenStates(ctx, s, "B", "C", "A")
	require.NoError(t, err)
	assert.False(t, ok, "C is unreachable from B")
	assert.Equal(t, []domain.StateID{2}, s.ActiveStates())
	assert.Zero(t, calls)

	_, err = nav.OpenStates(ctx, s, "B", "Nowhere")
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}

func TestNavigator_OpenStateByID(t *testing.T) {
	ctx := context.Background()
	nav := newNavigator(t, modalGraph(t), nil)
	s := navigation.NewSession("s", 1)

	ok, err := nav.OpenStateByID(ctx, s, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, s.IsActive(2))
}

func TestNavigator_CloseState(t *testing.T) {
	ctx := context.Background()
	nav := newNavigator(t, modalGraph(t), nil)
	s := navigation.NewSession("s", 1)

	_, err := nav.OpenState(ctx, s, "Modal")
	require.NoError(t, err)

	closed, err := nav.CloseState(ctx, s, "Modal")
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, []domain.StateID{1}, s.ActiveStates())
	assert.Empty(t, s.Visibility().Overlays())

	closed, err = nav.CloseState(ctx, s, "Modal")
	require.NoError(t, err)
	assert.False(t, closed)
}

func TestNavigator_ExitList(t *testing.T) {
	ctx := context.Background()
	b := dsl.New()
	b.Add("Toolbar").ID(1).Go("Editor").StaysVisible().Exit("Popup")
	b.Add("Popup").ID(2)
	b.Add("Editor").ID(3)
	nav := newNavigator(t, build(t, b), nil)
	s := navigation.NewSession("s", 1, 2)

	ok, err := nav.OpenState(ctx, s, "Editor")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.StateID{1, 3}, s.ActiveStates())
}

func TestNavigator_FanOut(t *testing.T) {
	ctx := context.Background()
	b := dsl.New()
	b.Add("Login").ID(1).Go("Dashboard", "Chat")
	b.Add("Dashboard").ID(2)
	b.Add("Chat").ID(3)
	nav := newNavigator(t, build(t, b), nil)
	s := navigation.NewSession("s", 1)

	ok, err := nav.OpenState(ctx, s, "Chat")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.StateID{2, 3}, s.ActiveStates())
}

func TestNavigator_PathsAreScoredAndSorted(t *testing.T) {
	nav := newNavigator(t, diamondScored(t), nil)

	paths, err := nav.Paths(navigation.NewSession("s", 1), "D")
	require.NoError(t, err)
	require.Equal(t, 2, paths.Len())
	assert.Equal(t, []domain.StateID{1, 3, 4}, paths.Paths[0].States)
	assert.Equal(t, 3, paths.Paths[0].Score)
	assert.Equal(t, 11, paths.Paths[1].Score)
}

func diamondScored(t *testing.T) *memory.Registry {
	b := dsl.New()
	b.Add("A").ID(1).Score(1).Go("B").Go("C")
	b.Add("B").ID(2).Score(9).Go("D")
	b.Add("C").ID(3).Score(1).Go("D")
	b.Add("D").ID(4).Score(1)
	return build(t, b)
}
