package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/statenav/pkg/mock"
	"github.com/aretw0/statenav/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Execute(t *testing.T) {
	reg := registry.NewRegistry()
	var calls int
	reg.Register("open-menu", func(ctx context.Context) error {
		calls++
		return nil
	})
	reg.Register("click-10", func(ctx context.Context) error { return nil })
	reg.Register("click-2", func(ctx context.Context) error { return errors.New("button hidden") })

	ctx := context.Background()
	assert.NoError(t, reg.Execute(ctx, "open-menu"))
	assert.Equal(t, 1, calls)
	assert.EqualError(t, reg.Execute(ctx, "click-2"), "button hidden")
	assert.ErrorIs(t, reg.Execute(ctx, "nope"), registry.ErrActionNotFound)

	assert.Equal(t, []string{"click-2", "click-10", "open-menu"}, reg.Names())
	assert.True(t, reg.Has("click-10"))
	assert.False(t, reg.Has("nope"))
}

func TestRegistry_HookResolvesLate(t *testing.T) {
	reg := registry.NewRegistry()
	hook := reg.Hook("later")
	assert.False(t, hook.Run(context.Background()), "unregistered actions fail")

	reg.Register("later", func(ctx context.Context) error { return nil })
	assert.True(t, hook.Run(context.Background()))
}

func TestBinder(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Register("fails", func(ctx context.Context) error { return errors.New("no") })

	fallback := mock.NewBinder().SetOutgoing("Main", 1, mock.Fail)
	binder := reg.Binder(fallback).
		SetOutgoing("Main", 0, "fails").
		SetArrival("Main", "missing")

	ctx := context.Background()
	assert.False(t, binder.Outgoing("Main", 0).Run(ctx), "bound action runs")
	assert.False(t, binder.Outgoing("Main", 1).Run(ctx), "fallback answers unbound positions")
	assert.True(t, binder.Arrival("Other").Run(ctx))
	assert.Equal(t, 1, fallback.Calls("Main", 1))

	assert.Equal(t, []string{"missing"}, binder.Missing())

	bare := reg.Binder(nil)
	require.Nil(t, bare.Outgoing("Main", 0))
	require.Nil(t, bare.Arrival("Main"))
}
