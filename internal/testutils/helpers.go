package testutils

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
	"github.com/neilotoole/slogt"
)

// Logger returns a logger that writes through t.Log, so output only shows for failing tests.
func Logger(t *testing.T) *slog.Logger {
	t.Helper()
	return slogt.New(t)
}

// CountingRegistry wraps a registry and counts state lookups.
type CountingRegistry struct {
	ports.StateRegistry
	lookups atomic.Int64
}

// NewCountingRegistry wraps registry.
func NewCountingRegistry(registry ports.StateRegistry) *CountingRegistry {
	return &CountingRegistry{StateRegistry: registry}
}

// State counts the lookup and delegates.
func (c *CountingRegistry) State(id domain.StateID) (*domain.State, bool) {
	c.lookups.Add(1)
	return c.StateRegistry.State(id)
}

// Lookups returns the number of State calls so far.
func (c *CountingRegistry) Lookups() int64 { return c.lookups.Load() }

// Recorder collects lifecycle events for assertions.
type Recorder struct {
	mu          sync.Mutex
	Transitions []domain.TransitionEvent
	Attempts    []domain.PathEvent
	Navigations []domain.NavigationEvent
	Changes     []domain.StateEvent
}

// Hooks returns lifecycle hooks feeding the recorder.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.Transitions = append(r.Transitions, *e)
		},
		OnPathAttempt: func(_ context.Context, e *domain.PathEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.Attempts = append(r.Attempts, *e)
		},
		OnNavigation: func(_ context.Context, e *domain.NavigationEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.Navigations = append(r.Navigations, *e)
		},
		OnStateChanged: func(_ context.Context, e *domain.StateEvent) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.Changes = append(r.Changes, *e)
		},
	}
}

// LastOutcome returns the outcome of the most recent navigation.
func (r *Recorder) LastOutcome() domain.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Navigations) == 0 {
		return ""
	}
	return r.Navigations[len(r.Navigations)-1].Outcome
}
