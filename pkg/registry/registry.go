// Package registry maps action names to hook implementations, so a graph file
// can refer to real screen code by name:
//
//	states:
//	  - name: Main
//	    check: main-visible
//	    transitions:
//	      - to: Settings
//	        action: click-settings
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"facette.io/natsort"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
)

// ErrActionNotFound is returned for names that were never registered.
var ErrActionNotFound = errors.New("action not found")

// Action performs a transition or checks an arrival. A nil error is success.
type Action func(ctx context.Context) error

// Registry manages the available actions.
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]Action),
	}
}

// Register adds an action to the registry.
// If an action with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[name] = fn
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.actions[name]
	return ok
}

// Names lists the registered actions in natural order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	r.mu.RUnlock()
	natsort.Sort(names)
	return names
}

// Execute looks up an action by name and runs it.
func (r *Registry) Execute(ctx context.Context, name string) error {
	r.mu.RLock()
	fn, ok := r.actions[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrActionNotFound, name)
	}
	return fn(ctx)
}

// Hook adapts the named action to a hook. The name is resolved on each call,
// so actions may be registered after the graph is loaded.
func (r *Registry) Hook(name string) domain.Hook {
	return func(ctx context.Context) bool {
		return r.Execute(ctx, name) == nil
	}
}

type outgoingKey struct {
	state string
	index int
}

// Binder implements ports.HookBinder by action name.
// Positions without an action are answered by the fallback binder, if any.
type Binder struct {
	registry *Registry
	fallback ports.HookBinder
	outgoing map[outgoingKey]string
	arrival  map[string]string
}

// Binder creates a binder over the registry's actions.
func (r *Registry) Binder(fallback ports.HookBinder) *Binder {
	return &Binder{
		registry: r,
		fallback: fallback,
		outgoing: make(map[outgoingKey]string),
		arrival:  make(map[string]string),
	}
}

// SetOutgoing names the action of the index-th transition leaving state.
func (b *Binder) SetOutgoing(state string, index int, action string) *Binder {
	b.outgoing[outgoingKey{state, index}] = action
	return b
}

// SetArrival names the arrival check of state.
func (b *Binder) SetArrival(state string, action string) *Binder {
	b.arrival[state] = action
	return b
}

// Outgoing returns the hook for the index-th transition leaving state.
func (b *Binder) Outgoing(state string, index int) domain.Hook {
	if name, ok := b.outgoing[outgoingKey{state, index}]; ok {
		return b.registry.Hook(name)
	}
	if b.fallback != nil {
		return b.fallback.Outgoing(state, index)
	}
	return nil
}

// Arrival returns the arrival hook of state.
func (b *Binder) Arrival(state string) domain.Hook {
	if name, ok := b.arrival[state]; ok {
		return b.registry.Hook(name)
	}
	if b.fallback != nil {
		return b.fallback.Arrival(state)
	}
	return nil
}

// Missing lists the bound action names that are not registered.
func (b *Binder) Missing() []string {
	seen := make(map[string]bool)
	var missing []string
	check := func(name string) {
		if !seen[name] && !b.registry.Has(name) {
			missing = append(missing, name)
		}
		seen[name] = true
	}
	for _, name := range b.arrival {
		check(name)
	}
	for _, name := range b.outgoing {
		check(name)
	}
	natsort.Sort(missing)
	return missing
}
