package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/statenav/pkg/adapters/memory"
	"github.com/aretw0/statenav/pkg/domain"
)

// Builder manages the graph construction.
// States are registered in the order they were first added.
type Builder struct {
	states map[string]*StateBuilder
	order  []string
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// Add creates a new state in the graph.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{
		state:   domain.State{Name: name},
		builder: b,
	}
	b.states[name] = sb
	b.order = append(b.order, name)
	return sb
}

// Build compiles the graph into an in-memory registry.
// Every target and exit name must refer to a state added to the builder.
func (b *Builder) Build() (*memory.Registry, error) {
	registry := memory.NewRegistry()
	ids := make(map[string]domain.StateID, len(b.order))

	// Explicit ids first so automatic ones never collide with them.
	for _, pass := range []bool{true, false} {
		for _, name := range b.order {
			sb := b.states[name]
			if (sb.state.ID != domain.NullStateID) != pass {
				continue
			}
			id, err := registry.Add(sb.state)
			if err != nil {
				return nil, fmt.Errorf("failed to add state %q: %w", name, err)
			}
			ids[name] = id
		}
	}

	var errs []error
	for _, name := range b.order {
		sb := b.states[name]
		errs = append(errs, sb.errs...)
		from := ids[name]

		if err := b.resolveCanHide(registry, sb, ids); err != nil {
			errs = append(errs, err)
		}
		for _, tb := range sb.transitions {
			t, err := tb.resolve(ids)
			if err != nil {
				errs = append(errs, fmt.Errorf("state %q: %w", name, err))
				continue
			}
			if err := registry.AddTransition(from, t); err != nil {
				errs = append(errs, err)
			}
		}
		if sb.arrival != nil {
			if err := registry.SetArrival(from, sb.arrival); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}
	return registry, nil
}

func (b *Builder) resolveCanHide(registry *memory.Registry, sb *StateBuilder, ids map[string]domain.StateID) error {
	if len(sb.canHide) == 0 {
		return nil
	}
	hides := make([]domain.StateID, 0, len(sb.canHide))
	for _, name := range sb.canHide {
		id, ok := ids[name]
		if !ok {
			return fmt.Errorf("state %q: can_hide %q: %w", sb.state.Name, name, domain.ErrStateNotFound)
		}
		hides = append(hides, id)
	}
	return registry.SetCanHide(ids[sb.state.Name], hides...)
}
