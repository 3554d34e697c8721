package compiler

import (
	"fmt"
	"strings"

	"github.com/aretw0/statenav/internal/dto"
	"github.com/aretw0/statenav/pkg/adapters/memory"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/dsl"
	"github.com/aretw0/statenav/pkg/mock"
	"github.com/aretw0/statenav/pkg/ports"
	"github.com/aretw0/statenav/pkg/registry"
)

// Compile builds a registry from a graph definition.
// Hooks come from binder; a nil binder leaves every hook unset (always succeeds).
func Compile(file *dto.GraphFile, binder ports.HookBinder) (*memory.Registry, error) {
	b := dsl.New()
	// dsl.Builder.Add reuses the builder of a known name, so repeats must be caught here.
	seen := make(map[string]bool, len(file.States))
	for _, def := range file.States {
		if err := checkName(def.Name); err != nil {
			return nil, err
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate state name %q", def.Name)
		}
		seen[def.Name] = true
		sb := b.Add(def.Name).
			ID(domain.StateID(def.ID)).
			Score(def.Score).
			Objects(def.Objects...)
		if def.Overlay {
			sb.Overlay()
		}
		if def.Blocking {
			sb.Blocking()
		}
		if len(def.CanHide) > 0 {
			sb.CanHide(def.CanHide...)
		}
		if binder != nil {
			sb.Arrival(binder.Arrival(def.Name))
		}

		for i, t := range def.Transitions {
			if len(t.To) == 0 {
				return nil, fmt.Errorf("state %q: transition %d has no target", def.Name, i)
			}
			targets := make([]string, 0, len(t.To))
			for _, target := range t.To {
				targets = append(targets, targetName(target))
			}
			sb.Go(targets...).Cost(t.Cost)
			if len(t.Exit) > 0 {
				sb.Exit(t.Exit...)
			}
			if t.StaysVisible {
				sb.StaysVisible()
			}
			if binder != nil {
				sb.Hook(binder.Outgoing(def.Name, i))
			}
		}
	}

	registry, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to compile graph %q: %w", file.Name, err)
	}
	return registry, nil
}

// MockBinder scripts hooks from the mock behaviours declared in the file.
func MockBinder(file *dto.GraphFile) (*mock.Binder, error) {
	binder := mock.NewBinder()
	for _, def := range file.States {
		arrival, err := mock.ParseBehavior(def.Arrival)
		if err != nil {
			return nil, fmt.Errorf("state %q arrival: %w", def.Name, err)
		}
		binder.SetArrival(def.Name, arrival)

		for i, t := range def.Transitions {
			behavior, err := mock.ParseBehavior(t.Mock)
			if err != nil {
				return nil, fmt.Errorf("state %q transition %d: %w", def.Name, i, err)
			}
			binder.SetOutgoing(def.Name, i, behavior)
		}
	}
	return binder, nil
}

// ActionBinder binds the actions named in the file to reg.
// Positions without an action fall back to fallback.
// Every named action must already be registered.
func ActionBinder(file *dto.GraphFile, reg *registry.Registry, fallback ports.HookBinder) (*registry.Binder, error) {
	binder := reg.Binder(fallback)
	for _, def := range file.States {
		if def.Check != "" {
			binder.SetArrival(def.Name, def.Check)
		}
		for i, t := range def.Transitions {
			if t.Action != "" {
				binder.SetOutgoing(def.Name, i, t.Action)
			}
		}
	}
	if missing := binder.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", registry.ErrActionNotFound, strings.Join(missing, ", "))
	}
	return binder, nil
}

func checkName(name string) error {
	switch name {
	case "":
		return fmt.Errorf("state missing name")
	case string(dto.TargetPrevious), string(dto.TargetCurrent), dsl.PreviousState, dsl.CurrentState:
		return fmt.Errorf("state name %q is reserved", name)
	}
	return nil
}

func targetName(t dto.Target) string {
	switch t.Kind {
	case dto.TargetPrevious:
		return dsl.PreviousState
	case dto.TargetCurrent:
		return dsl.CurrentState
	default:
		return t.Name
	}
}
