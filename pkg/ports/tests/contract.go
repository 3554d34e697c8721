package tests

import (
	"testing"

	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/ports"
)

// RegistryContractTest is a reusable test suite that verifies if an adapter complies with ports.StateRegistry.
// The registry must contain exactly the given states.
func RegistryContractTest(t *testing.T, registry ports.StateRegistry, expected []domain.State) {
	t.Helper()

	t.Run("State_ByID", func(t *testing.T) {
		for _, want := range expected {
			got, ok := registry.State(want.ID)
			if !ok {
				t.Fatalf("state %d not found", want.ID)
			}
			if got.Name != want.Name {
				t.Errorf("name mismatch for %d. got %q, want %q", want.ID, got.Name, want.Name)
			}
		}
	})

	t.Run("State_ByName", func(t *testing.T) {
		for _, want := range expected {
			got, ok := registry.StateByName(want.Name)
			if !ok {
				t.Fatalf("state %q not found", want.Name)
			}
			if got.ID != want.ID {
				t.Errorf("id mismatch for %q. got %d, want %d", want.Name, got.ID, want.ID)
			}
		}
	})

	t.Run("State_NotFound", func(t *testing.T) {
		if _, ok := registry.State(-12345); ok {
			t.Error("expected unknown id to be absent")
		}
		if _, ok := registry.StateByName("non-existent-state"); ok {
			t.Error("expected unknown name to be absent")
		}
	})

	t.Run("States_Ordered", func(t *testing.T) {
		states := registry.States()
		if len(states) != len(expected) {
			t.Fatalf("expected %d states, got %d", len(expected), len(states))
		}
		for i := 1; i < len(states); i++ {
			if states[i-1].ID >= states[i].ID {
				t.Errorf("states not in ascending id order at %d: %d >= %d", i, states[i-1].ID, states[i].ID)
			}
		}
	})

	t.Run("Transitions_Present", func(t *testing.T) {
		for _, want := range expected {
			if _, ok := registry.Transitions(want.ID); !ok {
				t.Errorf("expected transitions entry for state %d", want.ID)
			}
		}
	})
}
