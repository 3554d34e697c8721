package validator

import (
	"strings"
	"testing"

	"github.com/aretw0/statenav/pkg/adapters/memory"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/dsl"
)

func TestValidateGraph(t *testing.T) {
	// 1. Scenario A: Valid Graph
	// Main -> Settings -> Main, Main -> Modal (overlay) -> previous
	b := dsl.New()
	b.Add("Main").Go("Settings").Go("Modal")
	b.Add("Settings").Go("Main")
	b.Add("Modal").Overlay().Back()
	registry, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	report := ValidateGraph(registry, []string{"Main"})
	if err := report.Err(); err != nil {
		t.Errorf("Scenario A (Valid) failed: %v", err)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("Scenario A expected no warnings, got %v", report.Warnings)
	}

	// 2. Scenario B: Broken references
	// A registry edited after construction can point at states that were removed.
	broken := memory.NewRegistry()
	a, _ := broken.Add(domain.State{Name: "A"})
	ghost, _ := broken.Add(domain.State{Name: "Ghost"})
	_ = broken.AddTransition(a, &domain.Transition{Activate: []domain.Target{domain.To(ghost)}, Exit: []domain.StateID{ghost}})
	broken.Remove(ghost)

	err = ValidateGraph(broken, []string{"A", "Missing"}).Err()
	if err == nil {
		t.Fatal("Scenario B (Broken) should have failed, but got nil")
	}
	if _, ok := err.(*Error); !ok {
		t.Errorf("Expected *Error, got %T", err)
	}
	for _, want := range []string{"start state 'Missing' not found", "targets missing state", "exits missing state"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected %q in error, got: %v", want, err)
		}
	}
}

func TestValidateGraph_Warnings(t *testing.T) {
	b := dsl.New()
	b.Add("Main").Back()
	b.Add("Island")
	registry, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	report := ValidateGraph(registry, []string{"Main"})
	if err := report.Err(); err != nil {
		t.Fatalf("warnings must not fail validation: %v", err)
	}
	if len(report.Warnings) != 2 {
		t.Fatalf("Expected 2 warnings, got %v", report.Warnings)
	}
	if !strings.Contains(report.Warnings[0], "never hides") || !strings.Contains(report.Warnings[1], "'Island' is unreachable") {
		t.Errorf("unexpected warnings: %v", report.Warnings)
	}
}

func TestValidateGraph_Empty(t *testing.T) {
	if ValidateGraph(memory.NewRegistry(), nil).Err() == nil {
		t.Error("empty graph should fail validation")
	}
}
