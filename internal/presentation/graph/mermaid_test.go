package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/statenav/internal/presentation/graph"
	"github.com/aretw0/statenav/pkg/adapters/memory"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/aretw0/statenav/pkg/dsl"
)

func buildGraph(t *testing.T) *memory.Registry {
	t.Helper()
	b := dsl.New()
	b.Add("Main").Score(2).
		Go("Settings").Cost(3).
		Go("Confirm").StaysVisible().
		Go("Modal").Exit("Banner")
	b.Add("Settings")
	b.Add(`Say "Hi"`)
	b.Add("Modal").Overlay().Back().Refresh()
	b.Add("Confirm").Blocking()
	b.Add("Banner")

	registry, err := b.Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return registry
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.GraphOverlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes And Labels",
			contains: []string{
				`s1["Main <br/> score 2"]`,
				`s2["Settings"]`,
				`s3["Say 'Hi'"]`,
				`s4(["Modal"])`,
				`s5{{"Confirm"}}`,
			},
			excludes: []string{"classDef"},
		},
		{
			name: "Edges",
			contains: []string{
				`s1 -- "cost 3" --> s2`,
				`s1 -.-> s5`,
				`s1 --> s4`,
				`s1 --x s6`,
				`s4 -- "back" --> previous`,
				`s4 -. "refresh" .-> s4`,
				`previous(("previous"))`,
			},
		},
		{
			name: "Session Overlay",
			overlay: &graph.GraphOverlay{
				Active: []domain.StateID{4},
				Hidden: map[domain.StateID][]domain.StateID{4: {1}},
				Path:   []domain.StateID{4, 1, 2},
			},
			contains: []string{
				`s4 -- "back" --> s1`,
				"class s4 active;",
				"class s1 hidden;",
				"class s2 path;",
			},
			excludes: []string{`previous(("previous"))`},
		},
	}

	registry := buildGraph(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(registry, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnexpected substring: %v", got, unwanted)
				}
			}
		})
	}
}

func TestOverlayFromSnapshot(t *testing.T) {
	if graph.OverlayFromSnapshot(nil) != nil {
		t.Error("expected nil overlay for nil snapshot")
	}

	snap := &domain.Snapshot{
		Active: []domain.StateID{4},
		Hidden: map[domain.StateID][]domain.StateID{4: {1}},
	}
	overlay := graph.OverlayFromSnapshot(snap)
	snap.Hidden[4][0] = 9

	if overlay.Hidden[4][0] != 1 {
		t.Error("overlay must not alias the snapshot")
	}
}
