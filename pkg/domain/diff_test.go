package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		old      *Snapshot
		new      *Snapshot
		wantDiff *SnapshotDiff // nil means we expect no diff
	}{
		{
			name: "Initial Load (Old is Nil)",
			old:  nil,
			new: &Snapshot{
				SessionID: "sess-1",
				Active:    []StateID{1},
			},
			wantDiff: &SnapshotDiff{
				SessionID: "sess-1",
				Activated: []StateID{1},
			},
		},
		{
			name: "No Changes",
			old: &Snapshot{
				SessionID: "sess-1",
				Active:    []StateID{1, 2},
				Hidden:    map[StateID][]StateID{2: {3}},
			},
			new: &Snapshot{
				SessionID: "sess-1",
				Active:    []StateID{1, 2},
				Hidden:    map[StateID][]StateID{2: {3}},
			},
			wantDiff: nil,
		},
		{
			name: "Overlay Opened",
			old: &Snapshot{
				SessionID: "sess-1",
				Active:    []StateID{1},
			},
			new: &Snapshot{
				SessionID: "sess-1",
				Active:    []StateID{3},
				Hidden:    map[StateID][]StateID{3: {1}},
			},
			wantDiff: &SnapshotDiff{
				SessionID:   "sess-1",
				Activated:   []StateID{3},
				Deactivated: []StateID{1},
				Hidden:      map[StateID][]StateID{3: {1}},
			},
		},
		{
			name: "Overlay Closed",
			old: &Snapshot{
				SessionID: "sess-1",
				Active:    []StateID{3},
				Hidden:    map[StateID][]StateID{3: {1}},
			},
			new: &Snapshot{
				SessionID: "sess-1",
				Active:    []StateID{1},
			},
			wantDiff: &SnapshotDiff{
				SessionID:   "sess-1",
				Activated:   []StateID{1},
				Deactivated: []StateID{3},
				Hidden:      map[StateID][]StateID{3: {}},
			},
		},
		{
			name: "Hidden Order Is Irrelevant",
			old: &Snapshot{
				Active: []StateID{5},
				Hidden: map[StateID][]StateID{5: {1, 2}},
			},
			new: &Snapshot{
				Active: []StateID{5},
				Hidden: map[StateID][]StateID{5: {2, 1}},
			},
			wantDiff: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(tt.old, tt.new)
			if !reflect.DeepEqual(got, tt.wantDiff) {
				gotJSON, _ := json.MarshalIndent(got, "", "  ")
				wantJSON, _ := json.MarshalIndent(tt.wantDiff, "", "  ")
				t.Errorf("Diff() mismatch:\ngot:  %s\nwant: %s", gotJSON, wantJSON)
			}
		})
	}
}

func TestDiff_JSONOmitsEmptyFields(t *testing.T) {
	diff := Diff(&Snapshot{SessionID: "s", Active: []StateID{1}}, &Snapshot{SessionID: "s", Active: []StateID{1, 2}})
	data, err := json.Marshal(diff)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(data)
	if strings.Contains(s, "deactivated") || strings.Contains(s, "hidden") {
		t.Errorf("expected empty fields to be omitted, got %s", s)
	}
	if !strings.Contains(s, `"activated":[2]`) {
		t.Errorf("expected activated delta, got %s", s)
	}
}
