package compiler_test

import (
	"context"
	"testing"

	"github.com/aretw0/statenav/internal/compiler"
	"github.com/aretw0/statenav/internal/dto"
	"github.com/aretw0/statenav/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsGraph = `
name: settings-app
start: [Main]
states:
  - name: Main
    score: 1
    objects: [logo.png]
    transitions:
      - to: Settings
        cost: 2
      - to: Modal
        mock: flaky:1
  - name: Settings
    id: 7
    score: 1
    arrival: fail
    transitions:
      - to: [Main, Sidebar]
        exit: [Modal]
  - name: Sidebar
  - name: Modal
    overlay: true
    can_hide: Main
    transitions:
      - to: previous
      - to: CURRENT
        stays_visible: true
`

func TestParser_Parse(t *testing.T) {
	file, err := compiler.NewParser().Parse([]byte(settingsGraph))
	require.NoError(t, err)

	assert.Equal(t, "settings-app", file.Name)
	assert.Equal(t, []string{"Main"}, file.Start)
	require.Len(t, file.States, 4)

	main := file.States[0]
	assert.Equal(t, []string{"logo.png"}, main.Objects)
	require.Len(t, main.Transitions, 2)
	assert.Equal(t, []dto.Target{{Kind: dto.TargetState, Name: "Settings"}}, main.Transitions[0].To)
	assert.Equal(t, 2, main.Transitions[0].Cost)
	assert.Equal(t, "flaky:1", main.Transitions[1].Mock)

	settings := file.States[1]
	assert.Equal(t, int64(7), settings.ID)
	assert.Equal(t, "fail", settings.Arrival)
	assert.Equal(t, []dto.Target{
		{Kind: dto.TargetState, Name: "Main"},
		{Kind: dto.TargetState, Name: "Sidebar"},
	}, settings.Transitions[0].To)

	modal := file.States[3]
	assert.Equal(t, []string{"Main"}, modal.CanHide)
	assert.Equal(t, []dto.Target{{Kind: dto.TargetPrevious}}, modal.Transitions[0].To)
	assert.Equal(t, []dto.Target{{Kind: dto.TargetCurrent}}, modal.Transitions[1].To)
	assert.True(t, modal.Transitions[1].StaysVisible)
}

func TestParser_Errors(t *testing.T) {
	tests := map[string]string{
		"Not YAML":     "states: [",
		"Empty":        "",
		"No States":    "name: empty",
		"Unknown Key":  "states:\n  - name: A\n    colour: red",
		"Empty Target": "states:\n  - name: A\n    transitions:\n      - to: ''",
		"Wrong Type":   "states:\n  - name: A\n    score: high",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := compiler.NewParser().Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestCompile(t *testing.T) {
	file, err := compiler.NewParser().Parse([]byte(settingsGraph))
	require.NoError(t, err)

	binder, err := compiler.MockBinder(file)
	require.NoError(t, err)

	registry, err := compiler.Compile(file, binder)
	require.NoError(t, err)

	settings, ok := registry.StateByName("Settings")
	require.True(t, ok)
	assert.Equal(t, domain.StateID(7), settings.ID)

	main, _ := registry.StateByName("Main")
	modal, _ := registry.StateByName("Modal")
	sidebar, _ := registry.StateByName("Sidebar")
	assert.True(t, modal.Overlay)
	assert.Equal(t, []domain.StateID{main.ID}, modal.CanHide)

	st, _ := registry.Transitions(settings.ID)
	require.Len(t, st.Transitions, 1)
	assert.Equal(t, []domain.Target{domain.To(main.ID), domain.To(sidebar.ID)}, st.Transitions[0].Activate)
	assert.Equal(t, []domain.StateID{modal.ID}, st.Transitions[0].Exit)

	ctx := context.Background()
	assert.False(t, st.Arrival.Run(ctx), "arrival scripted to fail")

	mt, _ := registry.Transitions(main.ID)
	assert.False(t, mt.Transitions[1].Hook.Run(ctx), "flaky:1 fails once")
	assert.True(t, mt.Transitions[1].Hook.Run(ctx))
	assert.Equal(t, 2, binder.Calls("Main", 1))
}

func TestCompile_Errors(t *testing.T) {
	tests := map[string]*dto.GraphFile{
		"Unknown Target": {States: []dto.StateDef{{
			Name:        "A",
			Transitions: []dto.TransitionDef{{To: []dto.Target{{Kind: dto.TargetState, Name: "B"}}}},
		}}},
		"No Target": {States: []dto.StateDef{{
			Name:        "A",
			Transitions: []dto.TransitionDef{{}},
		}}},
		"Reserved Name":  {States: []dto.StateDef{{Name: "previous"}}},
		"Duplicate Name": {States: []dto.StateDef{{Name: "A"}, {Name: "A"}}},
	}
	for name, file := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := compiler.Compile(file, nil)
			assert.Error(t, err)
		})
	}
}

func TestMockBinder_RejectsUnknownBehaviour(t *testing.T) {
	file := &dto.GraphFile{States: []dto.StateDef{{Name: "A", Arrival: "sometimes"}}}
	_, err := compiler.MockBinder(file)
	assert.Error(t, err)
}
