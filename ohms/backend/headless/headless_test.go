package headless_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-ohms/ohms/backend"
	"github.com/valerio/go-ohms/ohms/backend/headless"
	"github.com/valerio/go-ohms/ohms/input/action"
	"github.com/valerio/go-ohms/ohms/input/event"
	"github.com/valerio/go-ohms/ohms/resistor"
)

const script = `
- tap: 0
- hold: 2
  choose: black
- swipe: left
- swipe: right
- toggle: bands
- toggle: component
`

func TestHeadlessBackend(t *testing.T) {
	t.Run("replays script then quits", func(t *testing.T) {
		steps, err := headless.ParseScript([]byte(script))
		require.NoError(t, err)
		require.Len(t, steps, 6)

		h := headless.New(steps, headless.SnapshotConfig{})
		require.NoError(t, h.Init(backend.BackendConfig{Title: "Test"}))

		view := resistor.New().View()

		events, err := h.Update(view)
		require.NoError(t, err)
		assert.Equal(t, []event.Input{{Action: action.BandTap, Type: event.Press, Slot: 0}}, events)

		events, err = h.Update(view)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, action.BandHold, events[0].Action)
		assert.Equal(t, event.Hold, events[0].Type)
		assert.Equal(t, action.BandChoose, events[1].Action)
		assert.Equal(t, 2, events[1].Slot)
		assert.Equal(t, 3, events[1].Option, "black is the fourth multiplier entry")

		expected := []action.Action{action.SwipeLeft, action.SwipeRight, action.ToggleBandCount, action.SwitchComponent}
		for _, act := range expected {
			events, err = h.Update(view)
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, act, events[0].Action)
		}

		// Should send quit once the script is exhausted
		events, err = h.Update(view)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, action.AppQuit, events[0].Action)
		assert.Equal(t, event.Press, events[0].Type)

		assert.Len(t, h.Displays(), 7)
		assert.NoError(t, h.Cleanup())
	})

	t.Run("unknown menu entry", func(t *testing.T) {
		steps, err := headless.ParseScript([]byte("- hold: 0\n  choose: gold\n"))
		require.NoError(t, err)

		h := headless.New(steps, headless.SnapshotConfig{})
		require.NoError(t, h.Init(backend.BackendConfig{}))

		events, err := h.Update(resistor.New().View())
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, -1, events[1].Option)
	})

	t.Run("empty script quits immediately", func(t *testing.T) {
		h := headless.New(nil, headless.SnapshotConfig{})
		require.NoError(t, h.Init(backend.BackendConfig{}))

		events, err := h.Update(resistor.New().View())
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, action.AppQuit, events[0].Action)
	})
}

func TestHeadlessSnapshots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	cfg, err := headless.CreateSnapshotConfig(dir, "/tmp/scripts/demo.yaml")
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "demo", cfg.Name)

	h := headless.New(nil, cfg)
	require.NoError(t, h.Init(backend.BackendConfig{}))
	_, err = h.Update(resistor.New().View())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "demo_step_000.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Resistor (body beige)")
	assert.Contains(t, string(data), "5 tolerance   gold")
	assert.Contains(t, string(data), "6.8 KΩ ±5%")
	assert.FileExists(t, filepath.Join(dir, "demo_step_000.png"))
}

func TestCreateSnapshotConfigDisabled(t *testing.T) {
	cfg, err := headless.CreateSnapshotConfig("", "script.yaml")
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"not a list", "tap: 1"},
		{"two gestures", "- tap: 1\n  swipe: left"},
		{"empty step", "- {}"},
		{"bad swipe", "- swipe: up"},
		{"bad toggle", "- toggle: power"},
		{"hold without choice", "- hold: 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := headless.ParseScript([]byte(tt.script))
			assert.Error(t, err)
		})
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(script), 0644))

	steps, err := headless.LoadScript(path)
	require.NoError(t, err)
	assert.Len(t, steps, 6)
	assert.Equal(t, "hold 2 choose black", steps[1].String())

	_, err = headless.LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestHeadlessImplementsBackend(t *testing.T) {
	var _ backend.Backend = (*headless.Backend)(nil)
}
