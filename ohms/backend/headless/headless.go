package headless

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/valerio/go-ohms/ohms/backend"
	"github.com/valerio/go-ohms/ohms/component"
	"github.com/valerio/go-ohms/ohms/input/action"
	"github.com/valerio/go-ohms/ohms/input/event"
	"github.com/valerio/go-ohms/ohms/snapshot"
)

// Backend replays a script of gestures and records what the component shows
// after each step
type Backend struct {
	config         backend.BackendConfig
	steps          []Step
	next           int
	done           bool
	displays       []string
	snapshotConfig SnapshotConfig
}

// SnapshotConfig holds configuration for view snapshots
type SnapshotConfig struct {
	Enabled   bool
	Directory string // Directory to save snapshots
	Name      string // Prefix for snapshot filenames
}

func New(steps []Step, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		steps:          steps,
		snapshotConfig: snapshotConfig,
	}
}

func (h *Backend) Init(config backend.BackendConfig) error {
	h.config = config

	slog.Info("Running headless mode",
		"steps", len(h.steps),
		"snapshot_dir", h.snapshotConfig.Directory)

	// Scripted events arrive back to back
	if config.InputManager != nil {
		config.InputManager.SetDebounce(0)
	}
	return nil
}

// Update records the view left by the previous step and returns the events
// of the next one. Once the script is exhausted it returns a quit event.
func (h *Backend) Update(view component.View) ([]event.Input, error) {
	if h.done {
		return []event.Input{{Action: action.AppQuit, Type: event.Press}}, nil
	}

	h.displays = append(h.displays, view.Display)
	slog.Info("Component state", "step", h.next, "component", view.Title, "display", view.Display)

	if h.snapshotConfig.Enabled {
		if err := h.saveSnapshot(view); err != nil {
			slog.Error("Failed to save snapshot", "step", h.next, "error", err)
		}
	}

	if h.next >= len(h.steps) {
		h.done = true
		if h.snapshotConfig.Enabled {
			slog.Info("Headless execution completed", "steps", len(h.steps), "snapshots_saved_to", h.snapshotConfig.Directory)
		} else {
			slog.Info("Headless execution completed", "steps", len(h.steps))
		}
		return []event.Input{{Action: action.AppQuit, Type: event.Press}}, nil
	}

	step := h.steps[h.next]
	h.next++
	slog.Debug("Replaying step", "step", h.next, "gesture", step)
	return stepEvents(step, view), nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// Displays returns the display string recorded before each step and after
// the last one.
func (h *Backend) Displays() []string {
	return append([]string(nil), h.displays...)
}

// stepEvents translates a step into abstract events. Menu choices are
// resolved by name against the current view; unknown names become option -1
// which the component rejects.
func stepEvents(s Step, view component.View) []event.Input {
	switch {
	case s.Tap != nil:
		return []event.Input{{Action: action.BandTap, Type: event.Press, Slot: *s.Tap}}
	case s.Hold != nil:
		slot := *s.Hold
		return []event.Input{
			{Action: action.BandHold, Type: event.Hold, Slot: slot},
			{Action: action.BandChoose, Type: event.Press, Slot: slot, Option: view.Option(slot, s.Choose)},
		}
	case s.Swipe == "left":
		return []event.Input{{Action: action.SwipeLeft, Type: event.Press}}
	case s.Swipe == "right":
		return []event.Input{{Action: action.SwipeRight, Type: event.Press}}
	case s.Toggle == "bands":
		return []event.Input{{Action: action.ToggleBandCount, Type: event.Press}}
	case s.Toggle == "component":
		return []event.Input{{Action: action.SwitchComponent, Type: event.Press}}
	}
	return nil
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters
func CreateSnapshotConfig(directory, scriptPath string) (SnapshotConfig, error) {
	config := SnapshotConfig{Enabled: directory != ""}
	if !config.Enabled {
		return config, nil
	}

	if err := os.MkdirAll(directory, 0755); err != nil {
		return config, fmt.Errorf("creating snapshot directory: %w", err)
	}
	config.Directory = directory

	base := filepath.Base(scriptPath)
	config.Name = base[:len(base)-len(filepath.Ext(base))]
	if config.Name == "" {
		config.Name = "ohms"
	}
	return config, nil
}

// saveSnapshot writes a text and a PNG rendition of the view for the
// current step
func (h *Backend) saveSnapshot(view component.View) error {
	base := filepath.Join(h.snapshotConfig.Directory, fmt.Sprintf("%s_step_%03d", h.snapshotConfig.Name, h.next))

	if err := os.WriteFile(base+".txt", []byte(RenderText(view)), 0644); err != nil {
		return fmt.Errorf("writing text snapshot: %w", err)
	}
	if err := snapshot.SavePNG(view, base+".png"); err != nil {
		return err
	}
	slog.Debug("Saved snapshot", "path", base)
	return nil
}

// RenderText renders a view as plain text, one line per visible slot.
func RenderText(view component.View) string {
	out := fmt.Sprintf("# %s (body %s)\n", view.Title, view.Body)
	for _, s := range view.VisibleSlots() {
		value := s.Color.String()
		if s.Text != "" {
			value = s.Text
		}
		out += fmt.Sprintf("%d %-11s %s\n", s.Index, s.Role, value)
	}
	out += view.Display + "\n"
	return out
}
