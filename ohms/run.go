package ohms

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-ohms/ohms/backend"
	"github.com/valerio/go-ohms/ohms/timing"
)

// Run initializes b and drives it until the app quits: each frame the
// backend draws the current view and returns input, which is dispatched
// before the next frame.
func Run(app *App, b backend.Backend, config backend.BackendConfig, limiter timing.Limiter) error {
	config.InputManager = app.InputManager()
	config.Callbacks.OnQuit = app.Quit

	if err := b.Init(config); err != nil {
		return fmt.Errorf("initializing backend: %w", err)
	}
	defer func() {
		if err := b.Cleanup(); err != nil {
			slog.Error("Backend cleanup failed", "error", err)
		}
	}()

	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}

	for app.Running() {
		events, err := b.Update(app.View())
		if err != nil {
			return fmt.Errorf("updating backend: %w", err)
		}
		app.Dispatch(events)
		limiter.WaitForNextFrame()
	}

	slog.Info("Stopped", "component", app.Kind(), "display", app.Current().Display())
	return nil
}
