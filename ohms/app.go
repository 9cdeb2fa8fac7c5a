// Package ohms ties the resistor and capacitor decoders to an input and
// rendering backend.
package ohms

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/valerio/go-ohms/ohms/capacitor"
	"github.com/valerio/go-ohms/ohms/component"
	"github.com/valerio/go-ohms/ohms/input"
	"github.com/valerio/go-ohms/ohms/input/action"
	"github.com/valerio/go-ohms/ohms/input/event"
	"github.com/valerio/go-ohms/ohms/resistor"
	"github.com/valerio/go-ohms/ohms/series"
	"github.com/valerio/go-ohms/ohms/settings"
)

// App owns both components and routes input to the one on screen
type App struct {
	resistor  *resistor.State
	capacitor *capacitor.State
	current   component.Kind
	store     *settings.Store
	input     *input.Manager
	running   atomic.Bool
}

// New creates an app showing the component last saved in store. A nil
// store disables persistence.
func New(store *settings.Store) (*App, error) {
	a := &App{
		resistor:  resistor.New(),
		capacitor: capacitor.New(),
		current:   component.Resistor,
		store:     store,
		input:     input.NewManager(),
	}
	a.running.Store(true)

	if store != nil {
		kind, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		a.current = kind
	}

	a.registerHandlers()
	slog.Info("Starting", "component", a.current)
	return a, nil
}

func (a *App) registerHandlers() {
	m := a.input
	m.On(action.BandTap, event.Press, func(evt event.Input) {
		a.Current().Tap(evt.Slot)
	})
	m.On(action.BandHold, event.Hold, func(evt event.Input) {
		slog.Debug("Band menu opened", "slot", evt.Slot, "options", len(a.Current().Options(evt.Slot)))
	})
	m.On(action.BandChoose, event.Press, func(evt event.Input) {
		if a.Current().Choose(evt.Slot, evt.Option) {
			slog.Info("Band chosen", "slot", evt.Slot, "display", a.Current().Display())
		}
	})
	m.On(action.SwipeLeft, event.Press, func(event.Input) {
		a.Current().Step(series.Next)
	})
	m.On(action.SwipeRight, event.Press, func(event.Input) {
		a.Current().Step(series.Previous)
	})
	m.On(action.ToggleBandCount, event.Press, func(event.Input) {
		if a.current != component.Resistor {
			slog.Debug("Band count toggle ignored", "component", a.current)
			return
		}
		if a.resistor.ToggleBandCount() {
			slog.Info("Band count changed", "six_band", a.resistor.IsSixBand())
		}
	})
	m.On(action.SwitchComponent, event.Press, func(event.Input) {
		a.SwitchComponent()
	})
	m.On(action.AppQuit, event.Press, func(event.Input) {
		a.Quit()
	})
}

// InputManager returns the manager the app's handlers are registered on.
// Backends may register their own handlers on it.
func (a *App) InputManager() *input.Manager { return a.input }

func (a *App) Kind() component.Kind { return a.current }

func (a *App) Resistor() *resistor.State { return a.resistor }

func (a *App) Capacitor() *capacitor.State { return a.capacitor }

// Current returns the component on screen.
func (a *App) Current() component.Component {
	if a.current == component.Capacitor {
		return a.capacitor
	}
	return a.resistor
}

// SetKind shows kind without saving it.
func (a *App) SetKind(kind component.Kind) {
	a.current = kind
}

// SwitchComponent flips between resistor and capacitor and saves the choice.
// Each component keeps its own state across switches.
func (a *App) SwitchComponent() {
	a.current = a.current.Other()
	slog.Info("Switched component", "component", a.current)
	if a.store == nil {
		return
	}
	if err := a.store.Save(a.current); err != nil {
		slog.Error("Failed to save settings", "error", err)
	}
}

func (a *App) View() component.View { return a.Current().View() }

// Dispatch runs the handlers for each event in order.
func (a *App) Dispatch(events []event.Input) {
	for _, evt := range events {
		a.input.Trigger(evt)
	}
}

func (a *App) Running() bool { return a.running.Load() }

// Quit stops the run loop after the current frame. Safe to call from any
// goroutine.
func (a *App) Quit() {
	a.running.Store(false)
}
