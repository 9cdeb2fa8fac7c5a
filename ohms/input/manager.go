package input

import (
	"log/slog"
	"time"

	"github.com/valerio/go-ohms/ohms/input/action"
	"github.com/valerio/go-ohms/ohms/input/event"
)

// Manager handles input actions and their associated callbacks
type Manager struct {
	handlers map[action.Action]map[event.Type][]func(event.Input)
	debounce *Handler
}

func NewManager() *Manager {
	return &Manager{
		handlers: make(map[action.Action]map[event.Type][]func(event.Input)),
		debounce: NewHandler(),
	}
}

// SetDebounce changes the debounce window for mode switches, zero disables it.
func (m *Manager) SetDebounce(d time.Duration) {
	m.debounce.SetDelay(d)
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func(event.Input)) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func(event.Input))
	}
	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger runs the callbacks registered for the event. It returns false when
// the event was debounced or nothing is registered for it.
func (m *Manager) Trigger(evt event.Input) bool {
	if !m.debounce.ProcessEvent(evt) {
		slog.Debug("Debounced input", "action", evt.Action, "type", evt.Type)
		return false
	}

	callbacks := m.handlers[evt.Action][evt.Type]
	if len(callbacks) == 0 {
		return false
	}
	for _, callback := range callbacks {
		callback(evt)
	}
	return true
}
