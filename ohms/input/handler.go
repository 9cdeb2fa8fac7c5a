package input

import (
	"time"

	"github.com/valerio/go-ohms/ohms/input/action"
	"github.com/valerio/go-ohms/ohms/input/event"
)

// Handler debounces mode switches so a held key or a double click does not
// flip a mode twice
type Handler struct {
	lastActionTime map[action.Action]time.Time
	debounceDelay  time.Duration
	now            func() time.Time
}

func NewHandler() *Handler {
	return &Handler{
		lastActionTime: make(map[action.Action]time.Time),
		debounceDelay:  300 * time.Millisecond,
		now:            time.Now,
	}
}

// SetDelay changes the debounce window. Zero disables debouncing, which
// scripted input needs since its events arrive back to back.
func (h *Handler) SetDelay(d time.Duration) {
	h.debounceDelay = d
}

// ProcessEvent reports whether the event should be handled, false if it
// was debounced. Only Press events of mode actions are debounced.
func (h *Handler) ProcessEvent(evt event.Input) bool {
	if h.debounceDelay <= 0 || evt.Type != event.Press || action.GetInfo(evt.Action).Category != action.CategoryMode {
		return true
	}

	now := h.now()
	if lastTime, exists := h.lastActionTime[evt.Action]; exists {
		if now.Sub(lastTime) < h.debounceDelay {
			return false
		}
	}
	h.lastActionTime[evt.Action] = now
	return true
}
