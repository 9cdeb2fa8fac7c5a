package event

import "github.com/valerio/go-ohms/ohms/input/action"

// Type represents the type of input event
type Type int

const (
	Press   Type = iota // Pointer or key pressed down (debounced for mode switches)
	Release             // Pointer or key released
	Hold                // Long press
)

func (t Type) String() string {
	switch t {
	case Press:
		return "press"
	case Release:
		return "release"
	case Hold:
		return "hold"
	default:
		return "unknown"
	}
}

// Input is a single abstract input event produced by a backend.
// Slot and Option are only meaningful for band actions.
type Input struct {
	Action action.Action
	Type   Type
	Slot   int
	Option int
}
