package input

import "github.com/valerio/go-ohms/ohms/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
// Slot selection (1-6), menu navigation and pointer input are handled by
// the backends themselves.
var DefaultKeyMap = map[string]action.Action{
	// Standard value navigation
	"Left":  action.SwipeRight,
	"Right": action.SwipeLeft,
	"h":     action.SwipeRight,
	"l":     action.SwipeLeft,

	// Mode switches
	"b": action.ToggleBandCount,
	"c": action.SwitchComponent,

	// App controls
	"Escape": action.AppQuit,
	"q":      action.AppQuit,
	"+":      action.LogLevelIncrease,
	"=":      action.LogLevelIncrease, // Alternative without shift
	"-":      action.LogLevelDecrease,
	"_":      action.LogLevelDecrease, // Alternative with shift
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
