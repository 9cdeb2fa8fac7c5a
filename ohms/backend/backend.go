package backend

import (
	"github.com/valerio/go-ohms/ohms/component"
	"github.com/valerio/go-ohms/ohms/input"
	"github.com/valerio/go-ohms/ohms/input/event"
)

// Backend represents a rendering and input surface for the component.
// Backends are responsible for:
// - Drawing the component view to their specific output (terminal, text files)
// - Turning platform input (keys, mouse, script steps) into abstract events
// - Handling backend-specific features (menus, snapshots, log panels)
type Backend interface {
	// Init configures the backend with the provided configuration.
	// This is a required step before calling Update.
	Init(config BackendConfig) error

	// Update draws the view and returns the input collected since the last
	// call. Backends should:
	// 1. Poll for platform-specific events
	// 2. Translate them to abstract events
	// 3. Render the provided view
	Update(view component.View) ([]event.Input, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title        string
	Callbacks    BackendCallbacks // Callbacks for backend communication
	InputManager *input.Manager   // Shared input manager for unified input handling
}

// BackendCallbacks allows backends to communicate with the app
type BackendCallbacks struct {
	// OnQuit is called when the backend requests shutdown (e.g. a signal)
	OnQuit func()
}
