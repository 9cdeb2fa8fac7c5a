// Package settings persists which component was on screen last.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/valerio/go-ohms/ohms/component"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file inside the config directory.
const FileName = "settings.yaml"

// Settings is the on-disk layout.
type Settings struct {
	Current string `yaml:"current"`
}

// Store reads and writes the settings file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the settings file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "ohms", FileName), nil
}

func (s *Store) Path() string { return s.path }

// Load returns the last saved component kind. A missing file means the
// resistor, as does an unreadable document or an unknown value. Only I/O
// failures are returned.
func (s *Store) Load() (component.Kind, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return component.Resistor, nil
	}
	if err != nil {
		return component.Resistor, fmt.Errorf("reading settings %s: %w", s.path, err)
	}

	var st Settings
	if err := yaml.Unmarshal(data, &st); err != nil {
		slog.Warn("Malformed settings, using resistor", "path", s.path, "error", err)
		return component.Resistor, nil
	}
	if st.Current == "" {
		return component.Resistor, nil
	}
	kind, ok := component.ParseKind(st.Current)
	if !ok {
		slog.Warn("Unknown component in settings, using resistor", "path", s.path, "current", st.Current)
	}
	return kind, nil
}

// Save records kind as the current component.
func (s *Store) Save(kind component.Kind) error {
	data, err := yaml.Marshal(Settings{Current: kind.String()})
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing settings %s: %w", s.path, err)
	}
	slog.Debug("Saved settings", "path", s.path, "current", kind)
	return nil
}
