package headless

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step is one scripted user gesture. Exactly one of Tap, Hold, Swipe or
// Toggle is set.
//
//	- tap: 2
//	- hold: 5
//	  choose: brown
//	- swipe: left
//	- toggle: bands
type Step struct {
	Tap    *int   `yaml:"tap,omitempty"`
	Hold   *int   `yaml:"hold,omitempty"`
	Choose string `yaml:"choose,omitempty"`
	Swipe  string `yaml:"swipe,omitempty"`
	Toggle string `yaml:"toggle,omitempty"`
}

func (s Step) String() string {
	switch {
	case s.Tap != nil:
		return fmt.Sprintf("tap %d", *s.Tap)
	case s.Hold != nil:
		return fmt.Sprintf("hold %d choose %s", *s.Hold, s.Choose)
	case s.Swipe != "":
		return "swipe " + s.Swipe
	case s.Toggle != "":
		return "toggle " + s.Toggle
	}
	return "empty step"
}

func (s Step) validate() error {
	set := 0
	if s.Tap != nil {
		set++
	}
	if s.Hold != nil {
		set++
		if s.Choose == "" {
			return errors.New("hold needs a choose entry")
		}
	}
	if s.Swipe != "" {
		set++
		if s.Swipe != "left" && s.Swipe != "right" {
			return fmt.Errorf("unknown swipe direction %q", s.Swipe)
		}
	}
	if s.Toggle != "" {
		set++
		if s.Toggle != "bands" && s.Toggle != "component" {
			return fmt.Errorf("unknown toggle %q", s.Toggle)
		}
	}
	if set != 1 {
		return fmt.Errorf("step must have exactly one of tap, hold, swipe or toggle, got %d", set)
	}
	return nil
}

// ParseScript decodes a YAML list of steps.
func ParseScript(data []byte) ([]Step, error) {
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, s := range steps {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return steps, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	return ParseScript([]byte(strings.TrimSpace(string(data))))
}
