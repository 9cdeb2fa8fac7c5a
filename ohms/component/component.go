// Package component defines what every decodable component exposes to the
// app and the backends.
package component

import (
	"strings"

	"github.com/valerio/go-ohms/ohms/band"
	"github.com/valerio/go-ohms/ohms/series"
)

// Kind selects which component is on screen.
type Kind int

const (
	Resistor Kind = iota
	Capacitor
)

func (k Kind) String() string {
	if k == Capacitor {
		return "Capacitor"
	}
	return "Resistor"
}

// Other returns the kind the component switch leads to.
func (k Kind) Other() Kind {
	if k == Capacitor {
		return Resistor
	}
	return Capacitor
}

// ParseKind accepts "Resistor" or "Capacitor", case-insensitively.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "resistor":
		return Resistor, true
	case "capacitor":
		return Capacitor, true
	}
	return Resistor, false
}

// Component is a decodable part. Slots are physical band (or digit)
// positions; what a slot means depends on the component's current mode.
type Component interface {
	Kind() Kind
	// Tap cycles the slot to its next value. Hidden slots are ignored.
	Tap(slot int)
	// Options lists the long-press menu entries for a slot.
	Options(slot int) []string
	// Choose applies a menu entry. Unknown entries leave the slot unchanged
	// and report false.
	Choose(slot, option int) bool
	// Step moves to the neighbouring standard value.
	Step(s series.Step)
	Display() string
	View() View
}

// Slot is one physical band or digit as it should be drawn.
type Slot struct {
	Index   int
	Visible bool
	Role    string
	Color   band.Color // band colour, band.None for printed digits
	Text    string     // printed digit, empty for bands
	Options []string   // long-press menu entries, nil for hidden slots
}

// View is everything a backend needs to draw a component.
type View struct {
	Kind      Kind
	Title     string
	Body      band.Color
	Slots     []Slot
	Display   string
	FourDigit bool
	SixBand   bool
}

// Option returns the index of the named menu entry of a slot, or -1.
func (v View) Option(slot int, name string) int {
	if slot < 0 || slot >= len(v.Slots) {
		return -1
	}
	for i, o := range v.Slots[slot].Options {
		if strings.EqualFold(o, name) {
			return i
		}
	}
	return -1
}

// VisibleSlots returns the slots that should be drawn.
func (v View) VisibleSlots() []Slot {
	out := make([]Slot, 0, len(v.Slots))
	for _, s := range v.Slots {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}
