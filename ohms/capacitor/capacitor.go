// Package capacitor holds the state of a capacitor marked with a three digit
// code: two significant digits and a multiplier digit.
package capacitor

import (
	"log/slog"
	"strconv"

	"github.com/valerio/go-ohms/ohms/band"
	"github.com/valerio/go-ohms/ohms/component"
	"github.com/valerio/go-ohms/ohms/decode"
	"github.com/valerio/go-ohms/ohms/series"
)

const (
	SlotDigit1 = iota
	SlotDigit2
	SlotMultiplier
	SlotCount
)

// maxTapMultiplier is where tapping the multiplier wraps to 0. Larger
// multipliers can still be chosen from the menu.
const maxTapMultiplier = 6

// Navigation steps through E12 regardless of the multiplier.
var navigation = series.E12

var digitOptions = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

// State is the code of the capacitor on screen.
type State struct {
	digit1     int
	digit2     int
	multiplier int
	display    string
}

var _ component.Component = (*State)(nil)

// New returns the start-up code 222 (2.2 nF).
func New() *State {
	s := &State{digit1: 2, digit2: 2, multiplier: 2}
	s.decode()
	return s
}

func (s *State) Kind() component.Kind { return component.Capacitor }

// Code returns the three digits.
func (s *State) Code() (d1, d2, multiplier int) {
	return s.digit1, s.digit2, s.multiplier
}

// decode refreshes the display. A multiplier that cannot be decoded keeps
// the previous display.
func (s *State) decode() {
	c, ok := decode.Capacitor(s.digit1, s.digit2, s.multiplier)
	if !ok {
		slog.Warn("Capacitor multiplier out of range", "multiplier", s.multiplier)
		return
	}
	s.display = c.String()
}

// Tap cycles the digit at slot. The multiplier cycles 0..6.
func (s *State) Tap(slot int) {
	switch slot {
	case SlotDigit1:
		s.digit1 = (s.digit1 + 1) % 10
	case SlotDigit2:
		s.digit2 = (s.digit2 + 1) % 10
	case SlotMultiplier:
		if s.multiplier >= maxTapMultiplier {
			s.multiplier = 0
		} else {
			s.multiplier++
		}
	default:
		return
	}
	s.decode()
}

// Options lists the digits a slot can take.
func (s *State) Options(slot int) []string {
	if slot < 0 || slot >= SlotCount {
		return nil
	}
	return append([]string(nil), digitOptions...)
}

// Choose sets the digit at slot to option.
func (s *State) Choose(slot, option int) bool {
	if option < 0 || option >= len(digitOptions) {
		slog.Debug("Ignoring menu selection", "slot", slot, "option", option)
		return false
	}
	switch slot {
	case SlotDigit1:
		s.digit1 = option
	case SlotDigit2:
		s.digit2 = option
	case SlotMultiplier:
		s.multiplier = option
	default:
		return false
	}
	s.decode()
	return true
}

// Step moves the two significant digits through E12. Unlike resistors the
// multiplier is left alone when the series wraps.
func (s *State) Step(dir series.Step) {
	value, _ := navigation.Walk(series.Join(s.digit1, s.digit2), dir)
	d := series.Digits(value, 2)
	s.digit1, s.digit2 = d[0], d[1]
	s.decode()
}

func (s *State) Display() string { return s.display }

func (s *State) View() component.View {
	digits := []int{s.digit1, s.digit2, s.multiplier}
	roles := []string{"digit 1", "digit 2", "multiplier"}
	slots := make([]component.Slot, SlotCount)
	for i := range slots {
		slots[i] = component.Slot{
			Index:   i,
			Visible: true,
			Role:    roles[i],
			Color:   band.None,
			Text:    strconv.Itoa(digits[i]),
			Options: s.Options(i),
		}
	}
	return component.View{
		Kind:    component.Capacitor,
		Title:   "Capacitor",
		Body:    band.Beige,
		Slots:   slots,
		Display: s.display,
	}
}
