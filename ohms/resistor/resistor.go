// Package resistor holds the live state of a colour-coded resistor and the
// rules that mutate it.
package resistor

import (
	"log/slog"

	"github.com/valerio/go-ohms/ohms/band"
	"github.com/valerio/go-ohms/ohms/component"
	"github.com/valerio/go-ohms/ohms/decode"
	"github.com/valerio/go-ohms/ohms/series"
)

// State is the band selection of the resistor on screen.
type State struct {
	digits     [3]band.Digit
	multiplier band.Multiplier
	tolerance  band.Tolerance
	tempCoef   band.TempCoef

	// sixBand is the user's 5/6 band choice. It only takes effect in
	// four-digit mode and is kept across mode changes.
	sixBand   bool
	fourDigit bool
	layout    Layout
}

var _ component.Component = (*State)(nil)

// New returns a resistor with the start-up selection: blue grey (green)
// red gold, 6.8 KΩ ±5%.
func New() *State {
	s := &State{
		digits:     [3]band.Digit{band.DigitBlue, band.DigitGrey, band.DigitGreen},
		multiplier: band.MultiplierRed,
		tolerance:  band.ToleranceGold,
		tempCoef:   band.TempCoefBlack,
	}
	s.update()
	return s
}

// update re-derives the digit mode and layout after any change.
func (s *State) update() {
	s.fourDigit = !s.tolerance.Standard()
	s.layout = layoutFor(s.fourDigit, s.sixBand)
}

func (s *State) mode() digitMode { return modeFor(s.fourDigit) }

func (s *State) Kind() component.Kind { return component.Resistor }

// IsFourDigit reports whether the resistor uses three significant digits
// (five or six bands).
func (s *State) IsFourDigit() bool { return s.fourDigit }

// IsSixBand reports whether the temperature coefficient band is shown.
func (s *State) IsSixBand() bool { return s.fourDigit && s.sixBand }

// Layout returns the current slot to role mapping.
func (s *State) Layout() Layout { return s.layout }

func (s *State) Digits() []band.Digit {
	return append([]band.Digit(nil), s.digits[:s.mode().digits]...)
}

func (s *State) Multiplier() band.Multiplier { return s.multiplier }

func (s *State) Tolerance() band.Tolerance { return s.tolerance }

func (s *State) TempCoef() band.TempCoef { return s.tempCoef }

// SetTolerance changes the tolerance band and re-derives the digit mode.
func (s *State) SetTolerance(t band.Tolerance) {
	s.tolerance = t
	s.update()
}

// Tap cycles the band drawn at slot.
func (s *State) Tap(slot int) {
	role := s.layout.RoleAt(slot)
	switch role {
	case RoleDigit1, RoleDigit2, RoleDigit3:
		i := digitIndex(role)
		s.digits[i] = s.digits[i].Next()
	case RoleMultiplier:
		s.multiplier = s.multiplier.Next()
	case RoleTolerance:
		s.tolerance = s.tolerance.Next()
	case RoleTempCoef:
		s.tempCoef = s.tempCoef.Next()
	default:
		return
	}
	s.update()
	slog.Debug("Band tapped", "slot", slot, "role", role, "color", s.BandColor(slot))
}

// SetColor paints the band at slot with c. Colours that the slot's role
// cannot take leave the band unchanged and report false.
func (s *State) SetColor(slot int, c band.Color) bool {
	role := s.layout.RoleAt(slot)
	ok := false
	switch role {
	case RoleDigit1, RoleDigit2, RoleDigit3:
		var d band.Digit
		if d, ok = band.DigitFromColor(c); ok {
			s.digits[digitIndex(role)] = d
		}
	case RoleMultiplier:
		var m band.Multiplier
		if m, ok = band.MultiplierFromColor(c); ok {
			s.multiplier = m
		}
	case RoleTolerance:
		var t band.Tolerance
		if t, ok = band.ToleranceFromColor(c); ok {
			s.tolerance = t
		}
	case RoleTempCoef:
		var tc band.TempCoef
		if tc, ok = band.TempCoefFromColor(c); ok {
			s.tempCoef = tc
		}
	}
	if !ok {
		slog.Debug("Ignoring colour selection", "slot", slot, "role", role, "color", c)
		return false
	}
	s.update()
	return true
}

// Options lists the colours the band at slot can take, in menu order.
func (s *State) Options(slot int) []string {
	colors := optionColors(s.layout.RoleAt(slot))
	if colors == nil {
		return nil
	}
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.String()
	}
	return out
}

// Choose applies the option-th entry of Options(slot).
func (s *State) Choose(slot, option int) bool {
	colors := optionColors(s.layout.RoleAt(slot))
	if option < 0 || option >= len(colors) {
		slog.Debug("Ignoring menu selection", "slot", slot, "option", option)
		return false
	}
	return s.SetColor(slot, colors[option])
}

func optionColors(role Role) []band.Color {
	switch role {
	case RoleDigit1, RoleDigit2, RoleDigit3:
		return band.DigitColors()
	case RoleMultiplier:
		return band.MultiplierColors()
	case RoleTolerance:
		return band.ToleranceColors()
	case RoleTempCoef:
		return band.TempCoefColors()
	}
	return nil
}

// Step moves the significant digits to the neighbouring value of the
// series picked by the tolerance band. Running off either end of the series
// wraps around and carries into the multiplier band.
func (s *State) Step(dir series.Step) {
	mode := s.mode()
	table := mode.series(s.tolerance)

	current := make([]int, mode.digits)
	for i := range current {
		current[i] = int(s.digits[i])
	}

	value, wrapped := table.Walk(series.Join(current...), dir)
	for i, d := range series.Digits(value, mode.digits) {
		s.digits[i] = band.Digit(d)
	}
	if wrapped {
		if dir == series.Previous {
			s.multiplier = s.multiplier.Previous()
		} else {
			s.multiplier = s.multiplier.Next()
		}
	}
	slog.Debug("Stepped through series", "series", table.Name, "direction", dir, "value", value, "wrapped", wrapped)
}

// ToggleBandCount switches between five and six bands. It only applies to
// four-digit resistors and reports whether anything changed.
func (s *State) ToggleBandCount() bool {
	if !s.fourDigit {
		return false
	}
	s.sixBand = !s.sixBand
	s.update()
	return true
}

// Bands returns the decoder input for the current selection.
func (s *State) Bands() decode.ResistorBands {
	return decode.ResistorBands{
		Digits:      s.Digits(),
		Multiplier:  s.multiplier,
		Tolerance:   s.tolerance,
		TempCoef:    s.tempCoef,
		HasTempCoef: s.IsSixBand(),
	}
}

// Display returns the decoded value as shown under the resistor.
func (s *State) Display() string {
	return decode.Resistor(s.Bands()).String()
}

// BandColor returns the colour drawn at slot, band.None for hidden slots.
func (s *State) BandColor(slot int) band.Color {
	role := s.layout.RoleAt(slot)
	switch role {
	case RoleDigit1, RoleDigit2, RoleDigit3:
		return s.digits[digitIndex(role)].Color()
	case RoleMultiplier:
		return s.multiplier.Color()
	case RoleTolerance:
		return s.tolerance.Color()
	case RoleTempCoef:
		return s.tempCoef.Color()
	}
	return band.None
}

// BodyColor returns the body colour implied by the tolerance band.
func (s *State) BodyColor() band.Body { return s.tolerance.Body() }

func (s *State) View() component.View {
	slots := make([]component.Slot, SlotCount)
	for i := range slots {
		role := s.layout.RoleAt(i)
		slots[i] = component.Slot{
			Index:   i,
			Visible: role != RoleNone,
			Role:    role.String(),
			Color:   s.BandColor(i),
			Options: s.Options(i),
		}
	}
	return component.View{
		Kind:      component.Resistor,
		Title:     "Resistor",
		Body:      s.BodyColor().Color(),
		Slots:     slots,
		Display:   s.Display(),
		FourDigit: s.IsFourDigit(),
		SixBand:   s.IsSixBand(),
	}
}

func digitIndex(r Role) int {
	return int(r - RoleDigit1)
}
