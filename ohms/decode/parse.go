package decode

import (
	"fmt"
	"strings"

	"github.com/valerio/go-ohms/ohms/band"
)

// ParseResistor reads band colour names in the order they are printed:
// three bands (no tolerance band), four, five or six.
func ParseResistor(names []string) (ResistorBands, error) {
	var b ResistorBands
	digits := 2
	switch len(names) {
	case 3, 4:
	case 5, 6:
		digits = 3
	default:
		return b, fmt.Errorf("need 3 to 6 bands, got %d", len(names))
	}

	colors := make([]band.Color, len(names))
	for i, name := range names {
		c, ok := band.ParseColor(name)
		if !ok {
			return b, fmt.Errorf("band %d: unknown colour %q", i+1, name)
		}
		colors[i] = c
	}

	for i := 0; i < digits; i++ {
		d, ok := band.DigitFromColor(colors[i])
		if !ok {
			return b, fmt.Errorf("band %d: %s is not a digit colour", i+1, colors[i])
		}
		b.Digits = append(b.Digits, d)
	}

	m, ok := band.MultiplierFromColor(colors[digits])
	if !ok {
		return b, fmt.Errorf("band %d: %s is not a multiplier colour", digits+1, colors[digits])
	}
	b.Multiplier = m

	b.Tolerance = band.ToleranceNone
	if len(colors) > digits+1 {
		t, ok := band.ToleranceFromColor(colors[digits+1])
		if !ok {
			return b, fmt.Errorf("band %d: %s is not a tolerance colour", digits+2, colors[digits+1])
		}
		b.Tolerance = t
	}
	// two digits go with a standard tolerance, three with a precision one
	if (digits == 3) == b.Tolerance.Standard() {
		if digits == 3 {
			return b, fmt.Errorf("band %d: %s tolerance needs a four band resistor", digits+2, colors[digits+1])
		}
		return b, fmt.Errorf("band %d: %s tolerance needs five or six bands", digits+2, colors[digits+1])
	}

	if len(colors) == 6 {
		tc, ok := band.TempCoefFromColor(colors[5])
		if !ok {
			return b, fmt.Errorf("band 6: %s is not a temperature coefficient colour", colors[5])
		}
		b.TempCoef = tc
		b.HasTempCoef = true
	}
	return b, nil
}

// ParseCapacitorCode reads a printed three digit code such as "104".
func ParseCapacitorCode(code string) (d1, d2, multiplier int, err error) {
	code = strings.TrimSpace(code)
	if len(code) != 3 {
		return 0, 0, 0, fmt.Errorf("capacitor code %q must have three digits", code)
	}
	var digits [3]int
	for i, r := range code {
		if r < '0' || r > '9' {
			return 0, 0, 0, fmt.Errorf("capacitor code %q: %q is not a digit", code, r)
		}
		digits[i] = int(r - '0')
	}
	return digits[0], digits[1], digits[2], nil
}
