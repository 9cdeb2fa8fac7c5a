// Package decode turns band selections into values and display strings.
package decode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/valerio/go-ohms/ohms/band"
)

// Exponent offsets subtracted from the multiplier ordinal. Two-digit
// resistors put x1 at black; three-digit resistors shift it by one band.
const (
	TwoDigitOffset   = 3
	ThreeDigitOffset = 4
)

// ResistorBands is the input of Resistor. Digits holds two or three
// significant figures; TempCoef is only decoded when HasTempCoef is set.
type ResistorBands struct {
	Digits      []band.Digit
	Multiplier  band.Multiplier
	Tolerance   band.Tolerance
	TempCoef    band.TempCoef
	HasTempCoef bool
}

// Colors returns the band colours in printed order. A missing tolerance band
// is left out.
func (b ResistorBands) Colors() []band.Color {
	out := make([]band.Color, 0, len(b.Digits)+3)
	for _, d := range b.Digits {
		out = append(out, d.Color())
	}
	out = append(out, b.Multiplier.Color())
	if b.Tolerance != band.ToleranceNone {
		out = append(out, b.Tolerance.Color())
	}
	if b.HasTempCoef {
		out = append(out, b.TempCoef.Color())
	}
	return out
}

// Resistance is a decoded resistor value.
type Resistance struct {
	Ohms        float64 // unscaled magnitude
	Scaled      float64 // Ohms divided by the prefix factor
	Prefix      string  // "", "K", "M" or "G"
	Tolerance   string  // percent, as printed
	TempCoef    int     // ppm/K
	HasTempCoef bool
}

func (r Resistance) String() string {
	s := fmt.Sprintf("%s %sΩ ±%s%%", formatTrimmed(r.Scaled, 3), r.Prefix, r.Tolerance)
	if r.HasTempCoef {
		s += fmt.Sprintf("\n%dppm/K", r.TempCoef)
	}
	return s
}

// Resistor decodes a resistor. It panics on enumeration values outside their
// tables or a digit count other than two or three; neither can come from a
// well-formed state.
func Resistor(b ResistorBands) Resistance {
	var offset int
	switch len(b.Digits) {
	case 2:
		offset = TwoDigitOffset
	case 3:
		offset = ThreeDigitOffset
	default:
		panic(fmt.Sprintf("decode: unsupported digit count %d", len(b.Digits)))
	}
	if !b.Multiplier.Valid() {
		panic(fmt.Sprintf("decode: invalid multiplier ordinal %d", b.Multiplier))
	}
	if !b.Tolerance.Valid() {
		panic(fmt.Sprintf("decode: invalid tolerance ordinal %d", b.Tolerance))
	}

	significant := 0
	for _, d := range b.Digits {
		if !d.Valid() {
			panic(fmt.Sprintf("decode: invalid digit ordinal %d", d))
		}
		significant = significant*10 + int(d)
	}

	ohms := float64(significant) * math.Pow10(int(b.Multiplier)-offset)
	scaled, prefix := siPrefix(ohms)

	r := Resistance{
		Ohms:      ohms,
		Scaled:    scaled,
		Prefix:    prefix,
		Tolerance: b.Tolerance.Percent(),
	}
	if b.HasTempCoef {
		if !b.TempCoef.Valid() {
			panic(fmt.Sprintf("decode: invalid temperature coefficient ordinal %d", b.TempCoef))
		}
		r.TempCoef = b.TempCoef.PPM()
		r.HasTempCoef = true
	}
	return r
}

// siPrefix buckets a magnitude by the digit count of its integer part:
// up to 3 digits unprefixed, 4-6 kilo, 7-9 mega, more giga. The buckets are
// compared against exact powers of ten since math.Log10 is off by one ulp
// for some of them. Zero and below land in the unprefixed bucket.
func siPrefix(v float64) (float64, string) {
	switch {
	case v < 1e3:
		return v, ""
	case v < 1e6:
		return v / 1e3, "K"
	case v < 1e9:
		return v / 1e6, "M"
	default:
		return v / 1e9, "G"
	}
}

// Capacitance is a decoded capacitor value.
type Capacitance struct {
	Picofarads float64
	Scaled     float64
	Prefix     string // "p", "n", "µ" or "m"
}

func (c Capacitance) String() string {
	return fmt.Sprintf("%s %sF", formatTrimmed(c.Scaled, 2), c.Prefix)
}

// Capacitor decodes a three digit capacitor code. The multiplier digit picks
// the prefix directly; multipliers outside 0..9 are not decoded.
func Capacitor(d1, d2, multiplier int) (Capacitance, bool) {
	var prefix string
	switch {
	case multiplier < 0:
		return Capacitance{}, false
	case multiplier <= 1:
		prefix = "p"
	case multiplier <= 4:
		prefix = "n"
	case multiplier <= 7:
		prefix = "µ"
	case multiplier <= 9:
		prefix = "m"
	default:
		return Capacitance{}, false
	}

	scaled := float64(d1*10+d2) * math.Pow10((multiplier+1)%3-1)
	return Capacitance{
		Picofarads: float64(d1*10+d2) * math.Pow10(multiplier),
		Scaled:     scaled,
		Prefix:     prefix,
	}, true
}

// formatTrimmed prints v with at most decimals fractional digits and no
// trailing zeros.
func formatTrimmed(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
