package decode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-ohms/ohms/band"
)

func twoDigit(d1, d2 band.Digit, m band.Multiplier, tol band.Tolerance) ResistorBands {
	return ResistorBands{Digits: []band.Digit{d1, d2}, Multiplier: m, Tolerance: tol}
}

func TestResistorScenarios(t *testing.T) {
	tests := []struct {
		name     string
		bands    ResistorBands
		expected string
	}{
		{
			name:     "22 x10 gold",
			bands:    twoDigit(band.DigitRed, band.DigitRed, band.MultiplierBrown, band.ToleranceGold),
			expected: "220 Ω ±5%",
		},
		{
			name:     "22 x100 gold",
			bands:    twoDigit(band.DigitRed, band.DigitRed, band.MultiplierRed, band.ToleranceGold),
			expected: "2.2 KΩ ±5%",
		},
		{
			name:     "47 x1 silver",
			bands:    twoDigit(band.DigitYellow, band.DigitViolet, band.MultiplierBlack, band.ToleranceSilver),
			expected: "47 Ω ±10%",
		},
		{
			name:     "default resistor",
			bands:    twoDigit(band.DigitBlue, band.DigitGrey, band.MultiplierRed, band.ToleranceGold),
			expected: "6.8 KΩ ±5%",
		},
		{
			name:     "pink multiplier",
			bands:    twoDigit(band.DigitBrown, band.DigitBlack, band.MultiplierPink, band.ToleranceNone),
			expected: "0.01 Ω ±20%",
		},
		{
			name:     "zero value",
			bands:    twoDigit(band.DigitBlack, band.DigitBlack, band.MultiplierWhite, band.ToleranceNone),
			expected: "0 Ω ±20%",
		},
		{
			name:     "giga",
			bands:    twoDigit(band.DigitBrown, band.DigitBlack, band.MultiplierWhite, band.ToleranceGold),
			expected: "10 GΩ ±5%",
		},
		{
			name: "five band precision",
			bands: ResistorBands{
				Digits:     []band.Digit{band.DigitBrown, band.DigitBlack, band.DigitBlack},
				Multiplier: band.MultiplierBrown,
				Tolerance:  band.ToleranceBrown,
			},
			expected: "100 Ω ±1%",
		},
		{
			name: "six band with temperature coefficient",
			bands: ResistorBands{
				Digits:      []band.Digit{band.DigitYellow, band.DigitViolet, band.DigitBlack},
				Multiplier:  band.MultiplierOrange,
				Tolerance:   band.ToleranceRed,
				TempCoef:    band.TempCoefBrown,
				HasTempCoef: true,
			},
			expected: "47 KΩ ±2%\n100ppm/K",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resistor(tt.bands).String())
		})
	}
}

func TestResistorTwoDigitLaw(t *testing.T) {
	for d1 := 0; d1 < band.DigitCount; d1++ {
		for d2 := 0; d2 < band.DigitCount; d2++ {
			for m := 0; m <= 9; m++ {
				r := Resistor(twoDigit(band.Digit(d1), band.Digit(d2), band.Multiplier(m), band.ToleranceGold))
				expected := float64(d1*10+d2) * math.Pow10(m-TwoDigitOffset)
				require.InDelta(t, expected, r.Ohms, expected*1e-12, "d1=%d d2=%d m=%d", d1, d2, m)
				assertPrefixBucket(t, r)
			}
		}
	}
}

func TestResistorThreeDigitLaw(t *testing.T) {
	for d1 := 0; d1 < band.DigitCount; d1++ {
		for d2 := 0; d2 < band.DigitCount; d2++ {
			for d3 := 0; d3 < band.DigitCount; d3++ {
				for m := 0; m <= 9; m++ {
					r := Resistor(ResistorBands{
						Digits:     []band.Digit{band.Digit(d1), band.Digit(d2), band.Digit(d3)},
						Multiplier: band.Multiplier(m),
						Tolerance:  band.ToleranceBrown,
					})
					expected := float64(d1*100+d2*10+d3) * math.Pow10(m-ThreeDigitOffset)
					require.InDelta(t, expected, r.Ohms, expected*1e-12, "digits=%d%d%d m=%d", d1, d2, d3, m)
					assertPrefixBucket(t, r)
				}
			}
		}
	}
}

func assertPrefixBucket(t *testing.T, r Resistance) {
	t.Helper()
	switch {
	case r.Ohms < 1e3:
		assert.Equal(t, "", r.Prefix)
		assert.Equal(t, r.Ohms, r.Scaled)
	case r.Ohms < 1e6:
		assert.Equal(t, "K", r.Prefix)
	case r.Ohms < 1e9:
		assert.Equal(t, "M", r.Prefix)
	default:
		assert.Equal(t, "G", r.Prefix)
	}
}

func TestPrefixBoundaries(t *testing.T) {
	tests := []struct {
		value  float64
		scaled float64
		prefix string
	}{
		{0, 0, ""},
		{0.47, 0.47, ""},
		{999, 999, ""},
		{1000, 1, "K"},
		{999999, 999.999, "K"},
		{1000000, 1, "M"},
		{999999999, 999.999999, "M"},
		{1000000000, 1, "G"},
		{82000000000, 82, "G"},
	}
	for _, tt := range tests {
		scaled, prefix := siPrefix(tt.value)
		assert.Equal(t, tt.prefix, prefix, "value %v", tt.value)
		assert.InDelta(t, tt.scaled, scaled, 1e-9, "value %v", tt.value)
	}
}

func TestResistorPanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() {
		Resistor(ResistorBands{Digits: []band.Digit{1}, Multiplier: band.MultiplierBlack})
	})
	assert.Panics(t, func() {
		Resistor(twoDigit(band.DigitRed, band.DigitRed, band.Multiplier(13), band.ToleranceGold))
	})
	assert.Panics(t, func() {
		Resistor(twoDigit(band.Digit(10), band.DigitRed, band.MultiplierBlack, band.ToleranceGold))
	})
}

func TestCapacitor(t *testing.T) {
	tests := []struct {
		d1, d2, m int
		expected  string
	}{
		{1, 0, 2, "1 nF"},
		{2, 2, 2, "2.2 nF"},
		{2, 2, 0, "22 pF"},
		{2, 2, 1, "220 pF"},
		{4, 7, 3, "47 nF"},
		{1, 0, 4, "100 nF"},
		{1, 0, 5, "1 µF"},
		{3, 3, 6, "33 µF"},
		{1, 0, 7, "100 µF"},
		{4, 7, 8, "4.7 mF"},
		{1, 0, 9, "10 mF"},
	}
	for _, tt := range tests {
		c, ok := Capacitor(tt.d1, tt.d2, tt.m)
		require.True(t, ok)
		assert.Equal(t, tt.expected, c.String(), "%d%d%d", tt.d1, tt.d2, tt.m)
		assert.InDelta(t, float64(tt.d1*10+tt.d2)*math.Pow10(tt.m), c.Picofarads, 1e-6)
	}
}

func TestCapacitorRejectsInvalidMultiplier(t *testing.T) {
	_, ok := Capacitor(1, 0, 10)
	assert.False(t, ok)
	_, ok = Capacitor(1, 0, -1)
	assert.False(t, ok)
}

func TestFormatTrimmed(t *testing.T) {
	assert.Equal(t, "4.7", formatTrimmed(4.7000000001, 3))
	assert.Equal(t, "100", formatTrimmed(100, 3))
	assert.Equal(t, "0.123", formatTrimmed(0.1234, 3))
	assert.Equal(t, "0.12", formatTrimmed(0.1234, 2))
	assert.Equal(t, "0", formatTrimmed(0, 2))
}
