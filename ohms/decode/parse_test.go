package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-ohms/ohms/band"
)

func TestParseResistor(t *testing.T) {
	tests := []struct {
		names    []string
		expected string
	}{
		{[]string{"brown", "black", "red"}, "1 KΩ ±20%"},
		{[]string{"red", "red", "brown", "gold"}, "220 Ω ±5%"},
		{[]string{"Yellow", "violet", "black", "silver"}, "47 Ω ±10%"},
		{[]string{"brown", "black", "black", "black", "brown"}, "10 Ω ±1%"},
		{[]string{"yellow", "violet", "black", "orange", "red", "brown"}, "47 KΩ ±2%\n100ppm/K"},
		{[]string{"green", "gray", "pink", "gold"}, "0.058 Ω ±5%"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			b, err := ParseResistor(tt.names)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Resistor(b).String())
		})
	}
}

func TestParseResistorErrors(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		msg   string
	}{
		{"too few", []string{"red", "red"}, "need 3 to 6 bands"},
		{"too many", []string{"red", "red", "red", "red", "red", "red", "red"}, "need 3 to 6 bands"},
		{"unknown colour", []string{"red", "teal", "red", "gold"}, "unknown colour"},
		{"gold digit", []string{"gold", "red", "red", "gold"}, "not a digit colour"},
		{"beige multiplier", []string{"red", "red", "beige", "gold"}, "not a multiplier colour"},
		{"white tolerance", []string{"red", "red", "red", "white"}, "not a tolerance colour"},
		{"white temp coef", []string{"red", "red", "red", "red", "brown", "white"}, "not a temperature coefficient colour"},
		{"three digits with gold", []string{"brown", "black", "black", "black", "gold"}, "band 5: gold tolerance needs a four band resistor"},
		{"three digits without tolerance", []string{"brown", "black", "black", "black", "none"}, "band 5: none tolerance needs a four band resistor"},
		{"two digits with brown", []string{"red", "red", "brown", "brown"}, "band 4: brown tolerance needs five or six bands"},
		{"two digits with green", []string{"red", "red", "brown", "green"}, "band 4: green tolerance needs five or six bands"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResistor(tt.names)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestParseResistorBands(t *testing.T) {
	b, err := ParseResistor([]string{"blue", "grey", "green", "orange", "brown", "black"})
	require.NoError(t, err)
	assert.Equal(t, []band.Digit{band.DigitBlue, band.DigitGrey, band.DigitGreen}, b.Digits)
	assert.Equal(t, band.MultiplierOrange, b.Multiplier)
	assert.Equal(t, band.ToleranceBrown, b.Tolerance)
	assert.True(t, b.HasTempCoef)
	assert.Equal(t, band.TempCoefBlack, b.TempCoef)
	assert.Equal(t, []band.Color{band.Blue, band.Grey, band.Green, band.Orange, band.Brown, band.Black}, b.Colors())
}

func TestParseResistorDigitCountMatchesTolerance(t *testing.T) {
	for _, names := range [][]string{
		{"brown", "black", "red"},
		{"red", "red", "brown", "gold"},
		{"red", "red", "brown", "none"},
		{"brown", "black", "black", "black", "brown"},
		{"yellow", "violet", "black", "orange", "red", "brown"},
	} {
		b, err := ParseResistor(names)
		require.NoError(t, err, names)
		assert.Equal(t, len(b.Digits) == 2, b.Tolerance.Standard(), names)
	}
}

func TestResistorBandsColorsSkipsMissingTolerance(t *testing.T) {
	b, err := ParseResistor([]string{"brown", "black", "red"})
	require.NoError(t, err)
	assert.Equal(t, []band.Color{band.Brown, band.Black, band.Red}, b.Colors())

	b, err = ParseResistor([]string{"red", "red", "brown", "gold"})
	require.NoError(t, err)
	assert.Equal(t, []band.Color{band.Red, band.Red, band.Brown, band.Gold}, b.Colors())
}

func TestParseCapacitorCode(t *testing.T) {
	d1, d2, m, err := ParseCapacitorCode(" 104 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 4}, []int{d1, d2, m})

	for _, code := range []string{"", "10", "1045", "1a4", "-12"} {
		_, _, _, err := ParseCapacitorCode(code)
		assert.Error(t, err, code)
	}
}
