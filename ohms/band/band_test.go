package band

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitOrdinalsAreValues(t *testing.T) {
	expected := []string{"black", "brown", "red", "orange", "yellow", "green", "blue", "violet", "grey", "white"}
	for i, name := range expected {
		assert.Equal(t, name, Digit(i).String(), "digit %d", i)
	}
}

func TestDigitNextWraps(t *testing.T) {
	assert.Equal(t, DigitBrown, DigitBlack.Next())
	assert.Equal(t, DigitBlack, DigitWhite.Next())

	d := DigitBlack
	for i := 0; i < DigitCount; i++ {
		d = d.Next()
	}
	assert.Equal(t, DigitBlack, d, "ten steps should come back to the start")
}

func TestMultiplierCycle(t *testing.T) {
	ring := []Multiplier{
		MultiplierBlack, MultiplierBrown, MultiplierRed, MultiplierOrange,
		MultiplierYellow, MultiplierGreen, MultiplierBlue, MultiplierViolet,
	}
	for i, m := range ring {
		next := ring[(i+1)%len(ring)]
		assert.Equal(t, next, m.Next(), "next of %s", m)
		assert.Equal(t, m, next.Previous(), "previous of %s", next)
		assert.True(t, m.Cyclable())
	}

	for _, m := range []Multiplier{MultiplierPink, MultiplierSilver, MultiplierGold, MultiplierGrey, MultiplierWhite} {
		assert.False(t, m.Cyclable(), "%s should be outside the ring", m)
		assert.Equal(t, MultiplierBlack, m.Next(), "%s should re-enter at black", m)
		assert.Equal(t, MultiplierBlack, m.Previous(), "%s should re-enter at black", m)
	}
}

func TestToleranceTable(t *testing.T) {
	tests := []struct {
		tol      Tolerance
		name     string
		percent  string
		standard bool
		body     Body
	}{
		{ToleranceNone, "none", "20", true, BodyBeige},
		{ToleranceSilver, "silver", "10", true, BodyBeige},
		{ToleranceGold, "gold", "5", true, BodyBeige},
		{ToleranceBrown, "brown", "1", false, BodyBlue},
		{ToleranceRed, "red", "2", false, BodyBlue},
		{ToleranceOrange, "orange", "0.05", false, BodyBlue},
		{ToleranceYellow, "yellow", "0.02", false, BodyBlue},
		{ToleranceGreen, "green", "0.5", false, BodyBlue},
		{ToleranceBlue, "blue", "0.25", false, BodyBlue},
		{ToleranceViolet, "violet", "0.1", false, BodyBlue},
		{ToleranceGrey, "grey", "0.01", false, BodyBlue},
	}

	assert.Len(t, tests, ToleranceCount)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.tol.String())
			assert.Equal(t, tt.percent, tt.tol.Percent())
			assert.Equal(t, tt.standard, tt.tol.Standard())
			assert.Equal(t, tt.body, tt.tol.Body())
		})
	}
}

func TestToleranceTapOrder(t *testing.T) {
	order := []Tolerance{ToleranceNone, ToleranceSilver, ToleranceGold, ToleranceBrown, ToleranceRed, ToleranceGreen}
	for i, tol := range order {
		assert.Equal(t, order[(i+1)%len(order)], tol.Next())
	}
	for _, tol := range []Tolerance{ToleranceOrange, ToleranceYellow, ToleranceBlue, ToleranceViolet, ToleranceGrey} {
		assert.Equal(t, ToleranceNone, tol.Next(), "%s should cycle back to none", tol)
	}
}

func TestTempCoefTable(t *testing.T) {
	expected := []int{250, 100, 50, 15, 25, 20, 10, 5, 1}
	for i, ppm := range expected {
		assert.Equal(t, ppm, TempCoef(i).PPM())
	}
	assert.Equal(t, TempCoefBlack, TempCoefGrey.Next())
	assert.Equal(t, TempCoefBrown, TempCoefBlack.Next())
}

func TestFromColor(t *testing.T) {
	d, ok := DigitFromColor(Violet)
	assert.True(t, ok)
	assert.Equal(t, DigitViolet, d)

	_, ok = DigitFromColor(Gold)
	assert.False(t, ok, "gold is not a digit colour")

	m, ok := MultiplierFromColor(Pink)
	assert.True(t, ok)
	assert.Equal(t, MultiplierPink, m)

	tol, ok := ToleranceFromColor(None)
	assert.True(t, ok)
	assert.Equal(t, ToleranceNone, tol)

	_, ok = ToleranceFromColor(White)
	assert.False(t, ok, "white is not a tolerance colour")

	tc, ok := TempCoefFromColor(Grey)
	assert.True(t, ok)
	assert.Equal(t, TempCoefGrey, tc)

	_, ok = TempCoefFromColor(White)
	assert.False(t, ok)
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor(" Violet ")
	assert.True(t, ok)
	assert.Equal(t, Violet, c)

	c, ok = ParseColor("gray")
	assert.True(t, ok)
	assert.Equal(t, Grey, c)

	_, ok = ParseColor("magenta")
	assert.False(t, ok)
}

func TestColorRGB(t *testing.T) {
	assert.Equal(t, uint32(0x964B00), Brown.RGB())
	assert.Equal(t, "#964b00", Brown.Hex())
	assert.Equal(t, Beige, BodyBeige.Color())
	assert.Equal(t, SkyBlue, BodyBlue.Color())
}

func TestContrast(t *testing.T) {
	assert.Equal(t, White, Black.Contrast())
	assert.Equal(t, White, Blue.Contrast())
	assert.Equal(t, Black, White.Contrast())
	assert.Equal(t, Black, Yellow.Contrast())
}
