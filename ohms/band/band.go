// Package band holds the colour tables of the resistor colour code.
//
// Every enumeration is ordered: the ordinal of a Digit is its value and the
// ordinal of a Multiplier is its power of ten plus a mode dependent offset,
// so reordering any of the tables below changes decoded values.
package band

// Digit is a significant-figure band, black (0) through white (9).
type Digit int

const (
	DigitBlack Digit = iota
	DigitBrown
	DigitRed
	DigitOrange
	DigitYellow
	DigitGreen
	DigitBlue
	DigitViolet
	DigitGrey
	DigitWhite
)

// DigitCount is the number of digit colours.
const DigitCount = 10

var digitColors = [DigitCount]Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}

// Multiplier is a power-of-ten band. Pink, silver and gold sit below black
// so that the ordinal minus a fixed offset gives the exponent.
type Multiplier int

const (
	MultiplierPink Multiplier = iota
	MultiplierSilver
	MultiplierGold
	MultiplierBlack
	MultiplierBrown
	MultiplierRed
	MultiplierOrange
	MultiplierYellow
	MultiplierGreen
	MultiplierBlue
	MultiplierViolet
	MultiplierGrey
	MultiplierWhite
)

// MultiplierCount is the number of multiplier colours.
const MultiplierCount = 13

var multiplierColors = [MultiplierCount]Color{Pink, Silver, Gold, Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}

// multiplierCycle is the black..violet ring used by taps and by series
// wraparound. Colours missing from the ring re-enter it at black.
var multiplierCycle = map[Multiplier]Multiplier{
	MultiplierBlack:  MultiplierBrown,
	MultiplierBrown:  MultiplierRed,
	MultiplierRed:    MultiplierOrange,
	MultiplierOrange: MultiplierYellow,
	MultiplierYellow: MultiplierGreen,
	MultiplierGreen:  MultiplierBlue,
	MultiplierBlue:   MultiplierViolet,
	MultiplierViolet: MultiplierBlack,
}

var multiplierCycleReverse = func() map[Multiplier]Multiplier {
	m := make(map[Multiplier]Multiplier, len(multiplierCycle))
	for from, to := range multiplierCycle {
		m[to] = from
	}
	return m
}()

// Tolerance is the tolerance band. None, silver and gold mark a standard
// two-digit resistor, everything else a precision three-digit one.
type Tolerance int

const (
	ToleranceNone Tolerance = iota
	ToleranceSilver
	ToleranceGold
	ToleranceBrown
	ToleranceRed
	ToleranceOrange
	ToleranceYellow
	ToleranceGreen
	ToleranceBlue
	ToleranceViolet
	ToleranceGrey
)

// ToleranceCount is the number of tolerance colours.
const ToleranceCount = 11

var toleranceColors = [ToleranceCount]Color{None, Silver, Gold, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey}

var tolerancePercent = [ToleranceCount]string{"20", "10", "5", "1", "2", "0.05", "0.02", "0.5", "0.25", "0.1", "0.01"}

// toleranceCycle is the tap order. Tolerances outside it go back to none.
var toleranceCycle = map[Tolerance]Tolerance{
	ToleranceNone:   ToleranceSilver,
	ToleranceSilver: ToleranceGold,
	ToleranceGold:   ToleranceBrown,
	ToleranceBrown:  ToleranceRed,
	ToleranceRed:    ToleranceGreen,
	ToleranceGreen:  ToleranceNone,
}

// TempCoef is the temperature coefficient band of six-band resistors.
type TempCoef int

const (
	TempCoefBlack TempCoef = iota
	TempCoefBrown
	TempCoefRed
	TempCoefOrange
	TempCoefYellow
	TempCoefGreen
	TempCoefBlue
	TempCoefViolet
	TempCoefGrey
)

// TempCoefCount is the number of temperature coefficient colours.
const TempCoefCount = 9

var tempCoefColors = [TempCoefCount]Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey}

var tempCoefPPM = [TempCoefCount]int{250, 100, 50, 15, 25, 20, 10, 5, 1}

// Body is the colour of the resistor body.
type Body int

const (
	BodyBeige Body = iota
	BodyBlue
)

func (d Digit) Valid() bool { return d >= 0 && d < DigitCount }

// Color returns the colour painted for the digit.
func (d Digit) Color() Color { return digitColors[d] }

func (d Digit) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return d.Color().String()
}

// Next returns the following digit, white wrapping to black.
func (d Digit) Next() Digit {
	if d+1 >= DigitCount {
		return DigitBlack
	}
	return d + 1
}

func (m Multiplier) Valid() bool { return m >= 0 && m < MultiplierCount }

// Color returns the colour painted for the multiplier.
func (m Multiplier) Color() Color { return multiplierColors[m] }

func (m Multiplier) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return m.Color().String()
}

// Next advances one step around the black..violet ring.
func (m Multiplier) Next() Multiplier {
	if next, ok := multiplierCycle[m]; ok {
		return next
	}
	return MultiplierBlack
}

// Previous retreats one step around the black..violet ring.
func (m Multiplier) Previous() Multiplier {
	if prev, ok := multiplierCycleReverse[m]; ok {
		return prev
	}
	return MultiplierBlack
}

// Cyclable reports whether m is part of the black..violet ring.
func (m Multiplier) Cyclable() bool {
	_, ok := multiplierCycle[m]
	return ok
}

func (t Tolerance) Valid() bool { return t >= 0 && t < ToleranceCount }

// Color returns the colour painted for the tolerance.
func (t Tolerance) Color() Color { return toleranceColors[t] }

func (t Tolerance) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return t.Color().String()
}

// Percent returns the tolerance as printed, without the percent sign.
func (t Tolerance) Percent() string { return tolerancePercent[t] }

// Standard reports whether t belongs to a two-digit (four-band) resistor.
func (t Tolerance) Standard() bool {
	return t == ToleranceNone || t == ToleranceSilver || t == ToleranceGold
}

// Next returns the following tolerance in tap order.
func (t Tolerance) Next() Tolerance {
	if next, ok := toleranceCycle[t]; ok {
		return next
	}
	return ToleranceNone
}

// Body returns the body colour implied by the tolerance.
func (t Tolerance) Body() Body {
	if t.Standard() {
		return BodyBeige
	}
	return BodyBlue
}

func (c TempCoef) Valid() bool { return c >= 0 && c < TempCoefCount }

// Color returns the colour painted for the coefficient.
func (c TempCoef) Color() Color { return tempCoefColors[c] }

func (c TempCoef) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return c.Color().String()
}

// PPM returns the coefficient in ppm/K.
func (c TempCoef) PPM() int { return tempCoefPPM[c] }

// Next returns the following coefficient, grey wrapping to black.
func (c TempCoef) Next() TempCoef {
	if c+1 >= TempCoefCount {
		return TempCoefBlack
	}
	return c + 1
}

// Color returns the colour painted for the body.
func (b Body) Color() Color {
	if b == BodyBlue {
		return SkyBlue
	}
	return Beige
}

func (b Body) String() string {
	if b == BodyBlue {
		return "blue"
	}
	return "beige"
}

// DigitFromColor returns the digit painted with c.
func DigitFromColor(c Color) (Digit, bool) {
	for i, dc := range digitColors {
		if dc == c {
			return Digit(i), true
		}
	}
	return 0, false
}

// MultiplierFromColor returns the multiplier painted with c.
func MultiplierFromColor(c Color) (Multiplier, bool) {
	for i, mc := range multiplierColors {
		if mc == c {
			return Multiplier(i), true
		}
	}
	return 0, false
}

// ToleranceFromColor returns the tolerance painted with c.
func ToleranceFromColor(c Color) (Tolerance, bool) {
	for i, tc := range toleranceColors {
		if tc == c {
			return Tolerance(i), true
		}
	}
	return 0, false
}

// TempCoefFromColor returns the temperature coefficient painted with c.
func TempCoefFromColor(c Color) (TempCoef, bool) {
	for i, tc := range tempCoefColors {
		if tc == c {
			return TempCoef(i), true
		}
	}
	return 0, false
}

// DigitColors lists the digit colours in ordinal order.
func DigitColors() []Color { return append([]Color(nil), digitColors[:]...) }

// MultiplierColors lists the multiplier colours in ordinal order.
func MultiplierColors() []Color { return append([]Color(nil), multiplierColors[:]...) }

// ToleranceColors lists the tolerance colours in ordinal order.
func ToleranceColors() []Color { return append([]Color(nil), toleranceColors[:]...) }

// TempCoefColors lists the temperature coefficient colours in ordinal order.
func TempCoefColors() []Color { return append([]Color(nil), tempCoefColors[:]...) }
