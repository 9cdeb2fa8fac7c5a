package resistor

import (
	"github.com/valerio/go-ohms/ohms/band"
	"github.com/valerio/go-ohms/ohms/series"
)

// digitMode holds what differs between two-digit (four band) and
// three-digit (five or six band) resistors. The exponent offset follows from
// the digit count inside decode.Resistor.
type digitMode struct {
	digits int
	series func(band.Tolerance) series.Table
}

var (
	twoDigitMode = digitMode{
		digits: 2,
		series: func(t band.Tolerance) series.Table {
			switch t {
			case band.ToleranceNone:
				return series.E6
			case band.ToleranceSilver:
				return series.E12
			default:
				return series.E24
			}
		},
	}
	threeDigitMode = digitMode{
		digits: 3,
		series: func(t band.Tolerance) series.Table {
			switch t {
			case band.ToleranceRed:
				return series.E48
			case band.ToleranceBrown:
				return series.E96
			default:
				return series.E192
			}
		},
	}
)

func modeFor(fourDigit bool) digitMode {
	if fourDigit {
		return threeDigitMode
	}
	return twoDigitMode
}

// SeriesFor returns the preferred number series stepped through by swipes
// for a tolerance band.
func SeriesFor(t band.Tolerance) series.Table {
	return modeFor(!t.Standard()).series(t)
}
