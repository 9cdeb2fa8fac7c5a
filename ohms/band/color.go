package band

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a physical colour that can be painted on a band or on the body.
type Color int

const (
	None Color = iota
	Pink
	Silver
	Gold
	Black
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Grey
	White
	Beige
	SkyBlue
)

var colorNames = [...]string{
	None:    "none",
	Pink:    "pink",
	Silver:  "silver",
	Gold:    "gold",
	Black:   "black",
	Brown:   "brown",
	Red:     "red",
	Orange:  "orange",
	Yellow:  "yellow",
	Green:   "green",
	Blue:    "blue",
	Violet:  "violet",
	Grey:    "grey",
	White:   "white",
	Beige:   "beige",
	SkyBlue: "skyblue",
}

// RGB values as 0xRRGGBB. None shares the beige body colour so an empty
// tolerance band blends into the body.
var colorRGB = [...]uint32{
	None:    0xFAD6A5,
	Pink:    0xFF1493,
	Silver:  0xC0C0C0,
	Gold:    0xD4AF37,
	Black:   0x000000,
	Brown:   0x964B00,
	Red:     0xFF0000,
	Orange:  0xFF7F50,
	Yellow:  0xFFFF00,
	Green:   0x32CD32,
	Blue:    0x0000FF,
	Violet:  0x9400D3,
	Grey:    0x808080,
	White:   0xFFFFFF,
	Beige:   0xFAD6A5,
	SkyBlue: 0x00BFFF,
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// RGB returns the colour as 0xRRGGBB.
func (c Color) RGB() uint32 {
	if c < 0 || int(c) >= len(colorRGB) {
		return 0
	}
	return colorRGB[c]
}

// Hex returns the colour as a #RRGGBB string.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) colorful() colorful.Color {
	rgb := c.RGB()
	return colorful.Color{
		R: float64((rgb>>16)&0xFF) / 255,
		G: float64((rgb>>8)&0xFF) / 255,
		B: float64(rgb&0xFF) / 255,
	}
}

// IsDark reports whether light text should be drawn on top of the colour.
func (c Color) IsDark() bool {
	l, _, _ := c.colorful().Clamped().Lab()
	return l < 0.55
}

// Contrast returns black or white, whichever reads better on top of c.
func (c Color) Contrast() Color {
	if c.IsDark() {
		return White
	}
	return Black
}

// ParseColor looks up a colour by name, case-insensitively. "gray" is
// accepted as an alias of grey.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "gray" {
		name = "grey"
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return None, false
}
