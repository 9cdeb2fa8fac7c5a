package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-ohms/ohms/band"
)

// TrueColor converts a band colour to a 24-bit terminal colour.
func TrueColor(c band.Color) tcell.Color {
	return tcell.NewHexColor(int32(c.RGB()))
}

// BandStyle paints the background with the band colour and picks a readable
// foreground for any label drawn on it.
func BandStyle(c band.Color) tcell.Style {
	return tcell.StyleDefault.
		Background(TrueColor(c)).
		Foreground(TrueColor(c.Contrast()))
}

// Truncate shortens s to width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width > 3 {
		return string(r[:width-3]) + "..."
	}
	if width > 0 {
		return string(r[:width])
	}
	return ""
}

// DrawText writes s starting at x, y, clipped to width cells.
func DrawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	for i, ch := range []rune(Truncate(s, width)) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// FillRect paints a rectangle with a style.
func FillRect(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}
