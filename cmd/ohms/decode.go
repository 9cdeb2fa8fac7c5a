package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/valerio/go-ohms/ohms/band"
	"github.com/valerio/go-ohms/ohms/decode"
)

var (
	bodyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(band.Beige.Hex())).
			Padding(0, 1)
	valueStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)
)

// swatch draws one band as its colour name on the band colour
func swatch(c band.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(c.Contrast().Hex())).
		Padding(0, 1).
		Render(c.String())
}

func renderBands(colors []band.Color, body band.Color) string {
	parts := make([]string, 0, len(colors))
	for _, c := range colors {
		parts = append(parts, swatch(c))
	}
	return bodyStyle.
		Background(lipgloss.Color(body.Hex())).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func runDecode(w io.Writer, names []string) error {
	bands, err := decode.ParseResistor(names)
	if err != nil {
		return err
	}

	value := decode.Resistor(bands)
	fmt.Fprintln(w, renderBands(bands.Colors(), bands.Tolerance.Body().Color()))
	fmt.Fprintln(w, valueStyle.Render(value.String()))
	return nil
}

func runFarads(w io.Writer, code string) error {
	d1, d2, m, err := decode.ParseCapacitorCode(code)
	if err != nil {
		return err
	}
	value, ok := decode.Capacitor(d1, d2, m)
	if !ok {
		return fmt.Errorf("capacitor code %q cannot be decoded", code)
	}
	fmt.Fprintln(w, valueStyle.Render(value.String()))
	return nil
}
