// Package snapshot renders a component view to a PNG image.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-ohms/ohms/band"
	"github.com/valerio/go-ohms/ohms/component"
)

// Image geometry in pixels
const (
	Width  = 260
	Height = 80

	bodyLeft   = 40
	bodyTop    = 20
	bodyHeight = 40
	bandWidth  = 14
	bandStride = 28
	bandInset  = 16
	leadWidth  = 3
)

var (
	leadColor  = color.RGBA{R: 0xA0, G: 0xA0, B: 0xA0, A: 0xFF}
	background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func rgba(c band.Color) color.RGBA {
	rgb := c.RGB()
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xFF}
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// SlotRect returns where slot is drawn.
func SlotRect(slot int) image.Rectangle {
	x := bodyLeft + bandInset + slot*bandStride
	return image.Rect(x, bodyTop, x+bandWidth, bodyTop+bodyHeight)
}

func bodyWidth(slots int) int {
	if slots == 0 {
		return 2 * bandInset
	}
	return 2*bandInset + (slots-1)*bandStride + bandWidth
}

// Render draws the component: leads, body and one stripe per visible band.
// Printed digits are drawn as stripes in the body's contrast colour.
func Render(view component.View) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fill(img, img.Bounds(), background)

	right := bodyLeft + bodyWidth(len(view.Slots))
	mid := bodyTop + bodyHeight/2
	fill(img, image.Rect(0, mid-leadWidth/2, Width, mid+leadWidth/2+1), leadColor)
	fill(img, image.Rect(bodyLeft, bodyTop, right, bodyTop+bodyHeight), rgba(view.Body))

	for _, s := range view.VisibleSlots() {
		r := SlotRect(s.Index)
		c := rgba(s.Color)
		if s.Text != "" {
			c = rgba(view.Body.Contrast())
			r = r.Inset(bandWidth / 4)
		}
		fill(img, r, c)
	}
	return img
}

// SavePNG writes the rendered view to path.
func SavePNG(view component.View, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, Render(view)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// TakeSnapshot saves the view as a timestamped PNG in directory, or the
// working directory when directory is empty.
func TakeSnapshot(view component.View, directory string) (string, error) {
	if directory == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		directory = cwd
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(directory, fmt.Sprintf("ohms_snapshot_%s.png", timestamp))
	if err := SavePNG(view, path); err != nil {
		return "", err
	}

	slog.Info("Snapshot saved", "path", path, "size", fmt.Sprintf("%dx%d", Width, Height), "format", "PNG")
	return path, nil
}
