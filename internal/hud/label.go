package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Label paints single-line text with the Go Regular font.
type Label struct {
	face font.Face
}

// NewLabel creates a label painter at the given point size (72 DPI).
func NewLabel(size float64) (*Label, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("hud: parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("hud: create face: %w", err)
	}

	return &Label{face: face}, nil
}

// Draw paints text with its top-left corner near (x, y).
func (l *Label) Draw(dst draw.Image, text string, x, y int, col color.Color) {
	if text == "" {
		return
	}

	ascent := l.face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: l.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + ascent},
	}
	d.DrawString(text)
}

// Measure returns the advance width of text in pixels.
func (l *Label) Measure(text string) int {
	return font.MeasureString(l.face, text).Ceil()
}

// Close releases the font face.
func (l *Label) Close() error {
	return l.face.Close()
}
