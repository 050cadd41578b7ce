package smoke

import (
	"image"
	"image/color"

	intImage "github.com/gogpu/smoke/internal/image"
)

// Pixmap is a software Surface backed by a non-premultiplied RGBA buffer.
type Pixmap struct {
	buf *ImageBuf
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	buf, err := intImage.NewImageBuf(max(width, 0), max(height, 0))
	if err != nil {
		panic(err) // unreachable: dimensions are clamped above
	}
	return &Pixmap{buf: buf}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.buf.Width()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.buf.Height()
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.buf.Data()
}

// Buf returns the underlying image buffer.
func (p *Pixmap) Buf() *ImageBuf {
	return p.buf
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	p.buf.Fill(n.R, n.G, n.B, n.A)
}

// DrawImage implements Surface with Porter-Duff source-over compositing.
func (p *Pixmap) DrawImage(img *ImageBuf, x, y int, opacity uint8) {
	if img == nil {
		return
	}
	intImage.DrawImage(p.buf, img, x, y, opacity)
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	return p.buf.ToStdImage()
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return p.buf.SavePNG(path)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.buf.GetRGBA(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.buf.Width(), p.buf.Height())
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
