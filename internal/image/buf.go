// Package image provides the sprite pixel buffer used by gogpu/smoke.
//
// Pixels are stored as non-premultiplied RGBA, 4 bytes per pixel, which is
// the layout of image.NRGBA. A buffer can therefore be handed to the standard
// library and to golang.org/x/image without copying.
package image

import (
	"errors"
	"image"
	"image/color"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// ImageBuf is a non-premultiplied RGBA8 pixel buffer.
//
// A zero-sized buffer is valid: it is what a sprite scaled down to nothing
// looks like, and drawing it is a no-op.
//
// Thread safety: ImageBuf is safe for concurrent read access. Write operations
// (Set*, Clear, Fill) require external synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewImageBuf creates a transparent image buffer with the given dimensions.
// Returns ErrInvalidDimensions if either dimension is negative.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}

	stride := width * BytesPerPixel
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// FromRaw creates an ImageBuf from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the ImageBuf.
func FromRaw(data []byte, width, height, stride int) (*ImageBuf, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < width*BytesPerPixel {
		return nil, ErrInvalidStride
	}

	requiredSize := stride * height
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &ImageBuf{
		data:   data[:requiredSize],
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Clone creates a deep copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &ImageBuf{
		data:   newData,
		width:  b.width,
		height: b.height,
		stride: b.stride,
	}
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
// Modifying this data will affect the image.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns the pixel bytes of row y, without stride padding.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.width*BytesPerPixel]
}

// PixelOffset returns the byte offset of pixel (x, y), or -1 if the
// coordinates are outside the image.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*BytesPerPixel
}

// GetRGBA returns the color at (x, y) as (r, g, b, a) in 0-255 range.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return 0, 0, 0, 0
	}
	p := b.data[offset : offset+BytesPerPixel : offset+BytesPerPixel]
	return p[0], p[1], p[2], p[3]
}

// SetRGBA sets the color at (x, y) from (r, g, b, a) in 0-255 range.
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	offset := b.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	p := b.data[offset : offset+BytesPerPixel : offset+BytesPerPixel]
	p[0], p[1], p[2], p[3] = r, g, bl, a
	return nil
}

// Clear sets all pixels to transparent black.
func (b *ImageBuf) Clear() {
	clear(b.data)
}

// Fill sets all pixels to the given RGBA color.
func (b *ImageBuf) Fill(r, g, bl, a uint8) {
	for y := range b.height {
		row := b.RowBytes(y)
		for i := 0; i < len(row); i += BytesPerPixel {
			row[i], row[i+1], row[i+2], row[i+3] = r, g, bl, a
		}
	}
}

// ByteSize returns the total size of the image data in bytes.
func (b *ImageBuf) ByteSize() int {
	return len(b.data)
}

// IsEmpty returns true if the image has zero dimensions.
func (b *ImageBuf) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}

// NRGBA returns an *image.NRGBA that shares the buffer's pixel memory.
// Writes through the returned image modify the buffer.
func (b *ImageBuf) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.stride,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// FromStdImage creates an ImageBuf from a standard library image.Image.
func FromStdImage(img image.Image) *ImageBuf {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf, _ := NewImageBuf(width, height)

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*BytesPerPixel])
		}
		return buf
	}

	// Generic path: the color model un-premultiplies for us.
	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			_ = buf.SetRGBA(x, y, c.R, c.G, c.B, c.A)
		}
	}

	return buf
}

// ToStdImage returns a copy of the buffer as an *image.NRGBA.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		copy(nrgba.Pix[y*nrgba.Stride:], b.RowBytes(y))
	}
	return nrgba
}
