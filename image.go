package smoke

import (
	"errors"
	"fmt"
	"io"
	"strings"

	intImage "github.com/gogpu/smoke/internal/image"
)

// ImageBuf is a public alias for the internal sprite buffer.
// It holds non-premultiplied RGBA8 pixels.
type ImageBuf = intImage.ImageBuf

// InterpolationMode selects the resampling kernel used when the scale cache
// builds a scaled sprite.
type InterpolationMode = intImage.InterpolationMode

// Sprite interpolation modes.
const (
	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest = intImage.InterpNearest

	// InterpBilinear performs linear interpolation between neighboring pixels.
	// Good balance between quality and performance.
	InterpBilinear = intImage.InterpBilinear

	// InterpBicubic performs Catmull-Rom cubic interpolation.
	// Highest quality but slower than bilinear.
	InterpBicubic = intImage.InterpBicubic
)

// ErrNilImage is returned when a nil sprite is supplied.
var ErrNilImage = errors.New("smoke: nil image")

// NewImageBuf creates a transparent sprite buffer.
func NewImageBuf(width, height int) (*ImageBuf, error) {
	return intImage.NewImageBuf(width, height)
}

// LoadImage loads the base sprite from a PNG or JPEG file.
func LoadImage(path string) (*ImageBuf, error) {
	img, err := intImage.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("smoke: load sprite: %w", err)
	}
	return img, nil
}

// DecodeImage decodes the base sprite from r.
func DecodeImage(r io.Reader) (*ImageBuf, error) {
	img, err := intImage.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("smoke: load sprite: %w", err)
	}
	return img, nil
}

// ImageFromBytes decodes the base sprite from encoded PNG or JPEG bytes,
// such as an embedded asset.
func ImageFromBytes(data []byte) (*ImageBuf, error) {
	img, err := intImage.LoadImageFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("smoke: load sprite: %w", err)
	}
	return img, nil
}

// ParseInterpolation maps a mode name ("nearest", "bilinear", "bicubic",
// case-insensitive) to an InterpolationMode.
func ParseInterpolation(name string) (InterpolationMode, error) {
	for _, m := range []InterpolationMode{InterpNearest, InterpBilinear, InterpBicubic} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return InterpBilinear, fmt.Errorf("smoke: unknown interpolation %q", name)
}
