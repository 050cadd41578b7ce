package image

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// InterpolationMode defines how pixels are sampled when an image is resized.
type InterpolationMode uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest InterpolationMode = iota

	// InterpBilinear performs linear interpolation between neighboring pixels.
	// Good balance between quality and performance.
	InterpBilinear

	// InterpBicubic performs Catmull-Rom cubic interpolation.
	// Highest quality but slower than bilinear.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m is one of the defined modes.
func (m InterpolationMode) IsValid() bool {
	return m <= InterpBicubic
}

// interpolator maps the mode to an x/image resampling kernel.
func (m InterpolationMode) interpolator() xdraw.Interpolator {
	switch m {
	case InterpNearest:
		return xdraw.NearestNeighbor
	case InterpBicubic:
		return xdraw.CatmullRom
	default:
		return xdraw.ApproxBiLinear
	}
}

// Resize returns a new buffer holding src resampled to width x height.
// A zero width or height yields an empty buffer without sampling.
func Resize(src *ImageBuf, width, height int, mode InterpolationMode) (*ImageBuf, error) {
	dst, err := NewImageBuf(width, height)
	if err != nil {
		return nil, err
	}
	if dst.IsEmpty() || src.IsEmpty() {
		return dst, nil
	}

	// Src (not Over) so the transparent destination does not leak into edges.
	mode.interpolator().Scale(dst.NRGBA(), image.Rect(0, 0, width, height),
		src.NRGBA(), image.Rect(0, 0, src.width, src.height), xdraw.Src, nil)

	return dst, nil
}
