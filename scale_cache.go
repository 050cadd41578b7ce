package smoke

import (
	"fmt"
	"math"

	"github.com/gogpu/smoke/cache"
	intImage "github.com/gogpu/smoke/internal/image"
)

// MaxScaleFactor is the largest scale factor, in percent of the base sprite.
const MaxScaleFactor = 100

// ScaleCacheOption configures a ScaleCache during creation.
type ScaleCacheOption func(*scaleCacheOptions)

type scaleCacheOptions struct {
	interp InterpolationMode
}

func defaultScaleCacheOptions() scaleCacheOptions {
	return scaleCacheOptions{interp: InterpBilinear}
}

// WithInterpolation sets the resampling kernel used to build scaled sprites.
// Unknown modes fall back to InterpBilinear.
func WithInterpolation(mode InterpolationMode) ScaleCacheOption {
	return func(o *scaleCacheOptions) {
		if mode.IsValid() {
			o.interp = mode
		}
	}
}

// ScaleCache memoizes the base sprite resampled to each integer percentage
// in [0, MaxScaleFactor].
//
// The first Get for a factor resamples the base sprite; later calls return
// the same *ImageBuf. Entries are never evicted, so the cache holds at most
// MaxScaleFactor+1 images. Returned images are shared and must be treated as
// read-only; opacity belongs to the draw call, not to the pixels.
type ScaleCache struct {
	base   *ImageBuf
	interp InterpolationMode
	table  *cache.Table[*ImageBuf]
}

// NewScaleCache creates a scale cache over base.
// base must not be modified while the cache is in use.
func NewScaleCache(base *ImageBuf, opts ...ScaleCacheOption) (*ScaleCache, error) {
	if base == nil {
		return nil, ErrNilImage
	}

	o := defaultScaleCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sc := &ScaleCache{base: base, interp: o.interp}
	sc.table = cache.NewTable(MaxScaleFactor+1, sc.resample)

	Logger().Info("smoke: scale cache created",
		"width", base.Width(), "height", base.Height(), "interp", o.interp.String())
	return sc, nil
}

// Get returns the base sprite scaled to factor percent of its size,
// (W*factor/100, H*factor/100) with integer truncation.
//
// factor must be in [0, MaxScaleFactor]; anything else is a programming
// error and panics without creating a cache entry. Use Quantize to map a
// fractional scale into range.
func (sc *ScaleCache) Get(factor int) *ImageBuf {
	if factor < 0 || factor > MaxScaleFactor {
		panic(fmt.Sprintf("smoke: scale factor %d outside [0, %d]", factor, MaxScaleFactor))
	}
	return sc.table.Get(factor)
}

// Lookup returns the cached sprite for a fractional scale (1.0 = natural
// size), quantized with Quantize.
func (sc *ScaleCache) Lookup(scale float64) *ImageBuf {
	return sc.Get(Quantize(scale))
}

// Quantize converts a fractional scale to a scale factor by truncating
// 100*scale toward zero and clamping the result to [0, MaxScaleFactor].
// NaN maps to 0.
func Quantize(scale float64) int {
	f := 100 * scale
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= MaxScaleFactor:
		return MaxScaleFactor
	default:
		return int(f)
	}
}

// Base returns the unscaled sprite.
func (sc *ScaleCache) Base() *ImageBuf {
	return sc.base
}

// Interpolation returns the resampling kernel in use.
func (sc *ScaleCache) Interpolation() InterpolationMode {
	return sc.interp
}

// Len returns the number of scale factors resampled so far.
func (sc *ScaleCache) Len() int {
	return sc.table.Len()
}

// Resamples returns how many times the base sprite has been resampled.
// It only grows on the first Get of each factor.
func (sc *ScaleCache) Resamples() int {
	return int(sc.table.Stats().Misses)
}

// Stats returns hit and miss statistics of the underlying table.
func (sc *ScaleCache) Stats() cache.Stats {
	return sc.table.Stats()
}

func (sc *ScaleCache) resample(factor int) *ImageBuf {
	w := sc.base.Width() * factor / 100
	h := sc.base.Height() * factor / 100

	img, err := intImage.Resize(sc.base, w, h, sc.interp)
	if err != nil {
		// w and h are non-negative for every factor in range.
		panic(fmt.Sprintf("smoke: resample factor %d: %v", factor, err))
	}

	Logger().Debug("smoke: sprite resampled", "factor", factor, "width", w, "height", h)
	return img
}
