package smoke

import (
	"errors"
	"math"
	"testing"
)

func TestNewScaleCacheNilBase(t *testing.T) {
	if _, err := NewScaleCache(nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("NewScaleCache(nil) error = %v, want ErrNilImage", err)
	}
}

func TestScaleCacheOptions(t *testing.T) {
	base := newTestSprite(t, 4, 4)

	sc, _ := NewScaleCache(base)
	if sc.Interpolation() != InterpBilinear {
		t.Errorf("default interpolation = %v, want Bilinear", sc.Interpolation())
	}
	if sc.Base() != base {
		t.Error("Base() does not return the base sprite")
	}

	sc, _ = NewScaleCache(base, WithInterpolation(InterpBicubic))
	if sc.Interpolation() != InterpBicubic {
		t.Errorf("interpolation = %v, want Bicubic", sc.Interpolation())
	}

	sc, _ = NewScaleCache(base, WithInterpolation(InterpolationMode(42)))
	if sc.Interpolation() != InterpBilinear {
		t.Errorf("invalid mode should fall back to Bilinear, got %v", sc.Interpolation())
	}
}

func TestScaleCacheDimensions(t *testing.T) {
	sc := newTestCache(t, 250, 199)

	tests := []struct {
		factor        int
		width, height int
	}{
		{0, 0, 0},
		{1, 2, 1},
		{10, 25, 19},
		{50, 125, 99},
		{91, 227, 181},
		{100, 250, 199},
	}

	for _, tt := range tests {
		img := sc.Get(tt.factor)
		if w, h := img.Bounds(); w != tt.width || h != tt.height {
			t.Errorf("Get(%d) bounds = (%d, %d), want (%d, %d)", tt.factor, w, h, tt.width, tt.height)
		}
	}
}

func TestScaleCacheIdempotent(t *testing.T) {
	sc := newTestCache(t, 64, 32)

	for f := 0; f <= MaxScaleFactor; f++ {
		first := sc.Get(f)
		resamples := sc.Resamples()

		second := sc.Get(f)
		if second != first {
			t.Fatalf("Get(%d) returned a different image on the second call", f)
		}
		if first.Width() != second.Width() || first.Height() != second.Height() {
			t.Fatalf("Get(%d) dimensions changed between calls", f)
		}
		if sc.Resamples() != resamples {
			t.Fatalf("Get(%d) resampled again: %d -> %d", f, resamples, sc.Resamples())
		}
	}

	if sc.Resamples() != MaxScaleFactor+1 {
		t.Errorf("Resamples() = %d, want %d", sc.Resamples(), MaxScaleFactor+1)
	}
}

func TestScaleCacheBound(t *testing.T) {
	sc := newTestCache(t, 20, 20)

	for i := range 5000 {
		sc.Lookup(float64(i) * 0.0037)
		if sc.Len() > MaxScaleFactor+1 {
			t.Fatalf("cache grew to %d entries", sc.Len())
		}
	}

	stats := sc.Stats()
	if stats.Len != sc.Len() || stats.Size != MaxScaleFactor+1 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.Hits == 0 {
		t.Error("expected repeated lookups to hit")
	}
}

func TestScaleCacheOutOfRangePanics(t *testing.T) {
	for _, factor := range []int{-1, 101, 1 << 20} {
		t.Run("", func(t *testing.T) {
			sc := newTestCache(t, 8, 8)
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d) did not panic", factor)
				}
				if sc.Len() != 0 {
					t.Errorf("Get(%d) created an entry", factor)
				}
			}()
			sc.Get(factor)
		})
	}
}

func TestScaleCacheSharedAcrossOpacities(t *testing.T) {
	sc := newTestCache(t, 10, 10)
	img := sc.Get(100)
	before := img.Clone()

	pm := NewPixmap(20, 20)
	for _, opacity := range []uint8{0, 1, 100, 254, 255} {
		pm.DrawImage(img, 5, 5, opacity)
	}

	for i, v := range img.Data() {
		if v != before.Data()[i] {
			t.Fatal("drawing at an opacity modified cached pixels")
		}
	}
	if sc.Get(100) != img {
		t.Error("cache entry replaced after drawing")
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		scale float64
		want  int
	}{
		{0, 0},
		{SpawnScale, 10},
		{0.105, 10},
		{0.119, 11},
		{0.919, 91},
		{0.9999, 99},
		{1, 100},
		{1.7, 100},
		{-0.2, 0},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := Quantize(tt.scale); got != tt.want {
			t.Errorf("Quantize(%v) = %d, want %d", tt.scale, got, tt.want)
		}
	}
}

func TestParseInterpolation(t *testing.T) {
	tests := []struct {
		name    string
		want    InterpolationMode
		wantErr bool
	}{
		{"nearest", InterpNearest, false},
		{"Bilinear", InterpBilinear, false},
		{"BICUBIC", InterpBicubic, false},
		{"lanczos", InterpBilinear, true},
	}

	for _, tt := range tests {
		got, err := ParseInterpolation(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInterpolation(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseInterpolation(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func BenchmarkScaleCacheLookupHit(b *testing.B) {
	sc := newTestCache(b, 256, 256)
	sc.Lookup(0.5)

	b.ReportAllocs()
	for b.Loop() {
		_ = sc.Lookup(0.5)
	}
}

func BenchmarkResampleUncached(b *testing.B) {
	base := newTestSprite(b, 256, 256)

	for b.Loop() {
		sc, _ := NewScaleCache(base)
		_ = sc.Get(50)
	}
}
