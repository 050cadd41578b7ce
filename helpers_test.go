package smoke

import "testing"

// scriptedRand replays fixed values. IntN returns ints[i] % n.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

// drawCall records one Surface.DrawImage invocation.
type drawCall struct {
	img     *ImageBuf
	x, y    int
	opacity uint8
}

// recordingSurface is a Surface that records draw calls.
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) DrawImage(img *ImageBuf, x, y int, opacity uint8) {
	s.calls = append(s.calls, drawCall{img: img, x: x, y: y, opacity: opacity})
}

// newTestSprite returns an opaque white sprite of the given size.
func newTestSprite(t testing.TB, width, height int) *ImageBuf {
	t.Helper()
	img, err := NewImageBuf(width, height)
	if err != nil {
		t.Fatalf("NewImageBuf(%d, %d): %v", width, height, err)
	}
	img.Fill(255, 255, 255, 255)
	return img
}

func newTestCache(t testing.TB, width, height int) *ScaleCache {
	t.Helper()
	sc, err := NewScaleCache(newTestSprite(t, width, height), WithInterpolation(InterpNearest))
	if err != nil {
		t.Fatalf("NewScaleCache: %v", err)
	}
	return sc
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
