package smoke

// Surface is a compositing target for sprites.
//
// DrawImage blends img with its top-left corner at (x, y). Every source
// pixel's alpha is scaled by opacity/255 before blending; img itself is
// never modified. Implementations clip to their own bounds.
type Surface interface {
	DrawImage(img *ImageBuf, x, y int, opacity uint8)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(img *ImageBuf, x, y int, opacity uint8)

// DrawImage calls f(img, x, y, opacity).
func (f SurfaceFunc) DrawImage(img *ImageBuf, x, y int, opacity uint8) {
	f(img, x, y, opacity)
}
