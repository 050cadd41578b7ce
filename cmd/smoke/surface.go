package main

import (
	"github.com/gogpu/smoke"
	"github.com/hajimehoshi/ebiten/v2"
)

// spriteCache uploads each scaled sprite to the GPU once.
// Keys are ScaleCache entries, so it holds at most 101 images.
type spriteCache struct {
	images map[*smoke.ImageBuf]*ebiten.Image
}

func newSpriteCache() *spriteCache {
	return &spriteCache{images: make(map[*smoke.ImageBuf]*ebiten.Image)}
}

// get returns the GPU image for img, or nil for an empty sprite.
func (c *spriteCache) get(img *smoke.ImageBuf) *ebiten.Image {
	if img == nil || img.IsEmpty() {
		return nil
	}
	if e, ok := c.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img.NRGBA())
	c.images[img] = e
	return e
}

// screenSurface adapts an ebiten screen to smoke.Surface.
type screenSurface struct {
	dst     *ebiten.Image
	sprites *spriteCache
}

func (s *screenSurface) DrawImage(img *smoke.ImageBuf, x, y int, opacity uint8) {
	e := s.sprites.get(img)
	if e == nil || opacity == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleAlpha(float32(opacity) / 255)
	s.dst.DrawImage(e, op)
}
