package image

// Rect represents a rectangular region in pixel coordinates.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the part of r that lies inside a width x height image.
func (r Rect) Intersect(width, height int) Rect {
	if r.X < 0 {
		r.Width += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.Height += r.Y
		r.Y = 0
	}
	if r.X+r.Width > width {
		r.Width = width - r.X
	}
	if r.Y+r.Height > height {
		r.Height = height - r.Y
	}
	return r
}

// DrawImage composites src onto dst with src's top-left corner at (x, y).
//
// Each source pixel's alpha is scaled by opacity/255 and then blended with
// Porter-Duff "source over". src is only read, so one source buffer can be
// drawn by many callers at different opacities.
// Pixels falling outside dst are clipped.
func DrawImage(dst, src *ImageBuf, x, y int, opacity uint8) {
	if opacity == 0 || src.IsEmpty() || dst.IsEmpty() {
		return
	}

	dstWidth, dstHeight := dst.Bounds()
	clip := Rect{X: x, Y: y, Width: src.width, Height: src.height}.Intersect(dstWidth, dstHeight)
	if clip.Empty() {
		return
	}

	for dy := clip.Y; dy < clip.Y+clip.Height; dy++ {
		srcRow := src.RowBytes(dy - y)
		dstRow := dst.RowBytes(dy)
		for dx := clip.X; dx < clip.X+clip.Width; dx++ {
			s := srcRow[(dx-x)*BytesPerPixel:]
			d := dstRow[dx*BytesPerPixel:]

			srcA := s[3]
			if opacity < 255 {
				srcA = uint8((uint16(srcA)*uint16(opacity) + 127) / 255)
			}

			d[0], d[1], d[2], d[3] = blendNormal(s[0], s[1], s[2], srcA, d[0], d[1], d[2], d[3])
		}
	}
}

// blendNormal performs standard alpha blending (source over destination).
func blendNormal(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA uint8) (r, g, b, a byte) {
	if srcA == 0 {
		// Fully transparent source, return destination unchanged
		return dstR, dstG, dstB, dstA
	}

	if srcA == 255 {
		// Fully opaque source, just return source
		return srcR, srcG, srcB, 255
	}

	if dstA == 0 {
		// Transparent destination, just return source
		return srcR, srcG, srcB, srcA
	}

	// Porter-Duff "source over" formula
	// out_a = src_a + dst_a * (1 - src_a)
	// out_c = (src_c * src_a + dst_c * dst_a * (1 - src_a)) / out_a

	srcAlpha := float64(srcA) / 255.0
	dstAlpha := float64(dstA) / 255.0

	outAlpha := srcAlpha + dstAlpha*(1-srcAlpha)

	r = uint8((float64(srcR)*srcAlpha + float64(dstR)*dstAlpha*(1-srcAlpha)) / outAlpha)
	g = uint8((float64(srcG)*srcAlpha + float64(dstG)*dstAlpha*(1-srcAlpha)) / outAlpha)
	b = uint8((float64(srcB)*srcAlpha + float64(dstB)*dstAlpha*(1-srcAlpha)) / outAlpha)
	a = uint8(outAlpha*255.0 + 0.5)

	return r, g, b, a
}
