// Package smoke renders a stylized particle smoke effect.
//
// # Overview
//
// smoke animates a stream of sprites that drift upward from a source point,
// growing and fading as they age. It is a visual trick, not a fluid solver.
// The package has no display dependency: a host loop drives it one tick at a
// time and hands it a [Surface] to draw on.
//
// # Quick Start
//
//	import "github.com/gogpu/smoke"
//
//	sprite, err := smoke.LoadImage("smoke.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sc, err := smoke.NewScaleCache(sprite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	em := smoke.NewEmitter(sc, 375, 475)
//	pm := smoke.NewPixmap(750, 650)
//
//	for range 300 {
//	    pm.Clear(color.Black)
//	    em.Update()
//	    em.Draw(pm)
//	}
//	_ = pm.SavePNG("frame.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Emitter, Particle, ScaleCache, Surface, Pixmap
//   - cache: dense memo table keyed by a bounded integer domain
//   - Internal: image (pixel buffer, resampling, compositing), hud (host overlay)
//
// # Scale Cache
//
// Resampling the sprite is the most expensive per-particle operation. A
// particle's continuous scale is quantized to an integer percentage in
// [0, 100] and the resampled sprite for each percentage is computed once and
// shared by every particle, at any opacity. Opacity is applied at draw time,
// so cached pixels are never modified.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down; smoke rises by decreasing Y
//
// # Concurrency
//
// Emitter, Particle and ScaleCache are driven from a single frame loop and
// are not safe for concurrent use. Only [SetLogger] and [Logger] may be
// called from any goroutine.
package smoke

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
