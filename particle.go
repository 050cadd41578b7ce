package smoke

import "math"

// Particle tuning. The decay schedule fixes every particle's lifetime.
const (
	// SpawnScale is the size of a new particle as a fraction of the sprite.
	SpawnScale = 0.1

	// ScaleGrowth is added to the scale on every tick.
	ScaleGrowth = 0.005

	// SpawnAlpha is the opacity of a new particle.
	SpawnAlpha = 255.0

	// SpawnAlphaRate is the initial per-tick opacity decrement.
	SpawnAlphaRate = 3.0

	// AlphaRateDecay is subtracted from the opacity decrement on every tick.
	AlphaRateDecay = 0.1

	// MinAlphaRate is the floor of the opacity decrement.
	MinAlphaRate = 1.5

	// RiseDamping multiplies the upward speed on every tick.
	RiseDamping = 0.99

	// MaxDrift bounds the magnitude of the horizontal acceleration.
	MaxDrift = 0.01

	// Lifetime is the number of updates after which a particle is dead.
	Lifetime = 163
)

// Particle is one puff of smoke.
//
// A particle starts small and opaque at its spawn point, rises while
// slowing down, drifts sideways with a constant acceleration, grows and
// fades. It becomes dead once its opacity underflows and stays dead.
type Particle struct {
	cache *ScaleCache
	img   *ImageBuf

	x, y   float64
	vx, vy float64
	k      float64 // horizontal acceleration

	scale     float64
	alpha     float64
	alphaRate float64
	alive     bool
	age       int
}

// NewParticle spawns a particle at (x, y).
//
// The upward speed is 4.7, 4.8, 4.9 or 5.0, and the horizontal acceleration
// is uniform in (-MaxDrift, MaxDrift), both drawn from rng.
func NewParticle(cache *ScaleCache, rng Rand, x, y float64) *Particle {
	sign := 1.0
	if rng.IntN(2) == 0 {
		sign = -1
	}

	return &Particle{
		cache:     cache,
		img:       cache.Lookup(SpawnScale),
		x:         x,
		y:         y,
		vy:        4 + float64(7+rng.IntN(4))/10,
		k:         MaxDrift * rng.Float64() * sign,
		scale:     SpawnScale,
		alpha:     SpawnAlpha,
		alphaRate: SpawnAlphaRate,
		alive:     true,
	}
}

// Update advances the particle by one tick.
//
// The steps run in a fixed order and later steps see earlier results:
// position moves before velocity changes, and the sprite is re-fetched
// with the grown scale.
func (p *Particle) Update() {
	p.x += p.vx
	p.vx += p.k

	p.y -= p.vy
	p.vy *= RiseDamping

	p.scale += ScaleGrowth

	p.alpha -= p.alphaRate
	if p.alpha < 0 {
		p.alpha = 0
		p.alive = false
	}

	p.alphaRate -= AlphaRateDecay
	if p.alphaRate < MinAlphaRate {
		p.alphaRate = MinAlphaRate
	}

	p.img = p.cache.Lookup(p.scale)
	p.age++
}

// Draw composites the particle's sprite centered on its position.
func (p *Particle) Draw(dst Surface) {
	w, h := p.img.Bounds()
	left := int(math.Round(p.x)) - w/2
	top := int(math.Round(p.y)) - h/2
	dst.DrawImage(p.img, left, top, p.Opacity())
}

// Alive reports whether the particle is still visible.
func (p *Particle) Alive() bool {
	return p.alive
}

// Position returns the particle center.
func (p *Particle) Position() (x, y float64) {
	return p.x, p.y
}

// Velocity returns the horizontal velocity and the upward speed.
func (p *Particle) Velocity() (vx, vy float64) {
	return p.vx, p.vy
}

// Drift returns the constant horizontal acceleration.
func (p *Particle) Drift() float64 {
	return p.k
}

// Scale returns the current size as a fraction of the base sprite.
func (p *Particle) Scale() float64 {
	return p.scale
}

// Alpha returns the current opacity in [0, 255].
func (p *Particle) Alpha() float64 {
	return p.alpha
}

// AlphaRate returns the current per-tick opacity decrement.
func (p *Particle) AlphaRate() float64 {
	return p.alphaRate
}

// Opacity returns the draw-time opacity, Alpha truncated to a byte.
func (p *Particle) Opacity() uint8 {
	return uint8(p.alpha)
}

// Age returns the number of updates applied.
func (p *Particle) Age() int {
	return p.age
}

// Image returns the cached sprite for the current scale.
// The image is shared and must not be modified.
func (p *Particle) Image() *ImageBuf {
	return p.img
}
