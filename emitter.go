package smoke

// Emitter owns a stream of particles rising from a fixed point.
//
// Each Update prunes dead particles, spawns a new one every spawn interval,
// and then advances all particles, including one spawned in the same tick.
// Particles are kept and drawn in spawn order, so newer puffs draw over
// older ones.
type Emitter struct {
	cache *ScaleCache
	rng   Rand

	x, y      float64
	particles []*Particle

	interval int
	frames   int
	spawned  int
	ticks    int
}

// NewEmitter creates an emitter with no particles at emission point (x, y).
func NewEmitter(cache *ScaleCache, x, y float64, opts ...EmitterOption) *Emitter {
	o := defaultEmitterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = defaultRand()
	}

	return &Emitter{
		cache:    cache,
		rng:      o.rng,
		x:        x,
		y:        y,
		interval: o.spawnInterval,
	}
}

// Update advances the emitter by one tick.
func (e *Emitter) Update() {
	e.prune()

	e.frames++
	if e.frames%e.interval == 0 {
		e.frames = 0
		e.particles = append(e.particles, NewParticle(e.cache, e.rng, e.x, e.y))
		e.spawned++
	}

	for _, p := range e.particles {
		p.Update()
	}
	e.ticks++
}

// prune drops dead particles in place, preserving spawn order.
func (e *Emitter) prune() {
	live := e.particles[:0]
	for _, p := range e.particles {
		if p.Alive() {
			live = append(live, p)
		}
	}
	pruned := len(e.particles) - len(live)

	// Release dropped particles for collection.
	clear(e.particles[len(live):])
	e.particles = live

	if pruned > 0 {
		Logger().Debug("smoke: particles pruned", "pruned", pruned, "live", len(live), "tick", e.ticks)
	}
}

// Draw draws every live particle onto dst in spawn order.
// Particles that died in the last Update are skipped.
func (e *Emitter) Draw(dst Surface) {
	for _, p := range e.particles {
		if p.Alive() {
			p.Draw(dst)
		}
	}
}

// Reset removes all particles and restarts the spawn cadence.
func (e *Emitter) Reset() {
	clear(e.particles)
	e.particles = e.particles[:0]
	e.frames = 0
	e.spawned = 0
	e.ticks = 0
}

// Len returns the number of particles currently held, including any that
// died in the last Update and have not been pruned yet.
func (e *Emitter) Len() int {
	return len(e.particles)
}

// Particles returns the held particles in spawn order.
// The slice is owned by the emitter and only valid until the next Update.
func (e *Emitter) Particles() []*Particle {
	return e.particles
}

// Spawned returns the number of particles spawned since creation or the
// last Reset.
func (e *Emitter) Spawned() int {
	return e.spawned
}

// Ticks returns the number of Update calls since creation or the last Reset.
func (e *Emitter) Ticks() int {
	return e.ticks
}

// Origin returns the emission point.
func (e *Emitter) Origin() (x, y float64) {
	return e.x, e.y
}

// SpawnInterval returns the number of ticks between spawns.
func (e *Emitter) SpawnInterval() int {
	return e.interval
}
