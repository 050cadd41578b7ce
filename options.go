package smoke

// DefaultSpawnInterval is the number of ticks between two spawns.
const DefaultSpawnInterval = 2

// EmitterOption configures an Emitter during creation.
// Use functional options to customize Emitter behavior.
//
// Example:
//
//	// Default emitter, randomly seeded
//	em := smoke.NewEmitter(sc, 375, 475)
//
//	// Reproducible particle stream
//	em := smoke.NewEmitter(sc, 375, 475, smoke.WithSeed(42))
type EmitterOption func(*emitterOptions)

// emitterOptions holds optional configuration for Emitter creation.
type emitterOptions struct {
	rng           Rand
	spawnInterval int
}

// defaultEmitterOptions returns the default emitter options.
func defaultEmitterOptions() emitterOptions {
	return emitterOptions{
		rng:           nil, // Will be seeded from the clock if nil
		spawnInterval: DefaultSpawnInterval,
	}
}

// WithRand sets the random source for particle birth parameters.
// Use this to inject a scripted source in tests.
func WithRand(r Rand) EmitterOption {
	return func(o *emitterOptions) {
		o.rng = r
	}
}

// WithSeed seeds a PCG random source, making the particle stream
// reproducible. It overrides an earlier WithRand.
func WithSeed(seed uint64) EmitterOption {
	return func(o *emitterOptions) {
		o.rng = NewRand(seed)
	}
}

// WithSpawnInterval sets how many ticks pass between spawns.
// Values below 1 are treated as 1 (one particle every tick).
func WithSpawnInterval(ticks int) EmitterOption {
	return func(o *emitterOptions) {
		o.spawnInterval = max(ticks, 1)
	}
}
