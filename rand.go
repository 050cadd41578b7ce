package smoke

import (
	"math/rand/v2"
	"time"
)

// Rand is the source of randomness for particle birth parameters.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a uniform value in [0.0, 1.0).
	Float64() float64
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand seeded with seed.
// Equal seeds produce equal particle streams.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func defaultRand() Rand {
	return NewRand(uint64(time.Now().UnixNano())) //nolint:gosec // seed only, sign is irrelevant
}
