package painterly

import "math/rand/v2"

// Rand is the source of randomness used by the pipeline: grid jitter,
// seed ordering and color jitter all draw from it.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a deterministic random source for the given seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// jitter returns a uniform value in [-amount/2, amount/2).
func jitter(r Rand, amount float64) float64 {
	return (r.Float64() - 0.5) * amount
}
