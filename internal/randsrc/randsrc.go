// Package randsrc supplies the randomness consumed by the vector fills.
//
// The core never talks to a concrete generator: callers inject a Source,
// which keeps sampling reproducible under a fixed seed and lets tests
// substitute deterministic draws.
package randsrc

import (
	"math"
	"math/rand"
)

// Source produces the two kinds of draws the vector core needs.
type Source interface {
	// Uniform returns an independent draw in [0, 1).
	Uniform() float64

	// GaussPair returns a pair of independent standard normal draws.
	GaussPair() (float64, float64)
}

// Rand is a Source over a seeded math/rand generator.
type Rand struct {
	rng *rand.Rand
}

// New creates a Source with the given seed.
func New(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a draw in [0, 1).
func (r *Rand) Uniform() float64 {
	return r.rng.Float64()
}

// GaussPair generates two standard normals from one Box-Muller transform.
func (r *Rand) GaussPair() (float64, float64) {
	u1 := r.rng.Float64()
	for u1 == 0 { // log(0) would blow up
		u1 = r.rng.Float64()
	}
	u2 := r.rng.Float64()

	radius := math.Sqrt(-2 * math.Log(u1))
	theta := 2 * math.Pi * u2
	return radius * math.Cos(theta), radius * math.Sin(theta)
}
