// Package rng wraps a seeded PCG source with the sampling helpers used by
// procedural generation: ranges, coin flips, axis selection biased towards
// the longer side, Gaussian ratios, samplers and weighted selection.
//
// Every helper draws from the [Rand] it is given, so a fixed seed always
// yields the same sequence.
package rng

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/architectus/pkg/geom"
)

// Rand is a deterministic random source.
type Rand struct {
	*rand.Rand
	seed uint64
}

// New returns a source seeded with seed.
func New(seed uint64) *Rand {
	return &Rand{Rand: rand.New(rand.NewPCG(seed, seed^0xdeadbeef)), seed: seed}
}

// Seed returns the seed the source was created with.
func (r *Rand) Seed() uint64 { return r.seed }

// EntropySeed returns a fresh non-zero seed from the runtime's entropy
// source.
func EntropySeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// Between returns an integer in [lo, hi].
func (r *Rand) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool { return r.Float64() < p }

// Axis picks a main axis for a region of the given size. The longer side is
// favoured in proportion to its share of the perimeter, so a 12x4 region
// chooses horizontal three times out of four and a square is a coin flip.
func (r *Rand) Axis(size geom.Vector2Int) geom.Axis {
	total := size.X + size.Y
	if total <= 0 {
		return geom.Horizontal
	}
	if r.Float64()*float64(total) < float64(size.X) {
		return geom.Horizontal
	}
	return geom.Vertical
}

// Gaussian returns a normally distributed value (Box-Muller).
func (r *Rand) Gaussian(mean, stddev float64) float64 {
	u1 := 1 - r.Float64()
	u2 := 1 - r.Float64()
	return mean + stddev*math.Sqrt(-2*math.Log(u1))*math.Sin(2*math.Pi*u2)
}

// GaussianRatio returns a value in [0, 1] centred on 0.5 with a standard
// deviation of 0.15.
func (r *Rand) GaussianRatio() float64 {
	return r.BiasedGaussianRatio(0.5)
}

// BiasedGaussianRatio is [Rand.GaussianRatio] centred on bias instead.
func (r *Rand) BiasedGaussianRatio(bias float64) float64 {
	return max(0, min(1, r.Gaussian(bias, 0.15)))
}
