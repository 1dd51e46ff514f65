package component

import "github.com/matzehuels/architectus/pkg/rng"

// Context carries the random source for one generation pass.
type Context struct {
	seed uint64
	rand *rng.Rand
}

// NewContext returns a context seeded with seed. A zero seed is replaced by
// one drawn from system entropy; [Context.Seed] reports the value in use.
func NewContext(seed uint64) *Context {
	if seed == 0 {
		seed = rng.EntropySeed()
	}
	return &Context{seed: seed, rand: rng.New(seed)}
}

// Seed returns the seed the random source was created from.
func (c *Context) Seed() uint64 { return c.seed }

// Rand returns the context's random source.
func (c *Context) Rand() *rng.Rand { return c.rand }

// Reset rewinds the random source to its initial state.
func (c *Context) Reset() { c.rand = rng.New(c.seed) }

// Derive returns an independent context for sub-pass i (a retry attempt or a
// floor). The derived seed depends only on this context's seed and i, and
// Derive(0) differs from the parent as well.
func (c *Context) Derive(i int) *Context {
	s := splitmix64(c.seed + uint64(i+1)*0x9e3779b97f4a7c15)
	if s == 0 {
		s = 1
	}
	return &Context{seed: s, rand: rng.New(s)}
}

func splitmix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
