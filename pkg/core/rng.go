package core

import "math/rand/v2"

// RNG wraps math/rand/v2 so runs can be replayed from a seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand, e.g. for grid.Randomize.
func (r *RNG) Source() *rand.Rand { return r.r }
