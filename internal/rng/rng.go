package rng

import (
	"math/rand"
	"time"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number in [0, n)
	Intn(n int) int
}

// Seeded is a reproducible Generator backed by math/rand
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a generator for the given seed
// A seed of 0 will use the current time.
func NewSeeded(seed int64) *Seeded {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number in [0, n)
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Seed returns the seed used by the generator
func (s *Seeded) Seed() int64 {
	return s.seed
}
