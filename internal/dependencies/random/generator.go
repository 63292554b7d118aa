package random

import (
	"math/rand/v2"
	"sync"
)

// Bounds of the values produced by OneThroughTen
const (
	Min = 1
	Max = 10
)

// Generator produces random integers. Consumers depend on this rather
// than on a concrete source so tests can queue exact draws.
type Generator interface {
	Random() int
}

// OneThroughTen draws integers uniformly from [Min, Max]
type OneThroughTen struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Ensure OneThroughTen implements Generator
var _ Generator = (*OneThroughTen)(nil)

// NewOneThroughTen creates a generator with a fixed seed. The same seed
// always yields the same sequence.
func NewOneThroughTen(seed uint64) *OneThroughTen {
	return &OneThroughTen{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// NewOneThroughTenFromEntropy creates a generator seeded from crypto/rand
func NewOneThroughTenFromEntropy() (*OneThroughTen, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewOneThroughTen(seed), nil
}

// Random returns a value in [Min, Max]. Safe for concurrent use.
func (g *OneThroughTen) Random() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Min + g.rng.IntN(Max-Min+1)
}
