package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneThroughTenStaysInRange(t *testing.T) {
	gen := NewOneThroughTen(42)

	const draws = 10000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		v := gen.Random()
		require.GreaterOrEqual(t, v, Min)
		require.LessOrEqual(t, v, Max)
		counts[v]++
	}

	// Every face should appear, each near draws/10
	assert.Len(t, counts, Max-Min+1)
	for v, n := range counts {
		assert.InDelta(t, draws/10, n, 200, "value %d drawn %d times", v, n)
	}
}

func TestOneThroughTenIsDeterministicForSeed(t *testing.T) {
	a := NewOneThroughTen(7)
	b := NewOneThroughTen(7)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Random(), b.Random())
	}
}

func TestOneThroughTenFromEntropy(t *testing.T) {
	gen, err := NewOneThroughTenFromEntropy()
	require.NoError(t, err)

	v := gen.Random()
	assert.GreaterOrEqual(t, v, Min)
	assert.LessOrEqual(t, v, Max)
}

func TestOneThroughTenConcurrentUse(t *testing.T) {
	gen := NewOneThroughTen(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v := gen.Random()
				assert.GreaterOrEqual(t, v, Min)
				assert.LessOrEqual(t, v, Max)
			}
		}()
	}
	wg.Wait()
}

func TestCryptoRandomString(t *testing.T) {
	r := New()

	s := r.String(12, "AB")
	assert.Len(t, s, 12)
	for _, c := range s {
		assert.Contains(t, "AB", string(c))
	}
	assert.Empty(t, r.String(0, "AB"))
	assert.Empty(t, r.String(5, ""))
	assert.Equal(t, 0, r.Intn(0))
}
