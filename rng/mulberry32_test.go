package rng_test

import (
	"testing"

	"github.com/pcbroute/autoroute/rng"
	"github.com/stretchr/testify/assert"
)

func TestRand_Deterministic(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint32(), b.Uint32())
	}
}

func TestRand_DifferentSeedsDiverge(t *testing.T) {
	a := rng.New(1)
	b := rng.New(2)
	assert.NotEqual(t, a.Uint32(), b.Uint32())
}

func TestRand_Float64Range(t *testing.T) {
	r := rng.New(7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestRand_ShuffleIsDeterministicPerSeed(t *testing.T) {
	build := func(seed uint32) []int {
		xs := []int{0, 1, 2, 3, 4, 5, 6, 7}
		rng.New(seed).Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })

		return xs
	}
	assert.Equal(t, build(5), build(5))
}
