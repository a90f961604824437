// Package rng provides a small, deterministic, pure integer-state PRNG
// (the mulberry32 algorithm) for use as a per-solver-instance random
// source, per spec.md §9's design note: "a pure integer-state PRNG
// (mulberry32-style) per solver instance, never a process-wide RNG." This
// is what CapacityPathing's multi-section optimizer shuffles with and what
// Unravel draws its per-search seeds from, instead of math/rand's global
// source, so that two runs
// with the same SHUFFLE_SEED produce byte-identical output (spec.md §8,
// testable property 8 and scenario S5).
package rng

// Rand is a mulberry32 generator. The zero value is not usable; construct
// with New.
type Rand struct {
	state uint32
}

// New returns a Rand seeded deterministically from seed.
func New(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Uint32 returns the next pseudo-random uint32 and advances the state.
func (r *Rand) Uint32() uint32 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)

	return z ^ (z >> 14)
}

// Float64 returns a pseudo-random float in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / 4294967296.0
}

// Intn returns a pseudo-random int in [0, n). Panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}

	return int(r.Float64() * float64(n))
}

// Shuffle randomizes the order of a length-n sequence in place using
// swap(i, j), via the Fisher-Yates algorithm.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// Derive returns a new independent Rand seeded from r's current state
// combined with salt, for spawning a per-substep child RNG (e.g. one per
// candidate seed in a shuffle schedule) without perturbing r itself.
func (r *Rand) Derive(salt uint32) *Rand {
	mixed := r.state ^ (salt*0x9E3779B1 + 0x85EBCA6B)

	return New(mixed)
}
