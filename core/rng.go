package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a seedable random source threaded through every generator so runs
// can be replayed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Float32 returns a value in [0, 1).
func (r *RNG) Float32() float32 { return r.r.Float32() }

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	v := lo + r.r.Float32()*(hi-lo)
	if v >= hi {
		// float32 rounding can land on hi
		v = math.Nextafter32(hi, lo)
	}
	return v
}

// Jitter returns a value in [-amount, amount).
func (r *RNG) Jitter(amount float32) float32 {
	return (r.r.Float32() - 0.5) * 2 * amount
}

// IntRange returns an int in [lo, hi], both ends inclusive.
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}
