// SPDX-License-Identifier: MIT
// Package: initwith/generators
//
// random.go — generators drawing from a caller-owned *rand.Rand.
//
// Contract:
//   • The RNG is shared state: two generators over one RNG interleave draws,
//     which is deterministic for a fixed seed and call order.
//   • Constructors panic on a nil RNG or meaningless parameters.

package generators

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/initwith/fixed"
)

// NewRand returns a *rand.Rand seeded with seed, for reproducible arrays.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Constant returns a generator that always yields value.
// Equivalent to Repeat; kept for symmetry with the distributions below.
func Constant(value float64) fixed.Generator[float64] {
	return Repeat(value)
}

// Uniform returns a generator sampling uniformly in [min, max).
// A degenerate interval min == max always yields min.
// Panics if rng is nil or max < min.
func Uniform(rng *rand.Rand, min, max float64) fixed.Generator[float64] {
	mustRand("Uniform", rng)
	if max < min {
		panic(fmt.Sprintf("Uniform: require min ≤ max, got min=%g, max=%g", min, max))
	}
	span := max - min

	return func() float64 {
		if span == 0 {
			return min
		}
		return min + rng.Float64()*span
	}
}

// Normal returns a generator sampling from N(mean, stddev), rounded to the
// nearest integer and clipped to [0, MaxInt64].
// Panics if rng is nil or stddev < 0.
func Normal(rng *rand.Rand, mean, stddev float64) fixed.Generator[float64] {
	mustRand("Normal", rng)
	if stddev < 0 {
		panic(fmt.Sprintf("Normal: stddev must be ≥ 0, got %g", stddev))
	}
	maxVal := float64(math.MaxInt64)

	return func() float64 {
		sample := rng.NormFloat64()*stddev + mean
		if sample < 0 {
			return 0
		}
		if sample > maxVal {
			return maxVal
		}
		return math.Round(sample)
	}
}

// Exponential returns a generator sampling from Exp(rate), rounded to the
// nearest integer. Panics if rng is nil or rate ≤ 0.
func Exponential(rng *rand.Rand, rate float64) fixed.Generator[float64] {
	mustRand("Exponential", rng)
	if rate <= 0 {
		panic(fmt.Sprintf("Exponential: rate must be > 0, got %g", rate))
	}

	return func() float64 {
		// ExpFloat64 has mean 1; dividing by rate gives mean 1/rate.
		return math.Round(rng.ExpFloat64() / rate)
	}
}

// mustRand panics with the constructor name when rng is nil.
func mustRand(name string, rng *rand.Rand) {
	if rng == nil {
		panic(name + ": nil *rand.Rand")
	}
}
