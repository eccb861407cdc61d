// SPDX-License-Identifier: MIT
// Package: outbreak/transmission
//
// offspring.go - branching rules: how many children a case produces.

package transmission

import (
	"math"
	"math/rand"
)

// poissonNormalCutoff is the mean above which Poisson draws switch from
// Knuth's product method to a rounded normal approximation.
const poissonNormalCutoff = 30.0

// OffspringFn returns the number of children of one case at the given
// generation. rng is nil unless WithSeed or WithRand was supplied.
// Deterministic rules ignore rng.
type OffspringFn func(re float64, generation int, rng *rand.Rand) int

// RoundHalfUp rounds re to the nearest non-negative integer, ties up
// (0.5 → 1, 1.5 → 2, 2.5 → 3). Values beyond the int range saturate at
// math.MaxInt.
func RoundHalfUp(re float64) int {
	if re <= 0 || math.IsNaN(re) {
		return 0
	}
	if re >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(math.Floor(re + 0.5))
}

// RoundedOffspring is the default deterministic rule: RoundHalfUp(re) for
// every case regardless of generation.
func RoundedOffspring(re float64, _ int, _ *rand.Rand) int {
	return RoundHalfUp(re)
}

// PoissonOffspring draws a Poisson(re) count from rng.
// It needs a non-nil rng; BuildTree checks this up front.
func PoissonOffspring(re float64, _ int, rng *rand.Rand) int {
	return poisson(rng, re)
}

// poisson samples Poisson(lambda). Small means use Knuth's method; large
// means use N(lambda, lambda) rounded and clamped to ≥ 0.
func poisson(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	if lambda > poissonNormalCutoff {
		v := math.Floor(lambda + math.Sqrt(lambda)*rng.NormFloat64() + 0.5)
		if v < 0 {
			return 0
		}
		return int(v)
	}
	limit := math.Exp(-lambda)
	k := 0
	p := rng.Float64()
	for p > limit {
		k++
		p *= rng.Float64()
	}
	return k
}
