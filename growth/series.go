// SPDX-License-Identifier: MIT
// Package: outbreak/growth
//
// series.go - GenerateSeries and the Series value type.
//
// Contract:
//   - re finite and ≥ 0, else ErrInvalidRe.
//   - generations ≥ 0, else ErrNegativeGenerations.
//   - generations ≤ ceiling, else *CapacityError{Param: "generations"}.
//   - Point g holds seed * re^g; len(series) == generations+1.

package growth

import (
	"fmt"
	"math"
)

const methodGenerateSeries = "GenerateSeries"

// Point is one generation of a series.
type Point struct {
	Generation int
	Infected   float64
}

// Series is an ordered, generation-indexed infection count sequence
// starting at generation 0.
type Series []Point

// GenerateSeries returns seed*re^g for g = 0..generations.
func GenerateSeries(re float64, generations int, opts ...Option) (Series, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerateSeries, cfg.err)
	}
	if math.IsNaN(re) || math.IsInf(re, 0) || re < 0 {
		return nil, fmt.Errorf("%s: re=%g: %w", methodGenerateSeries, re, ErrInvalidRe)
	}
	if generations < 0 {
		return nil, fmt.Errorf("%s: generations=%d: %w", methodGenerateSeries, generations, ErrNegativeGenerations)
	}
	if generations > cfg.maxGenerations {
		return nil, fmt.Errorf("%s: %w", methodGenerateSeries,
			&CapacityError{Param: "generations", Limit: cfg.maxGenerations, Got: generations})
	}

	out := make(Series, generations+1)
	for g := 0; g <= generations; g++ {
		// math.Pow(0, 0) == 1, so re = 0 keeps the seed at generation 0.
		out[g] = Point{Generation: g, Infected: cfg.seed * math.Pow(re, float64(g))}
	}

	return out, nil
}

// Len returns the number of points.
func (s Series) Len() int { return len(s) }

// Final returns the count of the last generation, or 0 for an empty series.
func (s Series) Final() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Infected
}

// Cumulative returns the sum of all generation counts.
func (s Series) Cumulative() float64 {
	var sum float64
	for _, p := range s {
		sum += p.Infected
	}
	return sum
}

// Values returns the infected counts in generation order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Infected
	}
	return out
}

// Generations returns the generation indices in order.
func (s Series) Generations() []int {
	out := make([]int, len(s))
	for i, p := range s {
		out[i] = p.Generation
	}
	return out
}

// Upto returns the prefix through generation k (inclusive). k is clamped
// to [0, len-1]; the result shares no memory with s.
func (s Series) Upto(k int) Series {
	if len(s) == 0 {
		return Series{}
	}
	if k < 0 {
		k = 0
	}
	if k >= len(s) {
		k = len(s) - 1
	}
	out := make(Series, k+1)
	copy(out, s[:k+1])
	return out
}
