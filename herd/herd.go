// SPDX-License-Identifier: MIT
// Package: outbreak/herd
//
// herd.go - herd-immunity threshold and effective reproduction number.
//
// Contract:
//   - r0 finite and > 0, else ErrInvalidR0.
//   - coverage finite and in [0,1] (plus a 1e-9 rounding tolerance above 1),
//     else ErrInvalidCoverage.
//   - Re = max(0, r0*(1-coverage)); Controlled = Re ≤ 1.
//   - Threshold = 1 - 1/r0 iff r0 > 1, otherwise NotApplicable().
//
// Complexity: O(1) time, O(1) space.

package herd

import (
	"fmt"
	"math"
)

const (
	methodComputeMetrics = "ComputeMetrics"
	methodEffectiveR     = "EffectiveR"

	// epidemicThreshold is the reproduction number at or below which an
	// outbreak cannot grow.
	epidemicThreshold = 1.0

	minCoverage = 0.0
	maxCoverage = 1.0

	// coverageTolerance admits coverage values a rounding step above 1
	// (e.g. 95/100 + 5/100 computed by a caller); Re is then clamped to 0.
	coverageTolerance = 1e-9
)

// ComputeMetrics returns the herd-immunity threshold, the effective
// reproduction number and the controlled flag for (r0, coverage).
func ComputeMetrics(r0, coverage float64) (Result, error) {
	if err := validate(methodComputeMetrics, r0, coverage); err != nil {
		return Result{}, err
	}

	re := effectiveR(r0, coverage)
	res := Result{
		Threshold:  NotApplicable(),
		Re:         re,
		Controlled: re <= epidemicThreshold,
	}
	if r0 > epidemicThreshold {
		res.Threshold = thresholdOf(1 - 1/r0)
	}

	return res, nil
}

// EffectiveR returns Re = max(0, r0*(1-coverage)) under the same
// preconditions as ComputeMetrics.
func EffectiveR(r0, coverage float64) (float64, error) {
	if err := validate(methodEffectiveR, r0, coverage); err != nil {
		return 0, err
	}
	return effectiveR(r0, coverage), nil
}

// Percent converts a fraction to a percentage (0.9333 → 93.33).
func Percent(fraction float64) float64 {
	return fraction * 100
}

func effectiveR(r0, coverage float64) float64 {
	// Clamp only the rounding noise; inputs were validated above.
	return math.Max(0, r0*(1-coverage))
}

func validate(method string, r0, coverage float64) error {
	if math.IsNaN(r0) || math.IsInf(r0, 0) || r0 <= 0 {
		return fmt.Errorf("%s: r0=%g: %w", method, r0, ErrInvalidR0)
	}
	if math.IsNaN(coverage) || coverage < minCoverage || coverage > maxCoverage+coverageTolerance {
		return fmt.Errorf("%s: coverage=%g: %w", method, coverage, ErrInvalidCoverage)
	}
	return nil
}
