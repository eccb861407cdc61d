// SPDX-License-Identifier: MIT

// Package herd computes the headline numbers of a vaccination scenario:
// the herd-immunity threshold and the effective reproduction number.
//
// What
//
//   - ComputeMetrics(r0, coverage) returns a Result with:
//   - Threshold: 1 - 1/R0 when R0 > 1, otherwise an explicit
//     "not applicable" value (never 0, never negative)
//   - Re:        R0 * (1 - coverage), clamped to ≥ 0
//   - Controlled: Re ≤ 1
//   - EffectiveR(r0, coverage) returns Re alone.
//
// Threshold is a tagged value. A disease whose R0 ≤ 1 cannot sustain
// exponential growth even in a fully susceptible population, so "no
// threshold" is a distinct state from "a 0% threshold". Render it with
// Threshold.Applicable / Threshold.Value rather than reading a float.
//
// Preconditions
//
//   - R0 must be a finite number > 0              (ErrInvalidR0)
//   - coverage must be a finite number in [0, 1]  (ErrInvalidCoverage)
//
// Violations are rejected, never clamped. The only clamp is Re ≥ 0, which
// absorbs floating-point noise when coverage is computed by the caller.
//
// Complexity: every function is O(1) time and space, pure and safe for
// concurrent use.
//
// Example:
//
//	res, err := herd.ComputeMetrics(15, 0.95)
//	if err != nil { ... }
//	t, _ := res.Threshold.Value() // 0.9333…
//	fmt.Println(res.Re, res.Controlled) // 0.75 true
package herd
