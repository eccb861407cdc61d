// SPDX-License-Identifier: MIT
// Package: outbreak/herd
//
// types.go - Threshold (tagged optional value) and Result.

package herd

import "strconv"

// Threshold is the herd-immunity threshold as a fraction in (0,1), or the
// explicit "not applicable" state when R0 ≤ 1.
// The zero value is "not applicable".
type Threshold struct {
	value float64
	ok    bool
}

// NotApplicable returns the absent-threshold value.
func NotApplicable() Threshold { return Threshold{} }

// thresholdOf wraps an applicable fraction.
func thresholdOf(v float64) Threshold { return Threshold{value: v, ok: true} }

// Value returns the threshold fraction and true, or (0,false) when no
// threshold applies.
func (t Threshold) Value() (float64, bool) { return t.value, t.ok }

// Applicable reports whether a threshold exists (R0 > 1).
func (t Threshold) Applicable() bool { return t.ok }

// String renders the threshold as a percentage with one decimal place,
// or "not applicable".
func (t Threshold) String() string {
	if !t.ok {
		return "not applicable"
	}
	return strconv.FormatFloat(Percent(t.value), 'f', 1, 64) + "%"
}

// Result is the outcome of ComputeMetrics.
type Result struct {
	// Threshold is the minimum immune fraction that drives Re ≤ 1.
	Threshold Threshold

	// Re is the effective reproduction number, always ≥ 0.
	Re float64

	// Controlled is true iff Re ≤ 1.
	Controlled bool
}

// MeetsThreshold reports whether coverage reaches the herd-immunity
// threshold. It is always true when no threshold applies.
func (r Result) MeetsThreshold(coverage float64) bool {
	t, ok := r.Threshold.Value()
	if !ok {
		return true
	}
	return coverage >= t
}

// CoverageGap returns how much additional coverage is needed to reach the
// threshold (0 once reached). The boolean is false when no threshold applies.
func (r Result) CoverageGap(coverage float64) (float64, bool) {
	t, ok := r.Threshold.Value()
	if !ok {
		return 0, false
	}
	if coverage >= t {
		return 0, true
	}
	return t - coverage, true
}
