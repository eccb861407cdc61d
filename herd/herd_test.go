package herd_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/outbreak/herd"
)

const tol = 1e-9

// TestComputeMetrics_Threshold checks 1 - 1/R0 for R0 > 1 at zero coverage.
func TestComputeMetrics_Threshold(t *testing.T) {
	t.Parallel()

	for _, r0 := range []float64{1.0001, 1.3, 1.5, 2, 3, 6, 10, 12, 15, 18.7, 1000} {
		res, err := herd.ComputeMetrics(r0, 0)
		require.NoError(t, err)

		got, ok := res.Threshold.Value()
		require.True(t, ok, "r0=%g must have a threshold", r0)
		assert.InDelta(t, 1-1/r0, got, tol, "r0=%g", r0)
		assert.True(t, got > 0 && got < 1, "threshold must be in (0,1), got %g", got)
	}
}

// TestComputeMetrics_NoThreshold checks that R0 ≤ 1 never yields a numeric threshold.
func TestComputeMetrics_NoThreshold(t *testing.T) {
	t.Parallel()

	for _, r0 := range []float64{0.01, 0.5, 0.99, 1} {
		for _, c := range []float64{0, 0.25, 0.5, 1} {
			res, err := herd.ComputeMetrics(r0, c)
			require.NoError(t, err)
			assert.False(t, res.Threshold.Applicable(), "r0=%g coverage=%g", r0, c)

			v, ok := res.Threshold.Value()
			assert.False(t, ok)
			assert.Zero(t, v)
			assert.Equal(t, "not applicable", res.Threshold.String())
		}
	}
}

// TestComputeMetrics_ReAndControlled covers Re = max(0, R0(1-c)) and Controlled ⇔ Re ≤ 1.
func TestComputeMetrics_ReAndControlled(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		r0, cov    float64
		wantRe     float64
		controlled bool
	}{
		{"measles full coverage", 15, 0.95, 0.75, true},
		{"measles unvaccinated", 15, 0, 15, false},
		{"exactly one", 2, 0.5, 1, true},
		{"just above one", 2, 0.49, 1.02, false},
		{"full coverage", 6, 1, 0, true},
		{"low r0", 0.8, 0, 0.8, true},
		{"flu-like", 1.5, 0.2, 1.2, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := herd.ComputeMetrics(tc.r0, tc.cov)
			require.NoError(t, err)
			assert.InDelta(t, tc.wantRe, res.Re, tol)
			assert.Equal(t, tc.controlled, res.Controlled)
			assert.Equal(t, res.Re <= 1, res.Controlled)
		})
	}
}

// TestComputeMetrics_Measles pins the classroom scenario.
func TestComputeMetrics_Measles(t *testing.T) {
	res, err := herd.ComputeMetrics(15, 0.95)
	require.NoError(t, err)

	thr, ok := res.Threshold.Value()
	require.True(t, ok)
	assert.InDelta(t, 0.9333, thr, 1e-4)
	assert.InDelta(t, 0.75, res.Re, tol)
	assert.True(t, res.Controlled)
	assert.Equal(t, "93.3%", res.Threshold.String())
}

// TestComputeMetrics_FluLike pins R0 = 1.5 at zero coverage.
func TestComputeMetrics_FluLike(t *testing.T) {
	res, err := herd.ComputeMetrics(1.5, 0)
	require.NoError(t, err)

	thr, ok := res.Threshold.Value()
	require.True(t, ok)
	assert.InDelta(t, 1.0/3, thr, 1e-9)
	assert.False(t, res.Controlled)
}

// TestComputeMetrics_RoundingAboveOne clamps Re when coverage is a hair above 1.
func TestComputeMetrics_RoundingAboveOne(t *testing.T) {
	res, err := herd.ComputeMetrics(15, 1+1e-12)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Re)
	assert.False(t, math.Signbit(res.Re), "Re must not be negative zero")
	assert.True(t, res.Controlled)
}

// TestComputeMetrics_Errors verifies fail-fast preconditions.
func TestComputeMetrics_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		r0, cov float64
		want    error
	}{
		{"zero r0", 0, 0.5, herd.ErrInvalidR0},
		{"negative r0", -2, 0.5, herd.ErrInvalidR0},
		{"nan r0", math.NaN(), 0.5, herd.ErrInvalidR0},
		{"inf r0", math.Inf(1), 0.5, herd.ErrInvalidR0},
		{"negative coverage", 3, -0.01, herd.ErrInvalidCoverage},
		{"coverage above one", 3, 1.01, herd.ErrInvalidCoverage},
		{"nan coverage", 3, math.NaN(), herd.ErrInvalidCoverage},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := herd.ComputeMetrics(tc.r0, tc.cov)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "want %v, got %v", tc.want, err)

			_, err = herd.EffectiveR(tc.r0, tc.cov)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestEffectiveR matches ComputeMetrics.Re.
func TestEffectiveR(t *testing.T) {
	re, err := herd.EffectiveR(12, 0.9)
	require.NoError(t, err)

	res, err := herd.ComputeMetrics(12, 0.9)
	require.NoError(t, err)
	assert.Equal(t, res.Re, re)
	assert.InDelta(t, 1.2, re, tol)
}

// TestResult_MeetsThresholdAndGap covers the coverage-vs-threshold helpers.
func TestResult_MeetsThresholdAndGap(t *testing.T) {
	res, err := herd.ComputeMetrics(4, 0.5) // threshold 0.75
	require.NoError(t, err)

	assert.False(t, res.MeetsThreshold(0.5))
	gap, ok := res.CoverageGap(0.5)
	require.True(t, ok)
	assert.InDelta(t, 0.25, gap, tol)

	assert.True(t, res.MeetsThreshold(0.75))
	gap, ok = res.CoverageGap(0.9)
	require.True(t, ok)
	assert.Zero(t, gap)

	low, err := herd.ComputeMetrics(0.9, 0)
	require.NoError(t, err)
	assert.True(t, low.MeetsThreshold(0))
	_, ok = low.CoverageGap(0)
	assert.False(t, ok)
}

// TestThreshold_ZeroValue documents that the zero value is "not applicable".
func TestThreshold_ZeroValue(t *testing.T) {
	var thr herd.Threshold
	assert.False(t, thr.Applicable())
	assert.Equal(t, herd.NotApplicable(), thr)
}
