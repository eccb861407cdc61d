// SPDX-License-Identifier: MIT
// Package: outbreak/growth
//
// options.go - functional options and deterministic defaults.

package growth

import (
	"fmt"
	"math"
)

const (
	// DefaultSeedCount is the number of cases at generation 0.
	DefaultSeedCount = 1.0

	// DefaultMaxGenerations is the generation ceiling for bar-chart views.
	DefaultMaxGenerations = 20

	// TreeGenerations is the generation ceiling for tree and animated views.
	TreeGenerations = 8
)

// Option configures GenerateSeries.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*config)

type config struct {
	seed           float64
	maxGenerations int

	err error
}

// WithSeedCount sets the generation-0 case count (> 0, finite).
func WithSeedCount(n float64) Option {
	return func(c *config) {
		if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
			c.err = fmt.Errorf("%w: seed count must be finite and > 0 (%g)", ErrOptionViolation, n)
			return
		}
		c.seed = n
	}
}

// WithMaxGenerations sets the generation ceiling (≥ 0).
func WithMaxGenerations(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.err = fmt.Errorf("%w: max generations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		c.maxGenerations = n
	}
}

// newConfig applies opts over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		seed:           DefaultSeedCount,
		maxGenerations: DefaultMaxGenerations,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
