// SPDX-License-Identifier: MIT
// Package: outbreak/transmission
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • seed           = 1          (single index case)
//   • maxNodes       = DefaultMaxNodes
//   • maxGenerations = DefaultMaxGenerations
//   • idFn           = DefaultIDFn ("0","1","2",...)
//   • offspring      = RoundedOffspring
//   • rng            = nil        (no randomness unless seeded)

package transmission

import "math/rand"

const (
	// DefaultSeedCount is the number of index cases at generation 0.
	DefaultSeedCount = 1

	// DefaultMaxGenerations is the generation ceiling used by tree views.
	DefaultMaxGenerations = 8

	// DefaultMaxNodes bounds the total node count of one tree.
	DefaultMaxNodes = 100_000
)

// config aggregates all BuildTree knobs. Passed by value.
type config struct {
	seed           int
	maxNodes       int
	maxGenerations int

	idFn      IDFn
	offspring OffspringFn
	// stochastic marks rules that need rng (WithPoissonOffspring).
	stochastic bool
	// custom marks a caller-supplied rule; its size cannot be precomputed.
	custom bool
	rng    *rand.Rand

	err error
}

// newConfig applies opts over the defaults in order; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		seed:           DefaultSeedCount,
		maxNodes:       DefaultMaxNodes,
		maxGenerations: DefaultMaxGenerations,
		idFn:           DefaultIDFn,
		offspring:      RoundedOffspring,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
