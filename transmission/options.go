// SPDX-License-Identifier: MIT
// Package: outbreak/transmission
//
// options.go - functional options for BuildTree.
//
// Contract:
//   • Options never panic. Meaningless values are recorded and surfaced as
//     ErrOptionViolation when BuildTree runs.
//   • Nil functions/RNGs are no-ops and keep the current setting.
//   • Determinism is explicit: randomness only through WithSeed/WithRand
//     combined with a stochastic offspring rule.

package transmission

import (
	"fmt"
	"math/rand"
)

// Option customizes BuildTree.
type Option func(*config)

// WithSeedCount sets the number of index cases (≥ 1) at generation 0.
func WithSeedCount(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: %w: got %d", ErrOptionViolation, ErrInvalidSeedCount, n)
			return
		}
		c.seed = n
	}
}

// WithMaxNodes sets the total node ceiling (≥ 1).
func WithMaxNodes(n int) Option {
	return func(c *config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: max nodes must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		c.maxNodes = n
	}
}

// WithMaxGenerationsCap sets the ceiling for maxGenerations (≥ 0).
func WithMaxGenerationsCap(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.err = fmt.Errorf("%w: generation cap cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		c.maxGenerations = n
	}
}

// WithIDScheme sets the node ID generator. Nil is ignored.
func WithIDScheme(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithOffspring replaces the branching rule. Nil is ignored.
// A custom rule disables the up-front size check; the node cap is then
// enforced generation by generation.
func WithOffspring(fn OffspringFn) Option {
	return func(c *config) {
		if fn != nil {
			c.offspring = fn
			c.custom = true
			c.stochastic = false
		}
	}
}

// WithPoissonOffspring draws each case's children from Poisson(re).
// Requires WithSeed or WithRand.
func WithPoissonOffspring() Option {
	return func(c *config) {
		c.offspring = PoissonOffspring
		c.custom = true
		c.stochastic = true
	}
}

// WithRand provides the RNG for stochastic rules. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a seeded RNG so stochastic trees are reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
