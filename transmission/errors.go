// SPDX-License-Identifier: MIT
// Package: outbreak/transmission
//
// errors.go - sentinel errors for the transmission package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations wrap sentinels with a method prefix using %w.
//   • Option constructors never panic; bad values surface as
//     ErrOptionViolation when BuildTree / Walk / Layout runs.

package transmission

import (
	"errors"
	"fmt"
)

// ErrInvalidRe indicates a reproduction number that is negative, NaN or infinite.
var ErrInvalidRe = errors.New("transmission: re must be finite and ≥ 0")

// ErrNegativeGenerations indicates maxGenerations < 0.
var ErrNegativeGenerations = errors.New("transmission: generations must be ≥ 0")

// ErrInvalidSeedCount indicates a seed case count < 1.
var ErrInvalidSeedCount = errors.New("transmission: seed count must be ≥ 1")

// ErrCapacityExceeded indicates that the tree would cross a configured
// ceiling. The concrete error is a *CapacityError naming the parameter.
var ErrCapacityExceeded = errors.New("transmission: capacity exceeded")

// ErrNeedRandSource indicates a stochastic offspring rule without an RNG
// (supply WithSeed or WithRand).
var ErrNeedRandSource = errors.New("transmission: rng is required")

// ErrDuplicateID indicates that the ID scheme produced an ID twice.
var ErrDuplicateID = errors.New("transmission: duplicate node id")

// ErrEmptyID indicates that the ID scheme produced an empty ID.
var ErrEmptyID = errors.New("transmission: empty node id")

// ErrBadOffspring indicates that an offspring rule returned a negative count.
var ErrBadOffspring = errors.New("transmission: offspring count must be ≥ 0")

// ErrOptionViolation indicates that an Option received a meaningless value.
var ErrOptionViolation = errors.New("transmission: invalid option supplied")

// ErrNodeNotFound indicates an accessor referenced an unknown node ID.
var ErrNodeNotFound = errors.New("transmission: node not found")

// ErrNilTree indicates a nil *Tree was passed to Walk, Layout or WriteDOT.
var ErrNilTree = errors.New("transmission: tree is nil")

// CapacityError reports which parameter crossed which ceiling.
// errors.Is(err, ErrCapacityExceeded) holds for every CapacityError.
type CapacityError struct {
	Param string
	Limit int
	Got   int
}

// Error implements error.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("transmission: %s=%d exceeds limit %d", e.Param, e.Got, e.Limit)
}

// Unwrap lets errors.Is match ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }
