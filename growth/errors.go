// SPDX-License-Identifier: MIT
// Package: outbreak/growth
//
// errors.go - sentinel errors and the capacity error type.

package growth

import (
	"errors"
	"fmt"
)

// ErrInvalidRe indicates a reproduction number that is negative, NaN or infinite.
var ErrInvalidRe = errors.New("growth: re must be finite and ≥ 0")

// ErrNegativeGenerations indicates generations < 0.
var ErrNegativeGenerations = errors.New("growth: generations must be ≥ 0")

// ErrOptionViolation indicates that an Option received a meaningless value
// (e.g. WithSeedCount(0)). It is surfaced when GenerateSeries runs.
var ErrOptionViolation = errors.New("growth: invalid option supplied")

// ErrCapacityExceeded indicates that a request exceeds a configured ceiling.
// The concrete error is a *CapacityError naming the parameter.
var ErrCapacityExceeded = errors.New("growth: capacity exceeded")

// CapacityError reports which parameter crossed which ceiling.
// errors.Is(err, ErrCapacityExceeded) holds for every CapacityError.
type CapacityError struct {
	Param string
	Limit int
	Got   int
}

// Error implements error.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("growth: %s=%d exceeds limit %d", e.Param, e.Got, e.Limit)
}

// Unwrap lets errors.Is match ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }
