// SPDX-License-Identifier: MIT
// Package: outbreak/herd
//
// errors.go - sentinel errors for the herd package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w and a method prefix.

package herd

import "errors"

// ErrInvalidR0 indicates that the basic reproduction number is not a
// finite value > 0.
var ErrInvalidR0 = errors.New("herd: r0 must be finite and > 0")

// ErrInvalidCoverage indicates that a coverage fraction lies outside [0,1]
// or is not a number.
var ErrInvalidCoverage = errors.New("herd: coverage must be in [0,1]")
