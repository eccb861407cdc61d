// SPDX-License-Identifier: MIT

// Package growth generates generation-indexed infection counts under a
// deterministic exponential model.
//
// What
//
//   - GenerateSeries(re, generations, opts...) returns a Series of
//     generations+1 points where Infected(g) = seed * re^g.
//   - Series helpers expose the values a chart needs: Final, Cumulative,
//     Upto (prefix for click-to-advance animations).
//
// Why
//
//	The model is an expectation, not a draw: identical inputs always
//	produce an identical series, which keeps classroom demonstrations
//	reproducible.
//
// Caps
//
//	re^g is unbounded, so the generator refuses generation counts above a
//	configurable ceiling (WithMaxGenerations, default DefaultMaxGenerations)
//	with ErrCapacityExceeded. TreeGenerations is the smaller ceiling used by
//	tree-style and animated views.
//
// Comparing a vaccinated and an unvaccinated curve is two independent calls
// with the same generations and seed; this package has no notion of pairing.
//
// Complexity: O(generations) time and space.
package growth
