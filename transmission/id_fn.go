// SPDX-License-Identifier: MIT
// Package: outbreak/transmission
//
// id_fn.go - node identifier schemes.

package transmission

import (
	"strconv"
)

// IDFn generates a node identifier from its creation index, its generation
// and its position among the nodes of that generation.
// It must be pure: the same arguments always give the same ID.
type IDFn func(idx, generation, sibling int) string

// DefaultIDFn returns the decimal creation index, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx, _, _ int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns prefix + decimal index, e.g. "case0", "case1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx, _, _ int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// GenerationIDFn returns "g<generation>-<sibling>", e.g. "g0-0", "g2-3".
func GenerationIDFn(_, generation, sibling int) string {
	return "g" + strconv.Itoa(generation) + "-" + strconv.Itoa(sibling)
}

// WithPrefixIDs sets the ID scheme to PrefixIDFn(prefix).
func WithPrefixIDs(prefix string) Option {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithGenerationIDs sets the ID scheme to GenerationIDFn.
func WithGenerationIDs() Option {
	return WithIDScheme(GenerationIDFn)
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() Option {
	return WithIDScheme(DefaultIDFn)
}
