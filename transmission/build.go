// SPDX-License-Identifier: MIT
// Package: outbreak/transmission
//
// build.go - BuildTree.
//
// Contract:
//   - re finite and ≥ 0                 (ErrInvalidRe)
//   - maxGenerations ≥ 0                (ErrNegativeGenerations)
//   - maxGenerations ≤ generation cap   (*CapacityError "maxGenerations")
//   - total nodes ≤ node cap            (*CapacityError "maxNodes")
//   - stochastic rule needs an RNG      (ErrNeedRandSource)
//   - IDs non-empty and unique          (ErrEmptyID / ErrDuplicateID)
//   - either a complete tree or an error; never a partial tree.
//
// Algorithm:
//   Grow one generation at a time. For every node of the frontier whose
//   generation is below maxGenerations, ask the offspring rule for a child
//   count, then append that many children. Children of the frontier are
//   appended in parent order, so creation order is breadth-first.

package transmission

import (
	"fmt"
	"math"
)

const (
	methodBuildTree = "BuildTree"

	// customCapacityHint bounds preallocation when the final size of a
	// custom or stochastic tree is unknown.
	customCapacityHint = 1024
)

// BuildTree grows a transmission tree from the seed case(s) up to
// maxGenerations, branching each case into Offspring(re) children.
func BuildTree(re float64, maxGenerations int, opts ...Option) (*Tree, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildTree, cfg.err)
	}
	if math.IsNaN(re) || math.IsInf(re, 0) || re < 0 {
		return nil, fmt.Errorf("%s: re=%g: %w", methodBuildTree, re, ErrInvalidRe)
	}
	if maxGenerations < 0 {
		return nil, fmt.Errorf("%s: maxGenerations=%d: %w", methodBuildTree, maxGenerations, ErrNegativeGenerations)
	}
	if maxGenerations > cfg.maxGenerations {
		return nil, fmt.Errorf("%s: %w", methodBuildTree,
			&CapacityError{Param: "maxGenerations", Limit: cfg.maxGenerations, Got: maxGenerations})
	}
	if cfg.stochastic && cfg.rng == nil {
		return nil, fmt.Errorf("%s: poisson offspring: %w", methodBuildTree, ErrNeedRandSource)
	}

	capacity := min(cfg.maxNodes, customCapacityHint)
	if !cfg.custom {
		size, ok := ExpectedSize(RoundHalfUp(re), maxGenerations, cfg.seed, cfg.maxNodes)
		if !ok {
			return nil, fmt.Errorf("%s: %w", methodBuildTree,
				&CapacityError{Param: "maxNodes", Limit: cfg.maxNodes, Got: size})
		}
		capacity = size
	} else if cfg.seed > cfg.maxNodes {
		return nil, fmt.Errorf("%s: %w", methodBuildTree,
			&CapacityError{Param: "maxNodes", Limit: cfg.maxNodes, Got: cfg.seed})
	}

	b := &treeBuilder{
		cfg: cfg,
		t: &Tree{
			re:             re,
			maxGenerations: maxGenerations,
			nodes:          make([]Node, 0, capacity),
			parent:         make([]int, 0, capacity),
			children:       make([][]int, 0, capacity),
			byID:           make(map[string]int, capacity),
			genStart:       []int{0},
		},
	}
	if err := b.grow(re, maxGenerations); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildTree, err)
	}

	return b.t, nil
}

// ExpectedSize returns the node count of a deterministic tree with
// branching factor k, seed roots and generations 0..maxGenerations, i.e.
// seed * Σ k^g. ok is false when the count exceeds limit; size is then the
// first partial sum above limit, saturated at math.MaxInt.
func ExpectedSize(k, maxGenerations, seed, limit int) (size int, ok bool) {
	level := seed
	size = seed
	if size > limit {
		return size, false
	}
	for g := 1; g <= maxGenerations && k > 0; g++ {
		// test before multiplying: level*k and size+level*k may overflow.
		if level > math.MaxInt/k {
			return math.MaxInt, false
		}
		level *= k
		if level > math.MaxInt-size {
			return math.MaxInt, false
		}
		size += level
		if size > limit {
			return size, false
		}
	}
	return size, true
}

// treeBuilder holds mutable state for one BuildTree call.
type treeBuilder struct {
	cfg config
	t   *Tree
}

// grow appends the roots, then one generation per iteration.
func (b *treeBuilder) grow(re float64, maxGenerations int) error {
	for i := 0; i < b.cfg.seed; i++ {
		if err := b.add(0, i, -1); err != nil {
			return err
		}
	}
	b.t.genStart = append(b.t.genStart, len(b.t.nodes))

	for g := 0; g < maxGenerations; g++ {
		lo, hi := b.t.genStart[g], b.t.genStart[g+1]

		// Decide every child count of the frontier before allocating, so the
		// node cap is checked once per generation.
		counts := make([]int, hi-lo)
		next := 0
		for i := lo; i < hi; i++ {
			c := b.cfg.offspring(re, g, b.cfg.rng)
			if c < 0 {
				return fmt.Errorf("node %q: %d: %w", b.t.nodes[i].ID, c, ErrBadOffspring)
			}
			counts[i-lo] = c
			next += c
			if len(b.t.nodes)+next > b.cfg.maxNodes {
				return &CapacityError{Param: "maxNodes", Limit: b.cfg.maxNodes, Got: len(b.t.nodes) + next}
			}
		}
		if next == 0 {
			break
		}

		sibling := 0
		for i := lo; i < hi; i++ {
			for c := 0; c < counts[i-lo]; c++ {
				if err := b.add(g+1, sibling, i); err != nil {
					return err
				}
				sibling++
			}
		}
		b.t.genStart = append(b.t.genStart, len(b.t.nodes))
	}

	return nil
}

// add appends one node and links it under parent (-1 for a root).
func (b *treeBuilder) add(generation, sibling, parent int) error {
	idx := len(b.t.nodes)
	id := b.cfg.idFn(idx, generation, sibling)
	if id == "" {
		return fmt.Errorf("index %d: %w", idx, ErrEmptyID)
	}
	if _, dup := b.t.byID[id]; dup {
		return fmt.Errorf("id %q: %w", id, ErrDuplicateID)
	}

	n := Node{ID: id, Index: idx, Generation: generation}
	if parent >= 0 {
		n.Parent = b.t.nodes[parent].ID
		b.t.nodes[parent].Children++
		b.t.children[parent] = append(b.t.children[parent], idx)
	}
	b.t.nodes = append(b.t.nodes, n)
	b.t.parent = append(b.t.parent, parent)
	b.t.children = append(b.t.children, nil)
	b.t.byID[id] = idx

	return nil
}
