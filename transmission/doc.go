// SPDX-License-Identifier: MIT

// Package transmission builds finite branching transmission trees: a rooted
// tree where each node is a case and its children are the cases it caused.
//
// What
//
//   - BuildTree(re, maxGenerations, opts...) grows the tree generation by
//     generation from seed case(s) at generation 0.
//   - Every node below maxGenerations gets Offspring(re) children; the
//     default rule is RoundHalfUp(re) (1.5 → 2, 2.49 → 2). Nodes at
//     maxGenerations always have zero children: the tree is truncated.
//   - Tree exposes read-only accessors (Node, Children, Parent, Generation,
//     GenerationCounts, Leaves, PathToRoot).
//   - Walk traverses a Tree breadth-first with hooks and a depth limit.
//   - Layout places nodes on a plane for node-tree charts.
//   - WriteDOT emits Graphviz source.
//
// Determinism
//
//	With default options no randomness is used anywhere: identical inputs
//	produce identical trees, identical IDs and identical creation order
//	(breadth-first: all of generation g precede generation g+1, siblings in
//	parent order). Stochastic branching is an explicit extension point:
//	WithPoissonOffspring together with WithSeed/WithRand, or a custom
//	WithOffspring rule.
//
// Caps
//
//	Node count grows like round(re)^maxGenerations. BuildTree therefore
//	enforces two explicit ceilings, both configurable:
//	  - WithMaxGenerationsCap (default DefaultMaxGenerations = 8)
//	  - WithMaxNodes          (default DefaultMaxNodes = 100000)
//	Crossing either fails with a *CapacityError naming the parameter
//	("maxGenerations" or "maxNodes"). For the deterministic rule the size is
//	computed before any node is allocated.
//
// Identifiers
//
//	Node i in creation order gets idFn(i, generation, sibling). The default
//	is decimal ("0","1",...). IDs are unique and stable within one call.
//
// Complexity (N = number of nodes):
//
//   - BuildTree: O(N) time, O(N) space
//   - Walk:      O(N) time, O(N) space
//   - Layout:    O(N) time, O(N) space
package transmission
