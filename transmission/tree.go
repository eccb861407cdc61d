// SPDX-License-Identifier: MIT
// Package: outbreak/transmission
//
// tree.go - Node and the read-only Tree value produced by BuildTree.
//
// Invariants (established by BuildTree, never mutated afterwards):
//   - nodes are stored in creation order; generation is non-decreasing.
//   - a node with Parent == "" is a root and has Generation 0.
//   - every other node's parent exists and has Generation-1.
//   - Children equals len(children[idx]); nodes at the cap have 0.

package transmission

import "fmt"

// Node is one case in a transmission tree.
type Node struct {
	// ID is unique and stable within the tree.
	ID string

	// Index is the creation index (breadth-first order).
	Index int

	// Generation is the transmission round, 0 for index cases.
	Generation int

	// Parent is the ID of the infecting case, "" for roots.
	Parent string

	// Children is the number of cases this node caused.
	Children int
}

// IsRoot reports whether n is an index case.
func (n Node) IsRoot() bool { return n.Parent == "" }

// Tree is the full set of nodes of one BuildTree call.
// A Tree is immutable and safe for concurrent reads.
type Tree struct {
	re             float64
	maxGenerations int

	nodes    []Node
	parent   []int   // parent index, -1 for roots
	children [][]int // child indices in creation order
	byID     map[string]int
	genStart []int // genStart[g] = first index of generation g; len = depth+2
}

// Re returns the reproduction number the tree was built with.
func (t *Tree) Re() float64 { return t.re }

// MaxGenerations returns the truncation generation requested.
func (t *Tree) MaxGenerations() int { return t.maxGenerations }

// Len returns the total node count.
func (t *Tree) Len() int { return len(t.nodes) }

// Depth returns the highest generation present.
func (t *Tree) Depth() int { return len(t.genStart) - 2 }

// Nodes returns a copy of all nodes in creation order.
func (t *Tree) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Node returns the node with the given ID.
func (t *Tree) Node(id string) (Node, error) {
	idx, ok := t.byID[id]
	if !ok {
		return Node{}, fmt.Errorf("Node(%q): %w", id, ErrNodeNotFound)
	}
	return t.nodes[idx], nil
}

// Has reports whether id names a node of t.
func (t *Tree) Has(id string) bool {
	_, ok := t.byID[id]
	return ok
}

// Roots returns the index cases in creation order.
func (t *Tree) Roots() []Node {
	return t.Generation(0)
}

// Children returns the direct children of id in creation order.
func (t *Tree) Children(id string) ([]Node, error) {
	idx, ok := t.byID[id]
	if !ok {
		return nil, fmt.Errorf("Children(%q): %w", id, ErrNodeNotFound)
	}
	out := make([]Node, len(t.children[idx]))
	for i, c := range t.children[idx] {
		out[i] = t.nodes[c]
	}
	return out, nil
}

// Parent returns the parent of id; ok is false for roots.
func (t *Tree) Parent(id string) (parent Node, ok bool, err error) {
	idx, found := t.byID[id]
	if !found {
		return Node{}, false, fmt.Errorf("Parent(%q): %w", id, ErrNodeNotFound)
	}
	p := t.parent[idx]
	if p < 0 {
		return Node{}, false, nil
	}
	return t.nodes[p], true, nil
}

// Generation returns the nodes of generation g in creation order, or nil
// when g is outside [0, Depth()].
func (t *Tree) Generation(g int) []Node {
	if g < 0 || g > t.Depth() {
		return nil
	}
	lo, hi := t.genStart[g], t.genStart[g+1]
	out := make([]Node, hi-lo)
	copy(out, t.nodes[lo:hi])
	return out
}

// GenerationCounts returns the node count per generation, index = generation.
func (t *Tree) GenerationCounts() []int {
	out := make([]int, len(t.genStart)-1)
	for g := range out {
		out[g] = t.genStart[g+1] - t.genStart[g]
	}
	return out
}

// Leaves returns the nodes without children in creation order.
func (t *Tree) Leaves() []Node {
	var out []Node
	for _, n := range t.nodes {
		if n.Children == 0 {
			out = append(out, n)
		}
	}
	return out
}

// PathToRoot returns the chain id → ... → root.
func (t *Tree) PathToRoot(id string) ([]Node, error) {
	idx, ok := t.byID[id]
	if !ok {
		return nil, fmt.Errorf("PathToRoot(%q): %w", id, ErrNodeNotFound)
	}
	path := make([]Node, 0, t.nodes[idx].Generation+1)
	for ; idx >= 0; idx = t.parent[idx] {
		path = append(path, t.nodes[idx])
	}
	return path, nil
}
