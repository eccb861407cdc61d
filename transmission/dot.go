// SPDX-License-Identifier: MIT
// Package: outbreak/transmission
//
// dot.go - Graphviz export.

package transmission

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT writes t as a Graphviz digraph: one node statement per case,
// one parent -> child edge per transmission and one rank per generation.
func WriteDOT(w io.Writer, t *Tree) error {
	if t == nil {
		return ErrNilTree
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph Transmission {")
	fmt.Fprintln(bw, "  rankdir=TB;")
	fmt.Fprintln(bw, "  node [shape=circle, fontsize=10];")

	for g := 0; g <= t.Depth(); g++ {
		fmt.Fprintf(bw, "  { rank=same;")
		for _, n := range t.Generation(g) {
			fmt.Fprintf(bw, " %q;", n.ID)
		}
		fmt.Fprintln(bw, " }")
	}
	for _, n := range t.nodes {
		if n.IsRoot() {
			continue
		}
		fmt.Fprintf(bw, "  %q -> %q;\n", n.Parent, n.ID)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
