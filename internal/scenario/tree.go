package scenario

import (
	"fmt"
	"log"

	"github.com/katalvlaran/outbreak/herd"
	"github.com/katalvlaran/outbreak/transmission"
)

// TreeView is the node-tree page: a truncated tree plus plot positions.
type TreeView struct {
	Disease string
	// Re is the reproduction number after coverage.
	Re float64
	// Branching is the Re actually used to grow the tree (capped).
	Branching float64
	Capped    bool
	Tree      *transmission.Tree
	Positions []transmission.Position
}

// TreeOptions bound the tree view. Zero values select the transmission
// package defaults.
type TreeOptions struct {
	Generations int
	MaxNodes    int
	Logger      *log.Logger
}

// Tree builds the node-tree view for p. Re is capped with CapRe so the
// tree stays within opts.MaxNodes.
func Tree(p Params, opts TreeOptions) (TreeView, error) {
	if opts.Generations <= 0 {
		opts.Generations = transmission.DefaultMaxGenerations
	}
	if opts.MaxNodes <= 0 {
		opts.MaxNodes = transmission.DefaultMaxNodes
	}

	re, err := herd.EffectiveR(p.R0, p.Coverage)
	if err != nil {
		return TreeView{}, fmt.Errorf("tree: %w", err)
	}
	branching, capped := CapRe(re, opts.Generations, opts.MaxNodes)
	if capped && opts.Logger != nil {
		opts.Logger.Printf("tree: Re %.2f capped to %.0f to stay within %d nodes", re, branching, opts.MaxNodes)
	}

	tr, err := transmission.BuildTree(branching, opts.Generations,
		transmission.WithMaxNodes(opts.MaxNodes),
		transmission.WithMaxGenerationsCap(opts.Generations))
	if err != nil {
		return TreeView{}, fmt.Errorf("tree: %w", err)
	}
	pos, err := transmission.Layout(tr)
	if err != nil {
		return TreeView{}, fmt.Errorf("tree: %w", err)
	}

	return TreeView{
		Disease:   p.Disease,
		Re:        re,
		Branching: branching,
		Capped:    capped,
		Tree:      tr,
		Positions: pos,
	}, nil
}

// CapRe returns re unchanged when a deterministic tree of the given depth
// fits in maxNodes; otherwise the largest integer branching factor that fits.
func CapRe(re float64, generations, maxNodes int) (float64, bool) {
	k := transmission.RoundHalfUp(re)
	if _, ok := transmission.ExpectedSize(k, generations, 1, maxNodes); ok {
		return re, false
	}
	// with one generation or more, any k ≥ maxNodes exceeds the cap
	k = min(k, max(maxNodes, 0))
	for k > 0 {
		k--
		if _, ok := transmission.ExpectedSize(k, generations, 1, maxNodes); ok {
			break
		}
	}
	return float64(k), true
}
