// SPDX-License-Identifier: MIT
// Package: outbreak/transmission
//
// walk.go - breadth-first traversal of a Tree with hooks.
//
// Walk visits roots first, then each generation in creation order. Hooks:
//   - OnEnqueue(node) when a node joins the queue
//   - OnVisit(node)   when a node is visited; a non-nil error aborts
// MaxDepth > 0 stops below that generation; 0 means no limit.

package transmission

import (
	"context"
	"fmt"
)

// WalkOption configures Walk.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type WalkOption func(*WalkOptions)

// WalkOptions holds parameters and callbacks for Walk.
type WalkOptions struct {
	// Ctx allows cancellation of long traversals.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued.
	OnEnqueue func(n Node)

	// OnVisit is called when a node is visited. Returning an error stops
	// the walk and propagates the error.
	OnVisit func(n Node) error

	// MaxDepth, if > 0, skips nodes whose generation exceeds it.
	MaxDepth int

	err error
}

// DefaultWalkOptions returns background context, no depth limit and
// no-op hooks.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(Node) {},
		OnVisit:   func(Node) error { return nil },
	}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers an enqueue callback. Nil is ignored.
func WithOnEnqueue(fn func(n Node)) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a visit callback. Nil is ignored.
func WithOnVisit(fn func(n Node) error) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to generations ≤ d.
//
//	d > 0:  limit to generation d
//	d == 0: explicit no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WalkResult holds the visit order and the generation of each visited node.
type WalkResult struct {
	Order []string
	Depth map[string]int
}

// walker encapsulates mutable traversal state.
type walker struct {
	tree  *Tree
	opts  WalkOptions
	queue []int
	res   *WalkResult
}

// Walk traverses t breadth-first from its roots.
// Returns ErrNilTree, ErrOptionViolation, ctx.Err() or a hook error.
func Walk(t *Tree, opts ...WalkOption) (*WalkResult, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	o := DefaultWalkOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	n := t.Len()
	w := &walker{
		tree:  t,
		opts:  o,
		queue: make([]int, 0, n),
		res: &WalkResult{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
	for _, idx := range w.rootIndices() {
		w.enqueue(idx)
	}

	return w.res, w.loop()
}

func (w *walker) rootIndices() []int {
	out := make([]int, 0, w.tree.genStart[1])
	for i := 0; i < w.tree.genStart[1]; i++ {
		out = append(out, i)
	}
	return out
}

func (w *walker) enqueue(idx int) {
	w.queue = append(w.queue, idx)
	w.opts.OnEnqueue(w.tree.nodes[idx])
}

// loop processes the queue until empty, error or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		idx := w.queue[0]
		w.queue = w.queue[1:]

		node := w.tree.nodes[idx]
		w.res.Order = append(w.res.Order, node.ID)
		w.res.Depth[node.ID] = node.Generation
		if err := w.opts.OnVisit(node); err != nil {
			return fmt.Errorf("transmission: OnVisit error at %q: %w", node.ID, err)
		}

		if w.opts.MaxDepth > 0 && node.Generation+1 > w.opts.MaxDepth {
			continue
		}
		for _, c := range w.tree.children[idx] {
			w.enqueue(c)
		}
	}
	return nil
}
