// SPDX-License-Identifier: MIT
// Package: outbreak/transmission
//
// layout.go - plane coordinates for node-tree charts.
//
// Each generation is a row at Y = generation * rowSpacing. Within a row the
// nodes are spread evenly across [0, width]: n nodes sit at
// width*i/(n-1); a single node sits at 0.

package transmission

import "fmt"

const (
	// DefaultLayoutWidth is the horizontal extent of every row.
	DefaultLayoutWidth = 100.0

	// DefaultRowSpacing is the vertical distance between generations.
	DefaultRowSpacing = 12.0
)

// Position places one node on the plane.
type Position struct {
	ID         string
	Generation int
	X, Y       float64
}

// LayoutOption configures Layout.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	width, spacing float64
	err            error
}

// WithWidth sets the row width (> 0).
func WithWidth(w float64) LayoutOption {
	return func(c *layoutConfig) {
		if !(w > 0) {
			c.err = fmt.Errorf("%w: width must be > 0 (%g)", ErrOptionViolation, w)
			return
		}
		c.width = w
	}
}

// WithRowSpacing sets the distance between generations (> 0).
func WithRowSpacing(s float64) LayoutOption {
	return func(c *layoutConfig) {
		if !(s > 0) {
			c.err = fmt.Errorf("%w: row spacing must be > 0 (%g)", ErrOptionViolation, s)
			return
		}
		c.spacing = s
	}
}

// Layout returns one Position per node in creation order.
func Layout(t *Tree, opts ...LayoutOption) ([]Position, error) {
	if t == nil {
		return nil, ErrNilTree
	}
	cfg := layoutConfig{width: DefaultLayoutWidth, spacing: DefaultRowSpacing}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	out := make([]Position, 0, t.Len())
	for g, count := range t.GenerationCounts() {
		lo := t.genStart[g]
		y := float64(g) * cfg.spacing
		for i := 0; i < count; i++ {
			x := 0.0
			if count > 1 {
				x = cfg.width * float64(i) / float64(count-1)
			}
			n := t.nodes[lo+i]
			out = append(out, Position{ID: n.ID, Generation: g, X: x, Y: y})
		}
	}

	return out, nil
}
