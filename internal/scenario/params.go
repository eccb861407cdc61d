package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/outbreak/presets"
)

// ErrInvalidParams indicates a user selection outside the accepted ranges.
var ErrInvalidParams = errors.New("scenario: invalid parameters")

// CustomDisease labels parameters whose R0 overrides any disease preset.
const CustomDisease = "Custom"

// Selection is what the user picked: a preset or override for each knob.
type Selection struct {
	Disease        string
	R0             float64 // > 0 overrides the disease preset and its name
	Coverage       float64
	CoveragePreset string // overrides Coverage when set
	Generations    int
}

// Params are validated inputs for the views.
type Params struct {
	Disease     string
	R0          float64
	Coverage    float64
	Generations int
}

// Resolve turns a Selection into Params using cat for preset lookups.
func Resolve(cat *presets.Catalog, sel Selection) (Params, error) {
	p := Params{
		Disease:     sel.Disease,
		R0:          sel.R0,
		Coverage:    sel.Coverage,
		Generations: sel.Generations,
	}

	if p.R0 == 0 {
		d, err := cat.Disease(sel.Disease)
		if err != nil {
			return Params{}, fmt.Errorf("resolve disease: %w", err)
		}
		p.Disease, p.R0 = d.Name, d.R0
	} else {
		p.Disease = CustomDisease
	}
	if sel.CoveragePreset != "" {
		c, err := cat.Coverage(sel.CoveragePreset)
		if err != nil {
			return Params{}, fmt.Errorf("resolve coverage: %w", err)
		}
		p.Coverage = c.Coverage
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks the ranges the engines document as caller preconditions.
func (p Params) Validate() error {
	switch {
	case math.IsNaN(p.R0) || math.IsInf(p.R0, 0) || p.R0 <= 0:
		return fmt.Errorf("%w: r0 must be > 0, got %g", ErrInvalidParams, p.R0)
	case math.IsNaN(p.Coverage) || p.Coverage < 0 || p.Coverage > 1:
		return fmt.Errorf("%w: coverage must be in [0,1], got %g", ErrInvalidParams, p.Coverage)
	case p.Generations < 0:
		return fmt.Errorf("%w: generations must be ≥ 0, got %d", ErrInvalidParams, p.Generations)
	}
	return nil
}
