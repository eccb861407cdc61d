// SPDX-License-Identifier: MIT
// Package: outbreak/presets
//
// presets.go - YAML-backed catalog of disease and coverage presets.

package presets

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Sentinel errors.
var (
	// ErrUnknownDisease indicates a lookup for a disease not in the catalog.
	ErrUnknownDisease = errors.New("presets: unknown disease")

	// ErrUnknownCoverage indicates a lookup for a coverage preset not in the catalog.
	ErrUnknownCoverage = errors.New("presets: unknown coverage preset")

	// ErrInvalidPreset indicates a preset with an empty name or an out-of-range value.
	ErrInvalidPreset = errors.New("presets: invalid preset")

	// ErrDuplicatePreset indicates two presets of the same kind share a name.
	ErrDuplicatePreset = errors.New("presets: duplicate preset name")
)

//go:embed presets.yaml
var builtin []byte

// Disease is a named basic reproduction number.
type Disease struct {
	Name string  `yaml:"name"`
	R0   float64 `yaml:"r0"`
}

// Coverage is a named vaccination coverage fraction.
type Coverage struct {
	Name     string  `yaml:"name"`
	Coverage float64 `yaml:"coverage"`
}

// file is the on-disk YAML shape.
type file struct {
	Diseases  []Disease  `yaml:"diseases"`
	Coverages []Coverage `yaml:"coverages"`
}

// Catalog holds validated presets.
type Catalog struct {
	diseases  []Disease
	coverages []Coverage

	diseaseIdx  map[string]int
	coverageIdx map[string]int
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the built-in catalog. The embedded data is validated by
// tests, so a parse failure here is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		cat, err := Load(bytes.NewReader(builtin))
		if err != nil {
			panic(fmt.Sprintf("presets: embedded catalog: %v", err))
		}
		defaultCat = cat
	})
	return defaultCat
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open presets: %w", err)
	}
	defer f.Close()

	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Load reads and validates a catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	cat := &Catalog{
		diseases:    make([]Disease, 0, len(f.Diseases)),
		coverages:   make([]Coverage, 0, len(f.Coverages)),
		diseaseIdx:  make(map[string]int, len(f.Diseases)),
		coverageIdx: make(map[string]int, len(f.Coverages)),
	}
	for _, d := range f.Diseases {
		d.Name = strings.TrimSpace(d.Name)
		if d.Name == "" || math.IsNaN(d.R0) || math.IsInf(d.R0, 0) || d.R0 <= 0 {
			return nil, fmt.Errorf("disease %q r0=%g: %w", d.Name, d.R0, ErrInvalidPreset)
		}
		key := normalize(d.Name)
		if _, dup := cat.diseaseIdx[key]; dup {
			return nil, fmt.Errorf("disease %q: %w", d.Name, ErrDuplicatePreset)
		}
		cat.diseaseIdx[key] = len(cat.diseases)
		cat.diseases = append(cat.diseases, d)
	}
	for _, c := range f.Coverages {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" || math.IsNaN(c.Coverage) || c.Coverage < 0 || c.Coverage > 1 {
			return nil, fmt.Errorf("coverage %q value=%g: %w", c.Name, c.Coverage, ErrInvalidPreset)
		}
		key := normalize(c.Name)
		if _, dup := cat.coverageIdx[key]; dup {
			return nil, fmt.Errorf("coverage %q: %w", c.Name, ErrDuplicatePreset)
		}
		cat.coverageIdx[key] = len(cat.coverages)
		cat.coverages = append(cat.coverages, c)
	}

	return cat, nil
}

// Disease looks up a disease by name (case-insensitive).
func (c *Catalog) Disease(name string) (Disease, error) {
	i, ok := c.diseaseIdx[normalize(name)]
	if !ok {
		return Disease{}, fmt.Errorf("%q: %w", name, ErrUnknownDisease)
	}
	return c.diseases[i], nil
}

// Diseases returns all diseases in catalog order.
func (c *Catalog) Diseases() []Disease {
	out := make([]Disease, len(c.diseases))
	copy(out, c.diseases)
	return out
}

// Coverage looks up a coverage preset by name (case-insensitive).
func (c *Catalog) Coverage(name string) (Coverage, error) {
	i, ok := c.coverageIdx[normalize(name)]
	if !ok {
		return Coverage{}, fmt.Errorf("%q: %w", name, ErrUnknownCoverage)
	}
	return c.coverages[i], nil
}

// Coverages returns all coverage presets in catalog order.
func (c *Catalog) Coverages() []Coverage {
	out := make([]Coverage, len(c.coverages))
	copy(out, c.coverages)
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
