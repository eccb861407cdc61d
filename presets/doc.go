// SPDX-License-Identifier: MIT

// Package presets supplies named disease (R0) and vaccination coverage
// values for the calculator and chart views.
//
// Default returns the built-in catalog (embedded presets.yaml). Load and
// LoadFile read a custom catalog in the same YAML shape:
//
//	diseases:
//	  - name: Measles (MMR)
//	    r0: 15
//	coverages:
//	  - name: High
//	    coverage: 0.90
//
// Lookups are case-insensitive; listing keeps file order. A Catalog is
// immutable after loading and safe for concurrent use.
package presets
