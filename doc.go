// Package outbreak is a small teaching engine for epidemic growth and
// vaccination: how a disease with basic reproduction number R0 spreads
// across discrete generations, and how coverage suppresses it.
//
// Under the hood, everything is organized under three independent packages:
//
//	herd/         - herd-immunity threshold, effective R, controlled flag
//	growth/       - deterministic generation-by-generation infection series
//	transmission/ - finite branching transmission trees, walk, layout, DOT
//
// plus supporting packages:
//
//	presets/           - named disease R0 and coverage presets (YAML)
//	internal/scenario/ - composes the engines into classroom views
//	cmd/outbreak/      - command-line front-end
//
// Quick ASCII example (Re = 1.5 rounds to 2 children per case):
//
//	        0
//	      /   \
//	     1     2
//	    / \   / \
//	   3   4 5   6
//
// Everything is deterministic by default; stochastic branching is an
// explicit opt-in (transmission.WithPoissonOffspring).
//
//	go install github.com/katalvlaran/outbreak/cmd/outbreak@latest
package outbreak
