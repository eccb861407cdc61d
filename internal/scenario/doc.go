// Package scenario composes the herd, growth and transmission engines into
// the views of the classroom simulator: herd-immunity calculator,
// exponential spread, vaccine impact, click-to-advance animation and the
// node-tree view.
//
// The engines never call each other; every pairing (for example the
// vaccinated vs. unvaccinated curves) happens here as independent calls.
package scenario
