// Package simmatrix implements the packed similarity/distance matrix:
// range selection over an N×N coordinate space, triangular packing for the
// symmetric (x == y) case, rectangular packing otherwise, and the block
// splitting primitive an external orchestrator uses to fan one logical
// matrix across several processes.
//
// Layout mirrors the teacher's matrix package (flat []float64 backing
// store, bounds-checked accessors, sentinel errors) but the packing scheme
// itself — triangular storage addressed by (min, max) of the two
// coordinates — comes from original_source/src/hmatrix.c, including its
// documented get/set asymmetry bug: Get and Set here share one index
// function so the bug cannot recur (see Matrix.index).
package simmatrix
