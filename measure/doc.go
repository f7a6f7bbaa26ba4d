// Package measure implements the name→(configure, compare) dispatch layer
// of spec.md §4.E together with concrete bodies for every measure family it
// names: edit distances, global/local alignment, bag/set coefficients, and
// kernels.
//
// spec.md marks the measure bodies out of scope ("implementing them is a
// separable exercise"); SPEC_FULL.md takes that exercise up because the
// package's own testable properties (spec.md §8, scenarios E1/E2) require
// Levenshtein and Jaccard to produce exact, bitwise-reproducible values.
// Levenshtein, Needleman-Wunsch, Smith-Waterman and dtw reuse the
// rolling-two-row DP idiom of the teacher repository's dtw package (OSA,
// Damerau and the subsequence kernel keep full tables); the bag/set
// coefficients share one match_t
// triple, grounded on original_source/src/measures/sim_coefficient.h.
package measure
