// Package output defines the sink-agnostic Adapter interface spec.md §4.H
// describes, plus the two concrete formats §6 names: output/text (plain
// whitespace-separated records) and output/libsvm (sparse per-row vectors).
// Neither the retrieved example pack nor the wider ecosystem offers a
// library for either bespoke line format, so both writers are implemented
// directly over bufio.Writer — see DESIGN.md for the stdlib justification.
package output
