// Package tokenizer converts a byte-payload hstring.String into a
// token-payload one using a process-wide delimiter table.
//
// The delimiter table is deliberately global state: tokenization needs to
// agree on "what counts as a delimiter" across an entire batch, and the
// original tool this engine reimplements (see original_source/src/str.c)
// made that agreement a single process-wide table set once before the
// batch is processed. Set/Reset/IsSet operate on that one table; concurrent
// Set calls while Tokenize is running on other goroutines is a usage error
// the caller must avoid (see the package's concurrency note in SPEC_FULL.md
// §5).
package tokenizer
