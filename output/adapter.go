package output

import "github.com/go-harry/harry/simmatrix"

// Adapter is the format-agnostic output sink of spec.md §4.H: open a named
// sink, drain a finished Matrix into it, then close it. Implementations
// must not read m concurrently with any other writer of m — compute.Run
// has already returned by the time Write is called, so this is a
// sequential, post-compute phase.
type Adapter interface {
	// Open prepares name (a file path, or "-" for stdout) to receive
	// records.
	Open(name string) error

	// Write drains every stored cell of m and returns the number of
	// records written.
	Write(m *simmatrix.Matrix) (int, error)

	// Close releases the sink. Safe to call after a failed Open.
	Close() error
}
