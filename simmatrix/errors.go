package simmatrix

import "errors"

// Sentinel errors for simmatrix. ErrInvalidRange is Usage-class (spec.md
// §7) and is recovered by reverting to the full range. ErrSplitSyntax,
// ErrSplitOutOfRange and ErrAlloc are Fatal/Resource class and propagate
// to the caller for process termination. ErrOutOfRange and ErrNotAllocated
// report misuse of Get/Set and are returned to the caller.
var (
	// ErrInvalidRange is returned by SetXRange/SetYRange when the spec
	// string fails to parse or the parsed range violates 0 ≤ i, n ≤ N, i < n.
	ErrInvalidRange = errors.New("simmatrix: invalid range spec")

	// ErrSplitSyntax is returned by Split when the spec string is not of
	// the form "blocks:index".
	ErrSplitSyntax = errors.New("simmatrix: invalid split spec")

	// ErrSplitOutOfRange is returned by Split when blocks or index are out
	// of range; like ErrSplitSyntax, this is Fatal per spec.md §7.
	ErrSplitOutOfRange = errors.New("simmatrix: split parameters out of range")

	// ErrAlloc is returned by Allocate if the backing store cannot be
	// sized (defensive; Go's allocator panics rather than returning an
	// error, so this only fires on the pre-allocation bounds check).
	ErrAlloc = errors.New("simmatrix: could not allocate matrix backing store")

	// ErrOutOfRange is returned by Get/Set when a coordinate falls outside
	// the active x/y ranges.
	ErrOutOfRange = errors.New("simmatrix: coordinate out of range")

	// ErrNotAllocated is returned by Get/Set/index before Allocate has run.
	ErrNotAllocated = errors.New("simmatrix: matrix has not been allocated")
)
