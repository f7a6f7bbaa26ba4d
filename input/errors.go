package input

import "errors"

// Sentinel errors for the input package.
var (
	// ErrEmptySource is returned by Read when the source yields no strings
	// at all; spec.md §7 treats an empty input batch as Fatal.
	ErrEmptySource = errors.New("input: source produced no strings")
)
