package compute

import "errors"

// Sentinel errors for the compute package.
var (
	// ErrNoBatch is returned by Run when batch is empty; there is nothing
	// to fill and no Matrix was produced.
	ErrNoBatch = errors.New("compute: empty string batch")
)
