package measure

import "errors"

// Sentinel errors for the measure package.
var (
	// ErrUnknownMeasure is returned by Configure when name has no
	// registered entry; the registry has already fallen back to
	// DefaultMeasure by the time this is returned, matching spec.md §4.E's
	// "Unknown names are a warning that falls back to a documented
	// default."
	ErrUnknownMeasure = errors.New("measure: unknown measure name")
)
