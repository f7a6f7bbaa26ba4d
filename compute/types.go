package compute

import "time"

// Options configures one Run call.
type Options struct {
	// Workers is the worker pool size. <= 0 means runtime.GOMAXPROCS(0).
	Workers int

	// ReportEvery is how often a progress line is logged, by completed
	// cell count. <= 0 disables progress logging entirely.
	ReportEvery int64

	// ReportInterval additionally throttles progress lines by wall time,
	// so a fast run over a small matrix doesn't spam logs even if
	// ReportEvery is small. Zero disables the time-based throttle.
	ReportInterval time.Duration
}

// DefaultOptions returns the recommended configuration for Run. Run does
// not substitute it for a zero Options: a zero Options runs with
// GOMAXPROCS workers and no progress logging.
func DefaultOptions() Options {
	return Options{
		ReportEvery:    10000,
		ReportInterval: time.Second,
	}
}

// Stats summarizes a completed Run.
type Stats struct {
	// Cells is the total number of matrix cells filled.
	Cells int

	// Elapsed is the wall-clock duration of the fill.
	Elapsed time.Duration
}
