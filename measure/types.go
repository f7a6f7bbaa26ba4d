package measure

import "github.com/go-harry/harry/hstring"

// Options bundles the per-measure configuration knobs referenced by
// spec.md §4.E ("thresholds, costs, kernel orders, etc."). Not every
// measure reads every field; each Entry's Configure hook is responsible
// for validating or defaulting the fields it cares about.
type Options struct {
	// GapCost is the insertion/deletion cost used by Needleman-Wunsch,
	// Smith-Waterman, and the dtw measure's step penalty.
	GapCost float64
	// MatchScore rewards an exact match in alignment-based measures.
	MatchScore float64
	// MismatchCost penalizes a substitution in alignment-based measures.
	MismatchCost float64
	// KernelOrder is the k-mer/subsequence length used by the spectrum and
	// subsequence kernels.
	KernelOrder int
	// Lambda is the decay factor applied to non-contiguous matches in the
	// subsequence kernel (0 < Lambda <= 1).
	Lambda float64
	// Sigma scales the distance-substitution kernel's exp(-d/Sigma) map
	// from a wrapped distance measure to a similarity in (0, 1].
	Sigma float64
	// AlphabetSize is the modulus used by the Lee distance's circular
	// per-position difference.
	AlphabetSize int
}

// DefaultOptions returns the configuration every Entry.Configure hook
// starts from before applying its own defaults.
func DefaultOptions() Options {
	return Options{
		GapCost:      1,
		MatchScore:   1,
		MismatchCost: 1,
		KernelOrder:  3,
		Lambda:       0.5,
		Sigma:        1,
		AlphabetSize: 256,
	}
}

// CompareFunc is a pure function computing a similarity or distance
// between two strings, consulting opts for any configuration the measure
// cares about. Returning NaN or ±Inf is valid (spec.md §7, "Measure
// arithmetic" is not an error class).
type CompareFunc func(x, y hstring.String, opts *Options) float64

// ConfigureFunc adjusts opts in place for the measure it is paired with.
// It is invoked once when the measure becomes active, not once per call.
type ConfigureFunc func(opts *Options)

// Entry is one registered measure: its name, an optional Configure hook,
// and its Compare body. Entries are registered once at startup and are
// never mutated afterward.
type Entry struct {
	Name      string
	Configure ConfigureFunc
	Compare   CompareFunc
}
