package measure

import (
	"fmt"

	"github.com/go-harry/harry/hstring"
)

// DefaultMeasure is the documented fallback used when Configure is given
// an unknown name, per spec.md §4.E.
const DefaultMeasure = "levenshtein"

// defaultEntries holds every built-in measure, populated by the register
// calls in the init() functions of edit_distance.go, alignment.go,
// coefficients.go, kernels.go, and dtw_measure.go. It is the single source of truth every
// new Registry copies from, keeping entries immutable after registration
// as spec.md §3's MeasureEntry requires.
var defaultEntries = map[string]Entry{}

// register adds an Entry to defaultEntries. Called only from package
// init() functions; panics on a duplicate name since that is a programmer
// error caught at build/test time, never at runtime from user input.
func register(e Entry) {
	if _, exists := defaultEntries[e.Name]; exists {
		panic(fmt.Sprintf("measure: duplicate registration for %q", e.Name))
	}
	defaultEntries[e.Name] = e
}

// Registry is a name→Entry dispatch table with one active measure.
// Registry is not safe for concurrent Configure calls, mirroring
// spec.md §5's "DelimiterTable is process-wide... concurrent [mutation]
// is forbidden" — construct one Registry per goroutine that needs to
// switch measures, or configure once before fanning out compute workers.
type Registry struct {
	entries map[string]Entry
	active  Entry
	opts    Options
}

// New returns a Registry preloaded with every built-in measure and
// DefaultMeasure active.
func New() *Registry {
	r := &Registry{
		entries: make(map[string]Entry, len(defaultEntries)),
		opts:    DefaultOptions(),
	}
	for name, e := range defaultEntries {
		r.entries[name] = e
	}
	r.active = r.entries[DefaultMeasure]

	return r
}

// Configure selects name as the active measure and invokes its Configure
// hook. An unknown name falls back to DefaultMeasure and returns
// ErrUnknownMeasure wrapped with the attempted name — a Usage-class
// warning per spec.md §7, not fatal.
func (r *Registry) Configure(name string) error {
	e, ok := r.entries[name]
	if !ok {
		r.active = r.entries[DefaultMeasure]
		if cfg := r.active.Configure; cfg != nil {
			cfg(&r.opts)
		}

		return fmt.Errorf("%w: %q, falling back to %q", ErrUnknownMeasure, name, DefaultMeasure)
	}

	r.active = e
	if e.Configure != nil {
		e.Configure(&r.opts)
	}

	return nil
}

// Active returns the name of the currently selected measure.
func (r *Registry) Active() string {
	return r.active.Name
}

// Options returns a copy of the registry's current configuration, for
// callers (tests, CLI help text) that want to inspect effective defaults.
func (r *Registry) Options() Options {
	return r.opts
}

// SetOptions replaces the registry's configuration wholesale. Useful when
// CLI flags set thresholds/costs before Configure runs its per-measure
// defaulting pass.
func (r *Registry) SetOptions(opts Options) {
	r.opts = opts
}

// Compare invokes the active measure's Compare function on x and y.
func (r *Registry) Compare(x, y hstring.String) float64 {
	return r.active.Compare(x, y, &r.opts)
}

// Names returns every registered measure name, for CLI help text.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}

	return names
}
