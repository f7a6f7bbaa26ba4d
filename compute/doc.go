// Package compute fills a simmatrix.Matrix in parallel by dispatching every
// (x, y) cell to an active measure.Registry comparison. The fan-out pattern
// is grounded on the persistent worker pool of
// _examples/janpfeifer-go-highway/hwy/contrib/workerpool: workers are
// spawned once for the run and steal work from a flattened, atomically
// advanced index space, adapted here to skip the upper triangle when the
// matrix is triangular. Progress and completion are logged with zerolog, one
// mutex-guarded line per report interval; the critical section never wraps
// the measure call itself (spec.md §5).
package compute
