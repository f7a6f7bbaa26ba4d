package compute

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-harry/harry/hstring"
	"github.com/go-harry/harry/measure"
	"github.com/go-harry/harry/simmatrix"
)

// batchSize bounds how many cells a worker claims per atomic steal; large
// enough to amortize the atomic add, small enough that load imbalance from
// wildly different measure costs (e.g. a short-circuiting Hamming vs. an
// O(n*m) Needleman-Wunsch) stays bounded.
const batchSize = 64

// Run fills m by comparing batch[x] against batch[y] for every (x, y) cell
// m currently addresses, using reg's active measure. batch must be indexed
// by the original Num-space index (m.X/m.Y are offsets into it); it is the
// caller's responsibility to have tokenized batch elements first if the
// active measure requires Tokens form.
//
// The fill is parallelized over a flattened [0, xl*yl) index space decoded
// back to (i, j); when m.Triangular, cells with an absolute y > x are
// skipped since Set(x, y, v) and Set(y, x, v) address the same packed
// slot (spec.md §4.F). Progress is logged via logger at opts.ReportEvery
// cell intervals, throttled additionally by opts.ReportInterval; the log
// line is the fill's only critical section — it never wraps the measure
// call.
func Run(ctx context.Context, m *simmatrix.Matrix, batch []hstring.String, reg *measure.Registry, opts Options, logger zerolog.Logger) (Stats, error) {
	if len(batch) == 0 {
		return Stats{}, ErrNoBatch
	}

	start := time.Now()

	xl, yl := m.X.Len(), m.Y.Len()
	total := xl * yl

	p := newPool(opts.Workers)
	defer p.close()

	var completed atomic.Int64
	var logMu sync.Mutex
	lastReport := start

	var firstErr atomic.Pointer[error]

	p.runBatched(total, batchSize, func(lo, hi int) {
		for idx := lo; idx < hi; idx++ {
			select {
			case <-ctx.Done():
				err := ctx.Err()
				firstErr.CompareAndSwap(nil, &err)
				return
			default:
			}

			i, j := idx/yl, idx%yl
			x, y := m.X.I+i, m.Y.I+j
			if m.Triangular && y > x {
				continue
			}

			v := reg.Compare(batch[x], batch[y])
			if err := m.Set(x, y, v); err != nil {
				firstErr.CompareAndSwap(nil, &err)
				return
			}

			n := completed.Add(1)
			if opts.ReportEvery > 0 && n%opts.ReportEvery == 0 {
				logMu.Lock()
				if time.Since(lastReport) >= opts.ReportInterval {
					logger.Info().
						Int64("cells_done", n).
						Int("cells_total", total).
						Msg("compute progress")
					lastReport = time.Now()
				}
				logMu.Unlock()
			}
		}
	})

	stats := Stats{Cells: int(completed.Load()), Elapsed: time.Since(start)}

	if ep := firstErr.Load(); ep != nil {
		return stats, *ep
	}

	logger.Info().
		Int("cells", stats.Cells).
		Dur("elapsed", stats.Elapsed).
		Msg("compute finished")

	return stats, nil
}
