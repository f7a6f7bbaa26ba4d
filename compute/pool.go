package compute

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// pool is a persistent worker pool scoped to a single Run call, adapted
// from _examples/janpfeifer-go-highway/hwy/contrib/workerpool: workers are
// spawned once per Run and steal batches of work from an atomically
// advanced cursor (that package's pool is meant to be reused across many
// operations; a Run call computes exactly one matrix, so the pool's
// lifetime here is one Run).
type pool struct {
	numWorkers int
	workC      chan func()
	closeOnce  sync.Once
}

// newPool starts numWorkers persistent goroutines. numWorkers <= 0 falls
// back to runtime.GOMAXPROCS(0).
func newPool(numWorkers int) *pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &pool{
		numWorkers: numWorkers,
		workC:      make(chan func(), numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *pool) worker() {
	for fn := range p.workC {
		fn()
	}
}

// close shuts the pool down once all submitted work has drained. Safe to
// call more than once.
func (p *pool) close() {
	p.closeOnce.Do(func() {
		close(p.workC)
	})
}

// runBatched splits [0, n) into batchSize-sized chunks and hands them to
// the pool via atomic work-stealing, so workers whose batches finish early
// pick up the next unclaimed chunk rather than idling. Blocks until every
// chunk in [0, n) has run fn(start, end) exactly once.
func (p *pool) runBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := p.numWorkers
	if workers > numBatches {
		workers = numBatches
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		p.workC <- func() {
			defer wg.Done()
			for {
				b := nextBatch.Add(1) - 1
				start := int(b) * batchSize
				if start >= n {
					return
				}
				end := start + batchSize
				if end > n {
					end = n
				}
				fn(start, end)
			}
		}
	}

	wg.Wait()
}
