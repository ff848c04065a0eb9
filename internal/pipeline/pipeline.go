// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"
)

const (
	DefaultThreads   = 4
	DefaultBatchBits = 20
)

// Config controls the scan pool.
type Config struct {
	Threads   int  // number of worker goroutines (0 = DefaultThreads)
	BatchBits uint // log2 of seeds per batch (0 = DefaultBatchBits)
}

func (c Config) normalized() Config {
	if c.Threads < 1 {
		c.Threads = DefaultThreads
	}
	if c.BatchBits == 0 || c.BatchBits > 31 {
		c.BatchBits = DefaultBatchBits
	}
	return c
}

// ScanAll runs every seed in [0, 2^32) through workers made by newWorker.
// Batches are claimed from a shared counter; a worker flushes its previous
// batch while holding the claim lock. progress, if set, also runs under that
// lock, so the values it sees never decrease. It is called with 100 once
// all workers have joined.
//
// Cancellation is checked at batch boundaries; ScanAll returns ctx.Err()
// when the scan was cut short.
func ScanAll(ctx context.Context, cfg Config, newWorker func() Worker, progress func(percent int)) error {
	cfg = cfg.normalized()
	total := uint64(1) << (32 - cfg.BatchBits)
	size := uint64(1) << cfg.BatchBits

	var (
		mu   sync.Mutex
		next uint64
	)
	claim := func(w Worker) (uint64, bool) {
		mu.Lock()
		defer mu.Unlock()
		w.Flush()
		if next >= total || ctx.Err() != nil {
			return 0, false
		}
		b := next
		next++
		if progress != nil {
			progress(int(b * 100 / total))
		}
		return b, true
	}

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for i := 0; i < cfg.Threads; i++ {
		w := newWorker()
		go func() {
			defer wg.Done()
			for {
				b, ok := claim(w)
				if !ok {
					return
				}
				w.Scan(uint32(b*size), uint32(size))
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	if progress != nil {
		progress(100)
	}
	return nil
}
