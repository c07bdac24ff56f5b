// Package parallel splits row ranges across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultThreshold is the row count at or below which work runs on the calling goroutine.
const DefaultThreshold = 1024

type config struct {
	workers   int
	threshold int
}

// Option configures Rows.
type Option func(*config)

// WithWorkers caps the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithThreshold sets the sequential cutoff.
func WithThreshold(threshold int) Option {
	return func(c *config) {
		c.threshold = threshold
	}
}

// Rows calls fn over contiguous [start, end) ranges covering [0, items).
// Ranges never overlap, so fn may write to disjoint rows without locking.
// Rows returns after every call has finished.
func Rows(items int, fn func(start, end int), opts ...Option) {
	if items <= 0 {
		return
	}

	cfg := config{workers: runtime.GOMAXPROCS(0), threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	if items <= cfg.threshold || cfg.workers == 1 {
		fn(0, items)
		return
	}

	numWorkers := cfg.workers
	if numWorkers > items {
		numWorkers = items
	}
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}
