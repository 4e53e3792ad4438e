package arrayx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many elements a chunk scans between context checks.
const cancelCheckInterval = 1024

var errAccessorPanic = errors.New("accessor panicked")

// Finder scans large slices in contiguous chunks on a bounded set of
// goroutines. A Finder is immutable and safe for concurrent use.
type Finder struct {
	workers   int
	chunkSize int
	logger    *Logger
}

// NewFinder creates a Finder.
func NewFinder(optFns ...Option) (*Finder, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, opts.workers)
	}
	if opts.chunkSize < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, opts.chunkSize)
	}

	return &Finder{
		workers:   opts.workers,
		chunkSize: opts.chunkSize,
		logger:    opts.logger,
	}, nil
}

// Workers returns the configured concurrency limit.
func (f *Finder) Workers() int { return f.workers }

// ChunkSize returns the configured chunk size.
func (f *Finder) ChunkSize() int { return f.chunkSize }

// MinIndexParallel returns the index of the least comparable observed value,
// or -1, scanning chunks of values concurrently. A nil Finder uses the
// defaults and a nil accessor observes the elements themselves.
//
// The accessor runs once per element on worker goroutines, in index order
// only within a chunk, so it must be safe for concurrent use. Chunk winners
// merge in chunk order and ties keep the lowest index. The result matches
// MinIndexFunc whenever observed values are all strings or all numeric.
//
// A cancelled context stops the scan and its error is returned. A panic in
// the accessor is re-raised on the calling goroutine with the original value.
func MinIndexParallel[T any](ctx context.Context, f *Finder, values []T, acc Accessor[T]) (int, error) {
	return scanParallel(ctx, f, "min_index", values, acc, Less)
}

// MaxIndexParallel is the counterpart of MinIndexParallel for the greatest value.
func MaxIndexParallel[T any](ctx context.Context, f *Finder, values []T, acc Accessor[T]) (int, error) {
	return scanParallel(ctx, f, "max_index", values, acc, greater)
}

func scanParallel[T any](ctx context.Context, f *Finder, op string, values []T, acc Accessor[T], better func(a, b any) bool) (int, error) {
	if f == nil {
		var err error
		if f, err = NewFinder(); err != nil {
			return -1, err
		}
	}
	if acc == nil {
		acc = identity[T]
	}

	n := len(values)
	if err := ctx.Err(); err != nil {
		f.logger.LogScan(ctx, op, n, 0, -1, err)
		return -1, err
	}

	if n <= f.chunkSize {
		t := scan(values, acc, better)
		f.logger.LogScan(ctx, op, n, 1, t.index, nil)
		return t.index, nil
	}

	chunks := (n + f.chunkSize - 1) / f.chunkSize
	results := make([]tracker, chunks)

	var (
		panicOnce sync.Once
		panicked  bool
		panicVal  any
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)

	for c := range chunks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					panicOnce.Do(func() {
						panicked = true
						panicVal = r
					})
					err = errAccessorPanic
				}
			}()

			lo := c * f.chunkSize
			hi := min(lo+f.chunkSize, n)

			t := newTracker(better)
			for i := lo; i < hi; i++ {
				if (i-lo)%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				t.observe(i, acc(values[i], i, values))
			}
			results[c] = t
			return nil
		})
	}

	err := g.Wait()
	if panicked {
		panic(panicVal)
	}
	if err == nil {
		// Chunks skipped after cancellation report no error of their own.
		err = ctx.Err()
	}
	if err != nil {
		f.logger.LogScan(ctx, op, n, chunks, -1, err)
		return -1, err
	}

	best := newTracker(better)
	for _, r := range results {
		if r.index >= 0 {
			best.observe(r.index, r.value)
		}
	}

	f.logger.LogScan(ctx, op, n, chunks, best.index, nil)
	return best.index, nil
}
