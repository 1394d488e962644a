// Package batch runs a calculation over many independent items with
// optional bounded concurrency and progress reporting.
//
// The engines themselves are pure and single-threaded; batching lives
// here, outside them, so concurrency never leaks into the computation
// core.
package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Concurrency limits.
const (
	// DefaultConcurrency is used when the caller does not choose one.
	DefaultConcurrency = 4

	// MaxConcurrency caps parallelism to prevent resource exhaustion.
	MaxConcurrency = 32
)

// Common runner errors.
var (
	ErrNoItems            = errors.New("items slice cannot be empty")
	ErrNilItemFunc        = errors.New("item function cannot be nil")
	ErrInvalidConcurrency = errors.New("concurrency must be between 1 and 32")
)

// ItemFunc processes a single item. It receives the item and its index
// in the original slice.
type ItemFunc[T any] func(ctx context.Context, item T, index int) error

// ProgressFunc is invoked after each processed item.
type ProgressFunc func(p *Progress)

// Runner executes an ItemFunc over a slice of items.
type Runner[T any] struct {
	concurrency int
	onProgress  ProgressFunc
}

// NewRunner creates a runner with the given concurrency limit.
func NewRunner[T any](concurrency int) (*Runner[T], error) {
	if concurrency < 1 || concurrency > MaxConcurrency {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, concurrency)
	}
	return &Runner[T]{concurrency: concurrency}, nil
}

// WithProgress sets a progress callback and returns the runner.
func (r *Runner[T]) WithProgress(fn ProgressFunc) *Runner[T] {
	r.onProgress = fn
	return r
}

// Run processes every item sequentially, stopping at the first error or
// context cancellation.
func (r *Runner[T]) Run(ctx context.Context, items []T, fn ItemFunc[T]) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	if fn == nil {
		return ErrNilItemFunc
	}

	progress := NewProgress(len(items))

	for i, item := range items {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := fn(ctx, item, i); err != nil {
			return fmt.Errorf("item %d failed: %w", i, err)
		}

		progress.AddProcessed(1)
		if r.onProgress != nil {
			r.onProgress(progress)
		}
	}

	return nil
}

// RunConcurrent processes items in parallel, bounded by the runner's
// concurrency limit. The first error cancels the remaining work.
func (r *Runner[T]) RunConcurrent(ctx context.Context, items []T, fn ItemFunc[T]) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	if fn == nil {
		return ErrNilItemFunc
	}

	progress := NewProgress(len(items))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			if err := fn(gCtx, item, i); err != nil {
				return fmt.Errorf("item %d failed: %w", i, err)
			}

			progress.AddProcessed(1)
			if r.onProgress != nil {
				r.onProgress(progress)
			}
			return nil
		})
	}

	return g.Wait()
}
