package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunner(t *testing.T) {
	tests := []struct {
		name        string
		concurrency int
		wantErr     bool
	}{
		{name: "minimum", concurrency: 1},
		{name: "default", concurrency: DefaultConcurrency},
		{name: "maximum", concurrency: MaxConcurrency},
		{name: "zero rejected", concurrency: 0, wantErr: true},
		{name: "negative rejected", concurrency: -1, wantErr: true},
		{name: "above maximum rejected", concurrency: MaxConcurrency + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRunner[int](tt.concurrency)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConcurrency)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestRunSequential(t *testing.T) {
	r, err := NewRunner[int](1)
	require.NoError(t, err)

	var seen []int
	err = r.Run(context.Background(), []int{10, 20, 30}, func(_ context.Context, item, index int) error {
		seen = append(seen, item)
		assert.Equal(t, item/10-1, index)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, seen)
}

func TestRunStopsOnFirstError(t *testing.T) {
	r, err := NewRunner[int](1)
	require.NoError(t, err)

	boom := errors.New("boom")
	var calls int
	err = r.Run(context.Background(), []int{1, 2, 3}, func(_ context.Context, item, _ int) error {
		calls++
		if item == 2 {
			return boom
		}
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls, "processing stops at the failing item")
}

func TestRunValidation(t *testing.T) {
	r, err := NewRunner[string](2)
	require.NoError(t, err)

	err = r.Run(context.Background(), nil, func(_ context.Context, _ string, _ int) error { return nil })
	assert.ErrorIs(t, err, ErrNoItems)

	err = r.Run(context.Background(), []string{"a"}, nil)
	assert.ErrorIs(t, err, ErrNilItemFunc)
}

func TestRunConcurrent(t *testing.T) {
	r, err := NewRunner[int](4)
	require.NoError(t, err)

	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	var sum atomic.Int64
	err = r.RunConcurrent(context.Background(), items, func(_ context.Context, item, _ int) error {
		sum.Add(int64(item))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99*100/2), sum.Load())
}

func TestRunConcurrentPropagatesError(t *testing.T) {
	r, err := NewRunner[int](2)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = r.RunConcurrent(context.Background(), []int{1, 2, 3, 4}, func(_ context.Context, item, _ int) error {
		if item == 3 {
			return boom
		}
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRunRespectsCancellation(t *testing.T) {
	r, err := NewRunner[int](1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	var calls int
	err = r.Run(ctx, []int{1, 2, 3}, func(_ context.Context, _, _ int) error {
		calls++
		cancel()
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestProgressTracking(t *testing.T) {
	r, err := NewRunner[int](1)
	require.NoError(t, err)

	var updates []float64
	r.WithProgress(func(p *Progress) {
		updates = append(updates, p.PercentComplete())
	})

	err = r.Run(context.Background(), []int{1, 2, 3, 4}, func(_ context.Context, _, _ int) error {
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{25, 50, 75, 100}, updates)
}

func TestProgressZeroTotal(t *testing.T) {
	p := NewProgress(0)
	assert.Zero(t, p.PercentComplete())
	assert.True(t, p.IsComplete())
}

func TestProgressAccounting(t *testing.T) {
	p := NewProgress(10)
	assert.Equal(t, 10, p.Total())
	assert.False(t, p.IsComplete())

	p.AddProcessed(4)
	assert.Equal(t, 4, p.Processed())
	assert.InDelta(t, 40.0, p.PercentComplete(), 1e-12)

	p.AddProcessed(6)
	assert.True(t, p.IsComplete())
	assert.GreaterOrEqual(t, p.Elapsed().Nanoseconds(), int64(0))
}
