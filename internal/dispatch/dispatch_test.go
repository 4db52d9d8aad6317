package dispatch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFillsSlotsByIndex(t *testing.T) {
	for _, workers := range []int{1, 4, 0} {
		results := make([]int, 64)
		err := Map(context.Background(), len(results), workers, func(_ context.Context, i int) error {
			results[i] = i * i
			return nil
		})
		require.NoError(t, err)
		for i, got := range results {
			assert.Equal(t, i*i, got, "workers=%d", workers)
		}
	}
}

func TestMapSerialMatchesParallel(t *testing.T) {
	run := func(workers int) []int {
		out := make([]int, 32)
		err := Map(context.Background(), len(out), workers, func(_ context.Context, i int) error {
			out[i] = 3*i + 1
			return nil
		})
		require.NoError(t, err)
		return out
	}
	assert.Equal(t, run(1), run(8))
}

func TestMapFailFast(t *testing.T) {
	boom := errors.New("boom")
	var started atomic.Int64

	err := Map(context.Background(), 100, 2, func(ctx context.Context, i int) error {
		started.Add(1)
		if i == 3 {
			return boom
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Millisecond):
			return nil
		}
	})
	assert.ErrorIs(t, err, boom)
	// Queued work behind the failure is skipped once the group
	// context is cancelled.
	assert.Less(t, started.Load(), int64(100))
}

func TestMapContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Map(ctx, 10, 2, func(ctx context.Context, i int) error {
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMapZeroWork(t *testing.T) {
	called := false
	err := Map(context.Background(), 0, 4, func(_ context.Context, _ int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}
