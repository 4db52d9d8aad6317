// Package dispatch runs independent per-sample work across a bounded
// worker pool with fail-fast semantics.
package dispatch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Map invokes fn for every index in [0, n), at most workers at a time
// (workers <= 0 means GOMAXPROCS). fn receives its sample index and
// writes its result into caller-owned storage slotted by that index,
// so completion order never affects output order.
//
// The first error cancels the group context and is returned after all
// in-flight calls have finished; no partial success is reported.
func Map(ctx context.Context, n, workers int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			// Skip queued work once a sibling has failed.
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
