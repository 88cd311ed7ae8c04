package kdtree

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// KNearestBatch answers KNearest(queries[i], k) for every query, spreading
// the queries over Config.Workers goroutines. The result is identical to
// calling KNearest in a loop. If ctx is cancelled, the queries not yet
// started are skipped and ctx.Err() is returned.
func (t *Tree[P]) KNearestBatch(ctx context.Context, queries []P, k int) ([][]int, error) {
	out := make([][]int, len(queries))
	err := t.forEachQuery(ctx, len(queries), func(i int) {
		out[i] = t.KNearest(queries[i], k)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WithinBatch answers Within(queries[i], r) for every query, spreading the
// queries over Config.Workers goroutines. Cancellation behaves as for
// KNearestBatch.
func (t *Tree[P]) WithinBatch(ctx context.Context, queries []P, r float64) ([][]int, error) {
	out := make([][]int, len(queries))
	err := t.forEachQuery(ctx, len(queries), func(i int) {
		out[i] = t.Within(queries[i], r)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// forEachQuery calls fn(i) for every i in [0, n). Rows are split into
// contiguous ranges, one per worker; since ranges don't overlap, fn may
// write to its own output row without synchronization.
func (t *Tree[P]) forEachQuery(ctx context.Context, n int, fn func(i int)) error {
	workers := 1
	if t != nil {
		workers = t.workers
	}

	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}

		g.Go(func() error {
			for i := startRow; i < endRow; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				fn(i)
			}
			return nil
		})
	}

	return g.Wait()
}
