package topocore

import "context"

// RadiusQuery returns the indices of every point within radius (inclusive)
// of center, per §4.7. A brute-force O(n*d) scan is the reference
// implementation (§4.6). Membership is computed into a boolean mask in
// parallel — disjoint index ranges per worker need no synchronization —
// then collected into ascending-index order sequentially, which is simpler
// than merging per-worker slices and keeps the result order stable within
// one invocation regardless of goroutine scheduling.
func RadiusQuery(ctx context.Context, points *PointMatrix, center []float64, radius float64, workers int) ([]int32, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	radiusSq := radius * radius
	n := points.N
	within := make([]bool, n)

	parallelFor(n, workers, func(start, end int) {
		for i := start; i < end; i++ {
			within[i] = euclideanSumOfSquares(center, points.Row(i)) <= radiusSq
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	out := make([]int32, 0)
	for i := 0; i < n; i++ {
		if within[i] {
			out = append(out, int32(i))
		}
	}
	return out, nil
}
