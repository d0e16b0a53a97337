package neighborhood

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/bfs"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/landmark"
)

// BallMap holds, for each center, its cover radius and ball. Immutable
// after ComputeBalls; safe for concurrent reads.
type BallMap struct {
	centers []int32           // ascending vertex indices of S
	radius  map[int32]int32   // center → r(c) = min_ℓ dL(ℓ,c)
	balls   map[int32][]int32 // center → sorted members of B(c)
}

// ComputeBalls materializes the ball of every center: the cover radius
// r(c) is the distance from c to its nearest landmark, and
// B(c) = {v : d(c,v) < r(c)}, collected by a BFS pruned at depth r(c).
// A center with r(c)=0 (the center is itself a landmark) has an empty
// ball. The per-center traversals run on at most parallelism goroutines
// (≤ 0 means GOMAXPROCS); each writes only its own slot of a results
// slice, which is copied into the map after all traversals finish, so
// no locking is needed. Cancellation discards the map.
func ComputeBalls(ctx context.Context, g *core.Graph, centers []int32, lt *landmark.Table, parallelism int) (*BallMap, error) {
	bm := &BallMap{
		centers: append([]int32(nil), centers...),
		radius:  make(map[int32]int32, len(centers)),
		balls:   make(map[int32][]int32, len(centers)),
	}
	for _, c := range bm.centers {
		_, r := lt.NearestTo(c)
		bm.radius[c] = r
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	results := make([][]int32, len(bm.centers))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)
	for i, c := range bm.centers {
		i, c := i, c
		eg.Go(func() error {
			r := bm.radius[c]
			if r == 0 {
				return nil
			}
			dist, err := bfs.Distances(g, c, bfs.WithContext(ctx), bfs.WithMaxDepth(r))
			if err != nil {
				return err
			}
			var ball []int32
			for v, d := range dist {
				if d != bfs.Unreached && d < r {
					ball = append(ball, int32(v))
				}
			}
			results[i] = ball
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	for i, c := range bm.centers {
		bm.balls[c] = results[i]
	}
	return bm, nil
}

// Centers returns the center vertex indices in ascending order. The
// slice aliases internal storage and must not be modified.
func (b *BallMap) Centers() []int32 { return b.centers }

// Radius returns r(c) and whether c is a center.
func (b *BallMap) Radius(c int32) (int32, bool) {
	r, ok := b.radius[c]
	return r, ok
}

// Ball returns the sorted members of B(c) and whether c is a center.
// The slice aliases internal storage and must not be modified.
func (b *BallMap) Ball(c int32) ([]int32, bool) {
	if _, ok := b.radius[c]; !ok {
		return nil, false
	}
	return b.balls[c], true
}
