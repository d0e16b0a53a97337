package landmark

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/bfs"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
)

// Table is the dense landmark distance matrix dL: row i holds the BFS
// distances of landmark i (in ascending landmark order) to every
// vertex. Immutable after ComputeDistances; safe for concurrent reads.
type Table struct {
	landmarks []int32 // ascending vertex indices of L
	n         int     // number of vertices
	dist      []int32 // row-major |L|×n
}

// ComputeDistances runs one full BFS per landmark and assembles the
// distance matrix. The traversals are fanned out across at most
// parallelism goroutines (≤ 0 means GOMAXPROCS); each goroutine writes
// only its own row, so no further synchronization is needed.
// Cancellation aborts between BFS levels and discards the table.
//
// A landmark row missing any vertex on a connected graph is a
// structural impossibility and panics via bfs.MustReach.
func ComputeDistances(ctx context.Context, g *core.Graph, landmarks []int32, parallelism int) (*Table, error) {
	n := g.NumVertices()
	t := &Table{
		landmarks: append([]int32(nil), landmarks...),
		n:         n,
		dist:      make([]int32, len(landmarks)*n),
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)
	for i, l := range t.landmarks {
		row := t.dist[i*n : (i+1)*n]
		src := l
		eg.Go(func() error {
			d, err := bfs.Distances(g, src, bfs.WithContext(ctx))
			if err != nil {
				return err
			}
			for v := range d {
				row[v] = bfs.MustReach(d, int32(v))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}

// Len returns |L|.
func (t *Table) Len() int { return len(t.landmarks) }

// Landmarks returns the landmark vertex indices in row order. The slice
// aliases internal storage and must not be modified.
func (t *Table) Landmarks() []int32 { return t.landmarks }

// Landmark returns the vertex index of the landmark at row li.
func (t *Table) Landmark(li int) int32 { return t.landmarks[li] }

// Dist returns dL(ℓ, v) for the landmark at row li.
// Complexity: O(1).
func (t *Table) Dist(li int, v int32) int32 {
	return t.dist[li*t.n+int(v)]
}

// Row returns the full distance vector of the landmark at row li. The
// slice aliases internal storage and must not be modified.
func (t *Table) Row(li int) []int32 {
	return t.dist[li*t.n : (li+1)*t.n]
}

// NearestTo returns the row position and distance of the landmark
// closest to v. Ties break toward the smallest landmark index, which is
// the smallest row position since rows are in ascending landmark order.
// Complexity: O(|L|).
func (t *Table) NearestTo(v int32) (li int, d int32) {
	li, d = 0, t.Dist(0, v)
	for i := 1; i < len(t.landmarks); i++ {
		if dd := t.Dist(i, v); dd < d {
			li, d = i, dd
		}
	}
	return li, d
}
