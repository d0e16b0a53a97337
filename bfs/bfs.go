// Package bfs implements breadth-first distance computation over the
// immutable core.Graph store.
package bfs

import (
	"fmt"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
)

// Distances runs breadth-first search on g from src and returns the
// dense distance vector d, where d[v] is the number of edges on a
// shortest src→v path and Unreached marks vertices the search never
// visited (pruned by WithMaxDepth, or unreachable).
//
// The frontier is processed level by level; cancellation is checked
// once per level, so a cancelled context aborts between BFS levels.
func Distances(g *core.Graph, src int32, opts ...Option) ([]int32, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NumVertices()
	if src < 0 || int(src) >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrSourceOutOfRange, src, n)
	}

	dist := make([]int32, n)
	for i := range dist {
		dist[i] = Unreached
	}
	if o.MaxDepth == 0 {
		// Exclusive bound: even the source lies at depth ≥ 0.
		return dist, nil
	}

	frontier := make([]int32, 0, 64)
	next := make([]int32, 0, 64)
	dist[src] = 0
	frontier = append(frontier, src)
	var depth int32 = 0

	for len(frontier) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		depth++
		if o.MaxDepth != NoDepthLimit && depth >= o.MaxDepth {
			// Every vertex of the next level would sit at distance
			// ≥ MaxDepth and can never qualify.
			break
		}
		for _, v := range frontier {
			for _, w := range g.Neighbors(v) {
				if dist[w] == Unreached {
					dist[w] = depth
					next = append(next, w)
				}
			}
		}
		frontier, next = next, frontier[:0]
	}
	return dist, nil
}

// MustReach returns dist[v], panicking when v was not reached. A full
// BFS on a connected graph reaches every vertex, so an Unreached read
// here is a programmer error, not a recoverable condition.
func MustReach(dist []int32, v int32) int32 {
	d := dist[v]
	if d == Unreached {
		panic(fmt.Sprintf("bfs: vertex %d unreached on a connected graph", v))
	}
	return d
}
