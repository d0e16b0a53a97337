package oracle

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/bfs"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/neighborhood"
)

// pairKey packs an unordered index pair into a map key with u < v.
func pairKey(u, v int32) uint64 {
	if u > v {
		u, v = v, u
	}
	return uint64(uint32(u))<<32 | uint64(uint32(v))
}

// buildExact populates the exact-distance table: for every unordered
// pair of centers (c₁,c₂) whose balls intersect — a ball intersects
// itself whenever it is non-empty — every u∈B(c₁), v∈B(c₂), u≠v, is
// recorded with its true distance.
//
// Distances come from one BFS per distinct source vertex in the union
// of covered balls, not one per pair: each source is paired against
// every opposite ball it participates in, and the BFS runs fan out over
// a bounded worker group, each writing its own entry slice.
func buildExact(ctx context.Context, g *core.Graph, balls *neighborhood.BallMap, parallelism int) (map[uint64]int32, error) {
	centers := balls.Centers()

	// Covered relations: each non-empty ball against itself, then
	// intersecting distinct pairs in ascending center order.
	type relation struct{ from, to []int32 }
	var relations []relation
	for i, c1 := range centers {
		b1, _ := balls.Ball(c1)
		if len(b1) == 0 {
			continue
		}
		relations = append(relations, relation{b1, b1})
		for _, c2 := range centers[i+1:] {
			b2, _ := balls.Ball(c2)
			if sortedIntersect(b1, b2) {
				relations = append(relations, relation{b1, b2})
			}
		}
	}

	// Group targets by source: BFS once per distinct u, read every v.
	targets := make(map[int32][][]int32)
	for _, rel := range relations {
		for _, u := range rel.from {
			targets[u] = append(targets[u], rel.to)
		}
	}
	sources := make([]int32, 0, len(targets))
	for u := range targets {
		sources = append(sources, u)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	type entry struct {
		key uint64
		d   int32
	}
	results := make([][]entry, len(sources))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)
	for i, u := range sources {
		i, u := i, u
		eg.Go(func() error {
			dist, err := bfs.Distances(g, u, bfs.WithContext(ctx))
			if err != nil {
				return err
			}
			var out []entry
			for _, ball := range targets[u] {
				for _, v := range ball {
					if v == u {
						continue
					}
					out = append(out, entry{pairKey(u, v), bfs.MustReach(dist, v)})
				}
			}
			results[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	exact := make(map[uint64]int32)
	for _, out := range results {
		for _, e := range out {
			exact[e.key] = e.d
		}
	}
	return exact, nil
}

// sortedIntersect reports whether two ascending slices share a member.
func sortedIntersect(a, b []int32) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}
