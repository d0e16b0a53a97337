package oracle

import (
	"context"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/landmark"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/neighborhood"
)

// Oracle is the built two-level distance oracle. All state is immutable
// after Build; queries are read-only and safe for concurrent use.
type Oracle struct {
	g     *core.Graph
	lt    *landmark.Table
	balls *neighborhood.BallMap
	exact map[uint64]int32
}

// Build constructs the oracle over a connected graph: landmarks and
// centers are sampled first, then the landmark distance table, the
// balls and the exact-distance table are computed in that order. The
// pipeline is cancelable at BFS boundaries
// through WithContext; a cancelled build returns the context error and
// no oracle.
func Build(g *core.Graph, opts ...Option) (*Oracle, error) {
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
	p1, p2 := o.P1, o.P2
	if p1 < 0 {
		p1 = landmark.DefaultP(n)
	}
	if p2 < 0 {
		p2 = neighborhood.DefaultP(n)
	}

	// Two independent reproducible streams derived from one seed.
	landmarkSeed := int64(o.Seed)
	centerSeed := int64(o.Seed ^ centerSeedTag)

	landmarks, err := landmark.Sample(g, p1, landmarkSeed)
	if err != nil {
		return nil, err
	}
	centers, err := neighborhood.SampleCenters(g, p2, centerSeed)
	if err != nil {
		return nil, err
	}
	return assemble(o.Ctx, g, landmarks, centers, o.Parallelism)
}

// assemble runs the deterministic tail of the pipeline over fixed
// landmark and center sets: distance table, balls, exact table.
func assemble(ctx context.Context, g *core.Graph, landmarks, centers []int32, parallelism int) (*Oracle, error) {
	lt, err := landmark.ComputeDistances(ctx, g, landmarks, parallelism)
	if err != nil {
		return nil, err
	}
	balls, err := neighborhood.ComputeBalls(ctx, g, centers, lt, parallelism)
	if err != nil {
		return nil, err
	}
	exact, err := buildExact(ctx, g, balls, parallelism)
	if err != nil {
		return nil, err
	}
	return &Oracle{g: g, lt: lt, balls: balls, exact: exact}, nil
}

// Graph returns the underlying graph store.
func (o *Oracle) Graph() *core.Graph { return o.g }

// Landmarks returns the landmark tokens in ascending index order.
func (o *Oracle) Landmarks() []string {
	ls := o.lt.Landmarks()
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = o.g.TokenOf(l)
	}
	return out
}

// Centers returns the center tokens in ascending index order.
func (o *Oracle) Centers() []string {
	cs := o.balls.Centers()
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = o.g.TokenOf(c)
	}
	return out
}

// Ball returns the tokens of B(c) for the center token c, sorted by
// vertex index. It fails with ErrUnknownVertex for tokens outside the
// graph and ErrNotACenter for vertices outside S.
func (o *Oracle) Ball(c string) ([]string, error) {
	ci, ok := o.g.IndexOf(c)
	if !ok {
		return nil, unknownVertex(c)
	}
	members, ok := o.balls.Ball(ci)
	if !ok {
		return nil, notACenter(c)
	}
	out := make([]string, len(members))
	for i, v := range members {
		out[i] = o.g.TokenOf(v)
	}
	return out, nil
}

// ExactPairCount reports how many unordered pairs the exact table holds.
func (o *Oracle) ExactPairCount() int { return len(o.exact) }
