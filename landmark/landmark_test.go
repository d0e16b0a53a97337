package landmark_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/gen"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/landmark"
)

func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	edges, err := gen.Build(nil, gen.Path(n))
	require.NoError(t, err)
	g, err := core.Build(edges)
	require.NoError(t, err)
	return g
}

func TestSample_InvalidProbability(t *testing.T) {
	g := pathGraph(t, 4)
	for _, p := range []float64{0, -0.5, 1.5} {
		_, err := landmark.Sample(g, p, 1)
		assert.ErrorIs(t, err, landmark.ErrInvalidProbability, "p=%v", p)
	}
}

func TestSample_AllWithProbabilityOne(t *testing.T) {
	g := pathGraph(t, 6)
	l, err := landmark.Sample(g, 1.0, 99)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5}, l)
}

func TestSample_DeterministicForSeed(t *testing.T) {
	g := pathGraph(t, 200)
	one, err := landmark.Sample(g, 0.3, 7)
	require.NoError(t, err)
	two, err := landmark.Sample(g, 0.3, 7)
	require.NoError(t, err)
	assert.Equal(t, one, two)
	assert.NotEmpty(t, one)
}

func TestSample_IndicesAscending(t *testing.T) {
	g := pathGraph(t, 150)
	l, err := landmark.Sample(g, 0.4, 3)
	require.NoError(t, err)
	for i := 1; i < len(l); i++ {
		assert.Less(t, l[i-1], l[i])
	}
}

func TestSample_RetriesOnEmptyDraw(t *testing.T) {
	// A vanishing probability exhausts all MaxResample attempts.
	g := pathGraph(t, 2)
	_, err := landmark.Sample(g, 1e-12, 5)
	assert.ErrorIs(t, err, landmark.ErrEmptyLandmarkSet)
}

func TestDefaultP(t *testing.T) {
	assert.Equal(t, 1.0, landmark.DefaultP(1))
	assert.InDelta(t, 0.1, landmark.DefaultP(1000), 1e-12)
}

func TestComputeDistances_PathGraph(t *testing.T) {
	g := pathGraph(t, 5)
	tbl, err := landmark.ComputeDistances(context.Background(), g, []int32{0, 4}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	// Row 0 is landmark 0, row 1 is landmark 4.
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, tbl.Row(0))
	assert.Equal(t, []int32{4, 3, 2, 1, 0}, tbl.Row(1))
	assert.Equal(t, int32(3), tbl.Dist(0, 3))
	assert.Equal(t, int32(4), tbl.Landmark(1))
}

func TestComputeDistances_NearestTieBreaksLow(t *testing.T) {
	g := pathGraph(t, 5)
	tbl, err := landmark.ComputeDistances(context.Background(), g, []int32{0, 4}, 1)
	require.NoError(t, err)
	// Vertex 2 is equidistant from both landmarks; the smaller landmark
	// index (row 0) must win.
	li, d := tbl.NearestTo(2)
	assert.Equal(t, 0, li)
	assert.Equal(t, int32(2), d)

	li, d = tbl.NearestTo(3)
	assert.Equal(t, 1, li)
	assert.Equal(t, int32(1), d)
}

func TestComputeDistances_Cancelled(t *testing.T) {
	g := pathGraph(t, 64)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := landmark.ComputeDistances(ctx, g, []int32{0, 10, 20}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
