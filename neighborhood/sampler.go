package neighborhood

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
)

// ErrInvalidProbability indicates p outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("neighborhood: probability out of range")

// DefaultP returns the level-two sampling probability n^(-2/3),
// clamped to 1 for n ≤ 1.
func DefaultP(n int) float64 {
	if n <= 1 {
		return 1
	}
	return math.Pow(float64(n), -2.0/3.0)
}

// SampleCenters draws the center set S by an independent Bernoulli(p)
// trial per vertex, in index order, from a rand source seeded with
// seed. Unlike landmarks, an empty S is legal: it merely leaves the
// exact table empty. p = 0 draws nothing. The returned indices are
// ascending.
func SampleCenters(g *core.Graph, p float64, seed int64) ([]int32, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p2=%v", ErrInvalidProbability, p)
	}
	if p == 0 {
		return nil, nil
	}
	n := g.NumVertices()
	rng := rand.New(rand.NewSource(seed))
	var selected []int32
	for v := 0; v < n; v++ {
		if rng.Float64() < p {
			selected = append(selected, int32(v))
		}
	}
	return selected, nil
}
