package landmark

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
)

// Sentinel errors for landmark sampling.
var (
	// ErrInvalidProbability indicates p outside the half-open interval (0,1].
	ErrInvalidProbability = errors.New("landmark: probability out of range")

	// ErrEmptyLandmarkSet indicates sampling selected no vertex even
	// after MaxResample attempts.
	ErrEmptyLandmarkSet = errors.New("landmark: sampling produced no landmarks")
)

// MaxResample bounds the number of sampling attempts, the first draw
// included; each attempt after the first advances the seed by one.
const MaxResample = 16

// DefaultP returns the level-one sampling probability n^(-1/3),
// clamped to 1 for n ≤ 1.
func DefaultP(n int) float64 {
	if n <= 1 {
		return 1
	}
	return math.Pow(float64(n), -1.0/3.0)
}

// Sample draws the landmark set by an independent Bernoulli(p) trial per
// vertex, in index order, from a rand source seeded with seed. If the
// draw is empty the seed is incremented and the draw repeated, up to
// MaxResample attempts; a still-empty result fails with
// ErrEmptyLandmarkSet.
//
// Exactly one Float64 is consumed per vertex per attempt, so the result
// depends only on (g, p, seed). The returned indices are ascending.
func Sample(g *core.Graph, p float64, seed int64) ([]int32, error) {
	if p <= 0 || p > 1 {
		return nil, fmt.Errorf("%w: p1=%v", ErrInvalidProbability, p)
	}
	n := g.NumVertices()
	for attempt := int64(0); attempt < MaxResample; attempt++ {
		rng := rand.New(rand.NewSource(seed + attempt))
		selected := make([]int32, 0, expected(n, p))
		for v := 0; v < n; v++ {
			if rng.Float64() < p {
				selected = append(selected, int32(v))
			}
		}
		if len(selected) > 0 {
			return selected, nil
		}
	}
	return nil, fmt.Errorf("%w: p1=%v after %d attempts", ErrEmptyLandmarkSet, p, MaxResample)
}

// expected sizes the selection buffer at n·p with a small floor.
func expected(n int, p float64) int {
	e := int(float64(n) * p)
	if e < 4 {
		e = 4
	}
	return e
}
