package gen

import (
	"errors"
	"fmt"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
)

// Sentinel errors for generator validation.
var (
	// ErrTooFewVertices indicates a size parameter below the minimum
	// for the requested constructor.
	ErrTooFewVertices = errors.New("gen: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("gen: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without an RNG (use WithSeed or WithRand).
	ErrNeedRandSource = errors.New("gen: rng is required")

	// ErrConstructFailed indicates Build received a nil constructor.
	ErrConstructFailed = errors.New("gen: construction failed")
)

// Constructor appends one topology's edges to the stream. Constructors
// validate parameters early and return sentinel errors; they never
// panic at runtime.
type Constructor func(s *stream, cfg *config) error

// stream accumulates the edge output of applied constructors.
type stream struct {
	edges []core.Edge
}

func (s *stream) add(u, v string) {
	s.edges = append(s.edges, core.Edge{U: u, V: v})
}

// Build resolves opts into a config and applies all constructors in
// order, returning the concatenated edge stream. Any constructor error
// is wrapped and returned immediately.
func Build(opts []Option, cons ...Constructor) ([]core.Edge, error) {
	cfg := newConfig(opts...)
	s := &stream{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return s.edges, nil
}

// Path builds a simple path P_n: 0–1–2–…–(n-1), n ≥ 2.
// Edge order: (0,1), (1,2), …
func Path(n int) Constructor {
	return func(s *stream, cfg *config) error {
		if n < 2 {
			return fmt.Errorf("Path: n=%d < 2: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			s.add(cfg.idFn(i), cfg.idFn(i+1))
		}
		return nil
	}
}

// Cycle builds a simple cycle C_n, n ≥ 3.
// Edge order: (0,1), …, (n-2,n-1), (n-1,0).
func Cycle(n int) Constructor {
	return func(s *stream, cfg *config) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			s.add(cfg.idFn(i), cfg.idFn(i+1))
		}
		s.add(cfg.idFn(n-1), cfg.idFn(0))
		return nil
	}
}

// Star builds a star with center "Center" and n-1 leaves, n ≥ 2.
// Leaves take IDs 0..n-2 through the configured IDFn.
func Star(n int) Constructor {
	return func(s *stream, cfg *config) error {
		if n < 2 {
			return fmt.Errorf("Star: n=%d < 2: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			s.add(StarCenterID, cfg.idFn(i))
		}
		return nil
	}
}

// StarCenterID is the fixed token of the star hub vertex.
const StarCenterID = "Center"

// Complete builds the complete simple graph K_n, n ≥ 2.
// Edge order: for each i asc, j in (i, n).
func Complete(n int) Constructor {
	return func(s *stream, cfg *config) error {
		if n < 2 {
			return fmt.Errorf("Complete: n=%d < 2: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.add(cfg.idFn(i), cfg.idFn(j))
			}
		}
		return nil
	}
}

// Grid builds an R×C 4-neighborhood grid with tokens "r,c" (row-major),
// R ≥ 1, C ≥ 1, R·C ≥ 2.
func Grid(rows, cols int) Constructor {
	return func(s *stream, cfg *config) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.add(id(r, c), id(r, c+1))
				}
				if r+1 < rows {
					s.add(id(r, c), id(r+1, c))
				}
			}
		}
		return nil
	}
}

// RandomSparse samples an Erdős–Rényi-like graph over n vertices with
// independent edge probability p, then threads a deterministic path
// through all vertices so the result is connected and usable by
// core.Build. Trial order: for each i asc, j in (i+1, n).
//
// Contract: n ≥ 2; p ∈ [0,1]; cfg.rng non-nil when 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(s *stream, cfg *config) error {
		if n < 2 {
			return fmt.Errorf("RandomSparse: n=%d < 2: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		// Connecting spine first keeps vertex interning order stable
		// regardless of which random edges fire.
		for i := 0; i < n-1; i++ {
			s.add(cfg.idFn(i), cfg.idFn(i+1))
		}
		if p == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if j == i+1 {
					continue // spine edge already present
				}
				if p == 1 || cfg.rng.Float64() < p {
					s.add(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}
		return nil
	}
}
