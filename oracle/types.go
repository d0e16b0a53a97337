// Package oracle options and error definitions.
package oracle

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for building and querying the oracle.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to Build.
	ErrGraphNil = errors.New("oracle: graph is nil")

	// ErrInvalidParameter indicates a probability override outside its
	// domain: p1 must lie in (0,1], p2 in [0,1].
	ErrInvalidParameter = errors.New("oracle: invalid parameter")

	// ErrUnknownVertex indicates a query token with no index in the graph.
	ErrUnknownVertex = errors.New("oracle: unknown vertex")

	// ErrNotACenter indicates a Ball diagnostic on a token outside S.
	ErrNotACenter = errors.New("oracle: not a center")
)

// centerSeedTag separates the center RNG stream from the landmark
// stream so the two sampling levels draw independently from one seed.
const centerSeedTag = 0x9E3779B97F4A7C15

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds the resolved build parameters.
type Options struct {
	// Ctx cancels the build between BFS runs.
	Ctx context.Context

	// Seed drives both sampling levels; the same (graph, Seed,
	// overrides) always produce the identical oracle.
	Seed uint64

	// P1, P2 override the sampling probabilities n^(-1/3) and n^(-2/3).
	// Negative values (the default) select the formula. Overrides exist
	// for testing at small n, where the formulas sample nothing useful.
	P1, P2 float64

	// Parallelism bounds the BFS worker group; ≤ 0 means GOMAXPROCS.
	Parallelism int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, seed 0,
// formula-driven probabilities, and GOMAXPROCS parallelism.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
		P1:  -1,
		P2:  -1,
	}
}

// WithContext sets a custom context for build cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed fixes the sampling seed for reproducible builds.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithP1 overrides the landmark probability; p must lie in (0,1].
func WithP1(p float64) Option {
	return func(o *Options) {
		if p <= 0 || p > 1 {
			o.err = fmt.Errorf("%w: p1=%v not in (0,1]", ErrInvalidParameter, p)
			return
		}
		o.P1 = p
	}
}

// WithP2 overrides the center probability; p must lie in [0,1].
// Zero is legal: it produces no centers and leaves the exact table
// empty, which only disables the exact branch.
func WithP2(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: p2=%v not in [0,1]", ErrInvalidParameter, p)
			return
		}
		o.P2 = p
	}
}

// WithParallelism bounds the number of concurrent BFS traversals
// during build. Values ≤ 0 select GOMAXPROCS.
func WithParallelism(workers int) Option {
	return func(o *Options) { o.Parallelism = workers }
}
