// Package bfs provides tunable options and error definitions for
// breadth-first distance computation over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Unreached is the distance-vector sentinel for vertices the search did
// not visit, either because of depth pruning or (on a malformed input)
// because they are unreachable.
const Unreached int32 = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when src is not a vertex index.
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when Distances is invoked.
type Option func(*Options)

// Options holds parameters customizing a single BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per frontier.
	Ctx context.Context

	// MaxDepth, if ≥ 0, stops the search before expanding any vertex at
	// distance ≥ MaxDepth: such vertices stay Unreached. A value of -1
	// disables the limit. Note the bound is exclusive, matching the
	// strict inequality of ball membership.
	MaxDepth int32

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no
// depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: NoDepthLimit,
	}
}

// NoDepthLimit disables depth pruning.
const NoDepthLimit int32 = -1

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth prunes the search at the given depth (exclusive):
//
//	d ≥ 0: vertices at distance ≥ d stay Unreached
//	d == NoDepthLimit: explicit no limit
//	d < NoDepthLimit: invalid option → ErrOptionViolation
//
// In particular WithMaxDepth(0) visits nothing, not even the source;
// the ball of a center whose radius is zero is empty.
func WithMaxDepth(d int32) Option {
	return func(o *Options) {
		if d < NoDepthLimit {
			o.err = fmt.Errorf("%w: MaxDepth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
