// Package gen provides deterministic graph generators producing edge
// streams for core.Build: fixture topologies for tests and benchmarks,
// and Erdős–Rényi-style random graphs for experiments.
//
// What
//
//   - Topology factories return Constructor closures: Path, Cycle, Star,
//     Complete, Grid, RandomSparse.
//   - Build(opts, cons...) resolves functional options into a config and
//     applies the constructors in order, concatenating their edges.
//   - WithSeed freezes stochastic constructors; the same seed and
//     constructor order yield the identical edge stream.
//
// Determinism
//
//	Vertices are numbered 0..n-1 per constructor and rendered through a
//	configurable IDFn, except that Grid uses fixed "r,c" tokens and Star
//	names its hub StarCenterID (its leaves are 0..n-2); edges are emitted in a stable documented order,
//	so the interning order of the resulting core.Graph is reproducible.
//
// Errors
//
//   - ErrTooFewVertices     parameter below the constructor's minimum.
//   - ErrInvalidProbability probability outside [0,1].
//   - ErrNeedRandSource     stochastic constructor without an RNG.
//   - ErrConstructFailed    nil constructor supplied to Build.
package gen
