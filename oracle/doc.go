// Package oracle composes the graph store, BFS engine, landmark and
// neighborhood samplers into the two-level approximate distance oracle,
// and answers (s,t) distance queries.
//
// What
//
//   - Build(g, opts...) runs the full pipeline: sample landmarks and
//     centers → landmark distance table → balls → exact-distance table. Options inject the seed, probability overrides for small
//     graphs, a cancellation context, and the build parallelism.
//   - Query(s, t) returns 0 for s=t, the precomputed exact distance
//     when the pair is covered by intersecting balls, and otherwise the
//     landmark route dL(ℓs,s) + dL(ℓs,ℓt) + dL(ℓt,t) — an upper bound
//     on the true distance, tight whenever ℓs and ℓt lie on a shortest
//     s–t path.
//
// Exact table
//
//	For every unordered pair of centers (c₁,c₂), including c₁=c₂, whose
//	balls intersect (a single ball "intersects itself" when non-empty),
//	every u∈B(c₁), v∈B(c₂) gets its exact distance recorded. Distances
//	come from one BFS per distinct source vertex in the union of
//	covered balls; the table stores each unordered index pair once,
//	keyed on a packed (u,v) with u<v.
//
// Concurrency
//
//	Build is a sequential pipeline whose BFS loops fan out over a
//	bounded worker group; cancellation lands between BFS runs and
//	discards partial state. After Build the oracle is immutable: any
//	number of concurrent Query calls are safe and lock-free, and query
//	results depend only on (graph, seed, arguments).
//
// Errors
//
//   - ErrGraphNil           Build received a nil graph.
//   - ErrInvalidParameter   probability override outside its domain.
//   - landmark.ErrEmptyLandmarkSet propagated when sampling retries run out.
//   - ErrUnknownVertex      query token absent from the graph.
//   - ErrNotACenter         Ball diagnostic on a non-center token.
package oracle
