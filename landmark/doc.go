// Package landmark implements the first sampling level of the distance
// oracle: drawing the landmark set L with per-vertex probability
// p₁ = n^(-1/3) and precomputing BFS distances from every landmark to
// every vertex.
//
// What
//
//   - Sample(g, p, seed) draws an independent Bernoulli(p) per vertex in
//     index order. An empty draw is repeated with the seed incremented,
//     for at most MaxResample attempts in all, before failing with
//     ErrEmptyLandmarkSet.
//   - ComputeDistances runs one BFS per landmark (fanned out across a
//     bounded worker group) and assembles the dense |L|×n row-major
//     distance matrix Table.
//   - Table.NearestTo(v) resolves the nearest landmark of a vertex with
//     smallest-landmark-index tie-breaking, the determinism the query
//     engine depends on.
//
// Determinism
//
//	Exactly one RNG draw is consumed per vertex, in index order, so the
//	same (graph, p, seed) always produce the same L. Rows are
//	written by position, so parallel computation cannot reorder them.
//
// Complexity (V = |vertices|, E = |edges|, L = |landmarks|)
//
//   - Sample: O(V) draws.
//   - ComputeDistances: L BFS traversals, O(L·(V+E)) time, O(L·V) space.
//
// Errors
//
//   - ErrInvalidProbability  p outside (0,1].
//   - ErrEmptyLandmarkSet    no vertex selected after MaxResample tries.
//   - context errors from a cancelled ComputeDistances.
package landmark
