// Package neighborhood implements the second sampling level of the
// distance oracle: drawing the center set S with per-vertex probability
// p₂ = n^(-2/3) and materializing each center's ball — the vertices
// strictly closer to the center than the center's nearest landmark.
//
// What
//
//   - SampleCenters(g, p, seed) draws an independent Bernoulli(p) per
//     vertex in index order; an empty S is legal.
//   - ComputeBalls derives each center's cover radius
//     r(c) = min_ℓ dL(ℓ,c) and collects B(c) = {v : d(c,v) < r(c)}
//     with a BFS pruned at depth r(c) — once the frontier reaches
//     distance r(c), no further vertex can qualify. This pruning is the
//     space-bounding invariant: expected |B(c)| is O(n^(2/3)).
//   - A center that is itself a landmark has r(c)=0 and an empty ball.
//
// Determinism
//
//	One RNG draw per vertex in index order; balls are sorted ascending
//	and keyed by center, so the ball map depends only on (g, dL, p, seed).
//
// Complexity (V, E as usual, S = |centers|)
//
//   - SampleCenters: O(V) draws.
//   - ComputeBalls: one pruned BFS per center; worst case O(S·(V+E)).
//
// Errors
//
//   - ErrInvalidProbability  p outside [0,1]; p = 0 is legal and draws
//     nothing, since an empty center set only disables the exact branch.
//   - context errors from a cancelled ComputeBalls.
package neighborhood
