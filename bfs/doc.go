// Package bfs computes single-source unweighted shortest-path distances
// over a core.Graph, producing a dense distance vector indexed by vertex.
//
// What
//
//   - Distances(g, src) returns d[v] = number of edges on a shortest
//     src→v path, with Unreached (-1) for vertices the search never
//     touched.
//   - WithMaxDepth(d) prunes the search: vertices at distance ≥ d are
//     not expanded and stay Unreached. The ball computation in
//     package neighborhood relies on this to bound its work.
//   - WithContext(ctx) cancels a long traversal at frontier boundaries.
//
// Determinism
//
//	core.Graph neighbor lists are sorted, and the frontier is a FIFO
//	queue, so distances and visit order are reproducible. Distances are
//	deterministic regardless of visit order within a level.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the distance vector and queue
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrSourceOutOfRange  if src is not a valid vertex index.
//   - ErrOptionViolation   for invalid options (negative MaxDepth).
//   - context errors when a supplied context is cancelled.
package bfs
