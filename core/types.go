// Package core defines the Graph store and its construction errors.
//
// This file declares the Edge input type, the Graph type, and the
// sentinel errors returned by Build.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNoVertices indicates the edge stream produced an empty graph.
	ErrNoVertices = errors.New("core: graph has no vertices")

	// ErrDisconnected indicates the graph has more than one connected
	// component; the oracle requires a connected graph.
	ErrDisconnected = errors.New("core: graph is not connected")
)

// Edge is one undirected edge of the input stream, endpoints given as
// opaque string tokens. Orientation carries no meaning.
type Edge struct {
	U string
	V string
}

// Graph is an immutable undirected simple graph.
//
// Vertex tokens are interned to dense int32 indices in first-seen order;
// adjacency is compressed sparse row: the neighbors of vertex v occupy
// adj[offsets[v]:offsets[v+1]], sorted ascending. All fields are fixed
// after Build, so a Graph is safe for unsynchronized concurrent reads.
type Graph struct {
	tokens  []string         // index → token
	index   map[string]int32 // token → index
	offsets []int32          // CSR row starts, length NumVertices()+1
	adj     []int32          // flat neighbor list, length 2·|E|
}

// NumVertices returns n, the number of distinct vertices.
// Complexity: O(1).
func (g *Graph) NumVertices() int {
	return len(g.tokens)
}

// NumEdges returns the number of undirected edges after deduplication.
// Complexity: O(1).
func (g *Graph) NumEdges() int {
	return len(g.adj) / 2
}

// Neighbors returns the sorted neighbor indices of v. The returned slice
// aliases internal storage and must not be modified.
// Complexity: O(1).
func (g *Graph) Neighbors(v int32) []int32 {
	return g.adj[g.offsets[v]:g.offsets[v+1]]
}

// Degree returns the number of neighbors of v.
// Complexity: O(1).
func (g *Graph) Degree(v int32) int {
	return int(g.offsets[v+1] - g.offsets[v])
}

// IndexOf resolves a token to its dense index. The second result is
// false when the token is not a vertex of the graph.
// Complexity: O(1).
func (g *Graph) IndexOf(token string) (int32, bool) {
	v, ok := g.index[token]
	return v, ok
}

// TokenOf returns the token of vertex v. v must be a valid index
// obtained from this graph; out-of-range values panic like any slice
// access.
// Complexity: O(1).
func (g *Graph) TokenOf(v int32) string {
	return g.tokens[v]
}

// Tokens returns all vertex tokens in index order. The returned slice
// is a copy and may be retained by the caller.
// Complexity: O(V).
func (g *Graph) Tokens() []string {
	out := make([]string, len(g.tokens))
	copy(out, g.tokens)
	return out
}
