// Package core: type declarations, sentinel errors, options and the
// NewGraph constructor. Methods live in methods.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates a negative vertex count was passed
	// to NewGraph or Resize.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Edge is a directed arc owned by its source vertex's adjacency entry.
//
// In an undirected Graph the same logical edge appears as two arcs, one
// in each endpoint's adjacency list (self-loops excepted).
type Edge struct {
	// To is the destination vertex id.
	To int

	// Weight is the cost of traversing the arc. Negative weights are
	// legal at the storage level; individual algorithms document how
	// they treat them.
	Weight float64
}

// Graph is the adjacency-list weighted graph.
//
// The zero value is an empty directed graph; prefer NewGraph so the
// directedness and vertex count are explicit.
type Graph struct {
	directed bool // arc mirroring policy, fixed at construction

	// adj[u] is the ordered list of arcs leaving u; len(adj) is the
	// vertex count.
	adj [][]Edge
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets whether inserted edges are one-way (true) or
// mirrored into both endpoints' adjacency lists (false).
// The default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// NewGraph creates a graph with n isolated vertices (ids 0..n-1) and the
// given options applied in order.
//
// Returns ErrNegativeVertexCount if n < 0.
// Complexity: O(n) for the adjacency backbone.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}

	g := &Graph{adj: make([][]Edge, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
