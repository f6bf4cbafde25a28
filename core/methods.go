package core

// VertexCount returns the number of vertices n; valid ids are [0, n).
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.adj) }

// Directed reports whether inserted edges are stored as one-way arcs.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// AddEdge appends the arc u→v with weight w to u's adjacency list.
// On an undirected graph the mirror arc v→u is appended as well, unless
// u == v (self-loops are stored once).
//
// Returns ErrVertexOutOfRange if u or v lies outside [0, VertexCount()).
// Complexity: amortized O(1).
func (g *Graph) AddEdge(u, v int, w float64) error {
	// Validate both endpoints before touching storage, so a failed call
	// leaves the graph unchanged.
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return ErrVertexOutOfRange
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Edge{To: u, Weight: w})
	}

	return nil
}

// Neighbors returns u's outgoing arcs in insertion order.
//
// The returned slice is a read-only view over the graph's own storage:
// callers must not modify it, and it is invalidated by subsequent
// AddEdge/Resize calls on the same vertex.
//
// Returns ErrVertexOutOfRange if u lies outside [0, VertexCount()).
// Complexity: O(1).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if u < 0 || u >= len(g.adj) {
		return nil, ErrVertexOutOfRange
	}

	return g.adj[u], nil
}

// EdgeCount returns the number of logical edges: the total arc count
// across all adjacency lists, halved for undirected graphs (each
// non-loop edge is stored twice).
// Complexity: O(n).
func (g *Graph) EdgeCount() int {
	var m int
	for _, arcs := range g.adj {
		m += len(arcs)
	}
	if !g.directed {
		m /= 2
	}

	return m
}

// Resize grows or shrinks the vertex storage to n vertices.
//
// Growing appends isolated vertices. Shrinking discards the adjacency
// lists of removed vertices; arcs pointing into removed vertices from
// surviving lists are NOT scrubbed and will be read back as stored
// (see the package doc's known gap). Existing entries are never
// reordered.
//
// Returns ErrNegativeVertexCount if n < 0.
// Complexity: O(n).
func (g *Graph) Resize(n int) error {
	if n < 0 {
		return ErrNegativeVertexCount
	}
	if n == len(g.adj) {
		return nil
	}

	if n < len(g.adj) {
		// Truncate, then release the dropped tails for the GC.
		for i := n; i < len(g.adj); i++ {
			g.adj[i] = nil
		}
		g.adj = g.adj[:n]

		return nil
	}

	grown := make([][]Edge, n)
	copy(grown, g.adj)
	g.adj = grown

	return nil
}

// Clone returns a deep copy of the graph: same directedness, same vertex
// count, and freshly allocated adjacency slices with identical contents.
// Mutating the clone never affects the original (and vice versa).
// Complexity: O(n + m) over vertices and stored arcs.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		directed: g.directed,
		adj:      make([][]Edge, len(g.adj)),
	}
	for u, arcs := range g.adj {
		if len(arcs) == 0 {
			continue
		}
		clone.adj[u] = append(make([]Edge, 0, len(arcs)), arcs...)
	}

	return clone
}
