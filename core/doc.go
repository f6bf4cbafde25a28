// Package core defines the central Graph and Edge types for the lab:
// a bounded, int-indexed, adjacency-list weighted graph.
//
// Overview:
//
//   - Vertices are dense integer ids in [0, VertexCount()).
//   - Each vertex owns an ordered adjacency slice of outgoing Edge arcs;
//     insertion order is preserved and observable via Neighbors.
//   - A Graph is directed or undirected at construction time. Undirected
//     graphs store every inserted edge twice (once per direction), except
//     self-loops, which are stored once; EdgeCount compensates by halving
//     the arc total.
//   - Clone produces a deep copy (fresh adjacency storage); handing a
//     *Graph to another owner is the move — there is no shallow copy mode.
//
// Concurrency:
//
//   - A Graph is plain data with no internal locking. It is read-only
//     while a shortest-path computation runs; callers that mutate and
//     query concurrently must serialize externally.
//
// Errors (sentinel):
//
//   - ErrNegativeVertexCount — New or Resize given n < 0.
//   - ErrVertexOutOfRange    — AddEdge or Neighbors given a vertex id
//     outside [0, VertexCount()).
//
// Known gap: Resize shrinking discards adjacency lists of removed
// vertices but does not scrub arcs pointing *into* removed vertices from
// surviving lists. Such dangling arcs are read back as stored; consumers
// are expected to bounds-check Edge.To when the graph may have shrunk.
package core
