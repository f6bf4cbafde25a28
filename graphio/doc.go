// Package graphio persists core.Graph values in the lab's plain-text
// format.
//
// Format:
//
//	<vertex_count> <edge_count> <directed:0|1>
//	<u> <v> <weight>
//	... (edge_count lines)
//
// Undirected graphs write each edge once (the stored mirror arc with
// u > v is skipped); self-loops are written once. The header's
// edge_count field is the exact count of edge lines that follow, which
// for undirected graphs with self-loops can exceed the halved
// Graph.EdgeCount (a loop is stored as one arc, not two). Reading is
// whitespace-insensitive: tokens may be separated by any mix of spaces
// and newlines, matching the original lab's stream semantics.
//
// Loading fails with a wrapped sentinel instead of panicking:
//
//   - ErrBadHeader — the three-field header cannot be parsed, or the
//     declared vertex count is invalid.
//   - ErrBadEdge   — an edge line cannot be parsed, or its endpoints are
//     out of range (the core.ErrVertexOutOfRange cause is preserved for
//     errors.Is).
package graphio
