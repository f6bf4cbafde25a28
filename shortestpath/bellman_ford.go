package shortestpath

import (
	"github.com/IvanPalatovA/GraphAlgorithmsLab/core"
)

// arc is a flattened (u, v, w) triple; BellmanFord relaxes over a plain
// edge list rather than per-vertex adjacency.
type arc struct {
	u, v int
	w    float64
}

// BellmanFord computes shortest distances from source to every vertex of
// g, tolerating negative edge weights.
//
// Defensive contract: a nil graph or an out-of-range source returns an
// all-unreached Result. After at most n-1 relaxation passes (with early
// exit on a pass that changes nothing), one extra pass probes for a
// still-relaxable edge; finding one sets HasNegativeCycle and stops the
// scan. The Result is returned either way so the caller can decide which
// distances to trust. Equal-cost routes move only the parent table
// (newest predecessor wins), per the package-level tie rule.
//
// Complexity: O(V · E) time worst case, O(V + E) space.
func BellmanFord(g *core.Graph, source int) Result {
	if g == nil {
		return newResult(0)
	}

	n := g.VertexCount()
	res := newResult(n)

	if source < 0 || source >= n {
		return res
	}
	res.Dist[source] = 0

	// 1) Flatten all stored arcs into one list. Undirected graphs store
	//    both directions, so each logical edge relaxes both ways.
	//    Dangling arcs from a shrunken graph are dropped here.
	arcs := flatten(g, n)

	// 2) Up to n-1 full relaxation passes; a pass with no improvement
	//    means all shortest paths are already final, so stop early.
	for pass := 0; pass < n-1; pass++ {
		changed := false
		for _, a := range arcs {
			du := res.Dist[a.u]
			if du == Inf {
				continue
			}
			nd := du + a.w
			if nd < res.Dist[a.v] {
				res.Dist[a.v] = nd
				res.Parent[a.v] = a.u
				changed = true
			} else if nd == res.Dist[a.v] && a.v != source {
				// Equal-cost route: adopt the newer predecessor, same
				// tie rule as Dijkstra. Only the parent moves — changed
				// stays false, so early exit and termination are driven
				// by strict improvements alone. The source never takes
				// a parent.
				res.Parent[a.v] = a.u
			}
		}
		if !changed {
			break
		}
	}

	// 3) Detection pass: any edge still relaxable after n-1 passes lies
	//    on (or hangs off) a reachable negative cycle.
	for _, a := range arcs {
		du := res.Dist[a.u]
		if du != Inf && du+a.w < res.Dist[a.v] {
			res.HasNegativeCycle = true
			break
		}
	}

	return res
}

// flatten collects every stored arc with an in-range destination.
func flatten(g *core.Graph, n int) []arc {
	arcs := make([]arc, 0, n)
	for u := 0; u < n; u++ {
		out, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, e := range out {
			if e.To < 0 || e.To >= n {
				continue
			}
			arcs = append(arcs, arc{u: u, v: e.To, w: e.Weight})
		}
	}

	return arcs
}
