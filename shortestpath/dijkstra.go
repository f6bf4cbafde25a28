package shortestpath

import (
	"github.com/IvanPalatovA/GraphAlgorithmsLab/core"
)

// Dijkstra computes shortest distances from source to every vertex of g
// reachable over non-negative edges.
//
// Defensive contract: a nil graph or an out-of-range source returns an
// all-unreached Result (no error, no source marked). Negative edges are
// skipped during relaxation — see the package doc for what that implies.
// Equal-cost routes move only the parent table (newest predecessor
// wins), per the package-level tie rule.
//
// The priority queue is scoped to this single invocation; substitute the
// implementation with WithQueue.
//
// Complexity: O((V + E) · Q) time, O(V + E) space, where Q is the
// queue's per-operation cost and the E term counts lazily re-enqueued
// duplicates.
func Dijkstra(g *core.Graph, source int, opts ...Option) Result {
	// 1) Apply options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Defensive boundary: nil graph behaves like an empty one.
	if g == nil {
		return newResult(0)
	}

	n := g.VertexCount()
	res := newResult(n)

	// 3) Out-of-range source: return the all-unreached table as-is.
	if source < 0 || source >= n {
		return res
	}

	// 4) Seed the frontier with the source at distance zero.
	res.Dist[source] = 0
	queue := cfg.NewQueue()
	queue.Enqueue(source, 0)

	// settled[u] means Dist[u] is final; stale queue entries for u are
	// discarded on dequeue (lazy decrease-key).
	settled := make([]bool, n)

	for !queue.IsEmpty() {
		u, err := queue.Dequeue()
		if err != nil {
			break // cannot happen while !IsEmpty; bail rather than spin
		}
		if u < 0 || u >= n {
			continue // tolerate queues polluted by dangling ids
		}
		if settled[u] {
			continue // stale entry left behind by an earlier relaxation
		}
		settled[u] = true

		// 5) Relax every outgoing arc of u.
		arcs, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, e := range arcs {
			if e.Weight < 0 {
				// Negative weights are outside Dijkstra's model; the arc
				// is excluded from relaxation entirely.
				continue
			}
			if e.To < 0 || e.To >= n {
				continue // dangling arc from a shrunken graph
			}

			du := res.Dist[u]
			if du == Inf {
				continue
			}
			nd := du + e.Weight
			if nd < res.Dist[e.To] {
				res.Dist[e.To] = nd
				res.Parent[e.To] = u
				queue.Enqueue(e.To, nd)
			} else if nd == res.Dist[e.To] && !settled[e.To] {
				// Equal-cost route discovered later: adopt the newer
				// predecessor so reconstruction follows it. The distance
				// is unchanged, so no re-enqueue; settled vertices keep
				// their final parent, which also rules out parent cycles
				// across zero-weight ties.
				res.Parent[e.To] = u
			}
		}
	}

	return res
}
