// Package shortestpath implements single-source shortest paths over
// core.Graph: Dijkstra and Bellman–Ford, plus path reconstruction from
// the parent table both engines produce.
//
// Both engines share one result shape, Result:
//
//	Dist[v]   — tentative-then-final distance from the source; Inf marks
//	            an unreached vertex.
//	Parent[v] — predecessor of v on a shortest path, NoParent if none.
//	HasNegativeCycle — set only by BellmanFord.
//
// Failure model (deliberate, per the lab's contract):
//
//   - Neither engine returns an error. An out-of-range source (or a nil
//     graph) yields a defensive all-unreached Result with no source marked.
//   - Dijkstra treats negative edges as unsupported and SKIPS them during
//     relaxation rather than failing; vertices reachable only through a
//     negative edge may come back over-estimated or unreached. This is a
//     documented limitation, not a bug.
//   - BellmanFord tolerates negative edges and reports a reachable
//     negative cycle through HasNegativeCycle; distances affected by the
//     cycle are not meaningful, so check the flag before trusting them.
//
// Parent tie rule (both engines): when a relaxation finds a route of
// exactly the current best cost, Parent adopts the newer predecessor —
// distances never move on a tie, only the parent table does. This makes
// reconstruction deterministic on graphs with equal-cost routes: the
// last shortest route discovered is the one RestorePath follows.
// Bellman–Ford's negative-cycle detection and early exit remain keyed to
// strict improvements, so ties are never mistaken for cycles.
//
// Dijkstra runs lazy decrease-key: every relaxation re-enqueues the
// vertex under its improved distance, and stale queue entries are
// discarded on dequeue via a settled-set check. The queue itself is an
// injectable pqueue.Queue (WithQueue), defaulting to the hash-backed
// implementation — any conforming queue (a binary heap, say) drops in
// without touching the algorithm.
//
// Complexity:
//
//   - Dijkstra: O((V + E) · Q) where Q is the queue's per-op cost
//     (O(log k) distinct-priority maintenance for the default HashQueue).
//   - BellmanFord: O(V · E) worst case, with early exit on a pass that
//     relaxes nothing.
//   - RestorePath: O(path length).
package shortestpath
