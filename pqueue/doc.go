// Package pqueue provides a generic min-priority queue abstraction and a
// hash-table-backed implementation.
//
// Overview:
//
//   - Queue[T, P] is the abstract contract: Enqueue/Dequeue/PeekFirst/
//     PeekLast/Peek(i)/Len/IsEmpty, where a SMALLER priority value means a
//     HIGHER rank. Ties are broken by insertion order (FIFO within equal
//     priority), and duplicate (item, priority) pairs are permitted.
//   - HashQueue is the provided implementation: a hash table mapping each
//     priority value present to a FIFO bucket of items sharing it, plus an
//     ascending index of the distinct priority values currently present.
//
// Why a hash table at all? Bucketing by priority gives O(1) amortized
// insertion into an existing bucket, and the ordered min/max access that
// a plain hash table lacks is recovered by the distinct-key index: with k
// distinct priorities, min/max access costs O(1) and key insertion
// O(log k) search + O(k) shift. For workloads with many ties (integer
// distances, small weight ranges) k stays far below the element count
// and the index stays cheap.
//
// Positional access: Peek(i) addresses the element that would occupy
// position i if the whole queue were laid out by ascending priority and,
// within a priority, by insertion order. It walks the key index
// accumulating bucket sizes, so it is O(k) worst case — the accepted
// price of arbitrary positional peek.
//
// The queue is append/remove only: there is no decrease-key or
// re-prioritization. Consumers that need it (Dijkstra) re-enqueue under
// the new priority and discard stale entries on dequeue.
//
// Errors (sentinel):
//
//   - ErrEmptyQueue       — Dequeue/PeekFirst/PeekLast on an empty queue.
//   - ErrIndexOutOfRange  — Peek(i) with i < 0 or i >= Len().
//
// Not safe for concurrent use; each instance belongs to a single caller.
package pqueue
