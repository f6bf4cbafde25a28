// Package pqueue: the abstract Queue contract and its sentinel errors.
// The hash-table-backed implementation lives in hashqueue.go.
package pqueue

import (
	"cmp"
	"errors"
)

// Sentinel errors for queue access.
var (
	// ErrEmptyQueue indicates Dequeue, PeekFirst or PeekLast on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrIndexOutOfRange indicates Peek with an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("pqueue: index out of range")
)

// Queue is a min-priority queue over items of type T ranked by priorities
// of ordered type P. A smaller priority value means a higher rank; items
// sharing a priority are dequeued in insertion order.
//
// Implementations are free to choose their backing structure (hash
// buckets, binary heap, sorted list); consumers such as Dijkstra depend
// only on this contract.
type Queue[T any, P cmp.Ordered] interface {
	// IsEmpty reports whether the queue holds no items. O(1).
	IsEmpty() bool

	// Len returns the total number of items across all priorities. O(1).
	Len() int

	// Peek returns, without removing, the item at position index in the
	// ascending-priority, insertion-stable layout of the queue.
	// Returns ErrIndexOutOfRange if index < 0 or index >= Len().
	Peek(index int) (T, error)

	// PeekFirst returns, without removing, the front item at the smallest
	// priority. Returns ErrEmptyQueue if the queue is empty.
	PeekFirst() (T, error)

	// PeekLast returns, without removing, the back item at the largest
	// priority. Returns ErrEmptyQueue if the queue is empty.
	PeekLast() (T, error)

	// Enqueue inserts item under the given priority. Duplicates (both of
	// items and of (item, priority) pairs) are allowed; Enqueue never fails.
	Enqueue(item T, priority P)

	// Dequeue removes and returns the front item at the smallest priority.
	// Returns ErrEmptyQueue if the queue is empty.
	Dequeue() (T, error)
}
