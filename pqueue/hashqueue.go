package pqueue

import (
	"cmp"
	"slices"
)

// HashQueue is the hash-table-backed Queue implementation.
//
// Invariants (hold between every exported call):
//
//   - keys contains exactly the priorities with a non-empty bucket,
//     in ascending order, each at most once.
//   - size equals the sum of all bucket lengths.
//
// Buckets are FIFO slices, so equal-priority items dequeue in insertion
// order. The zero value is not usable; construct with NewHashQueue.
type HashQueue[T any, P cmp.Ordered] struct {
	buckets map[P][]T // priority → items sharing it, insertion order
	keys    []P       // distinct priorities present, ascending
	size    int       // total item count across buckets
}

// Compile-time check that HashQueue satisfies the Queue contract.
var _ Queue[int, float64] = (*HashQueue[int, float64])(nil)

// NewHashQueue returns an empty HashQueue ready for use.
// Complexity: O(1).
func NewHashQueue[T any, P cmp.Ordered]() *HashQueue[T, P] {
	return &HashQueue[T, P]{buckets: make(map[P][]T)}
}

// IsEmpty reports whether the queue holds no items. O(1).
func (q *HashQueue[T, P]) IsEmpty() bool { return q.size == 0 }

// Len returns the total number of items in the queue. O(1).
func (q *HashQueue[T, P]) Len() int { return q.size }

// Enqueue inserts item under priority, creating the bucket and slotting
// the priority into the sorted key index if it was absent.
// Complexity: O(1) amortized for an existing priority; O(log k) search
// plus O(k) shift when a new distinct priority is introduced, where k is
// the number of distinct priorities present.
func (q *HashQueue[T, P]) Enqueue(item T, priority P) {
	bucket, ok := q.buckets[priority]
	if !ok {
		// First item at this priority: register the key in the index.
		at, _ := slices.BinarySearch(q.keys, priority)
		q.keys = slices.Insert(q.keys, at, priority)
	}
	q.buckets[priority] = append(bucket, item)
	q.size++
}

// PeekFirst returns the front item of the smallest-priority bucket
// without removing it. Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1).
func (q *HashQueue[T, P]) PeekFirst() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.buckets[q.keys[0]][0], nil
}

// PeekLast returns the back item of the largest-priority bucket without
// removing it. Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1).
func (q *HashQueue[T, P]) PeekLast() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	last := q.buckets[q.keys[len(q.keys)-1]]

	return last[len(last)-1], nil
}

// Peek returns the item at position index in the ascending-priority,
// insertion-stable layout: it walks the key index accumulating bucket
// sizes until the cumulative count covers index.
// Returns ErrIndexOutOfRange if index < 0 or index >= Len().
// Complexity: O(k) over distinct priorities.
func (q *HashQueue[T, P]) Peek(index int) (T, error) {
	if index < 0 || index >= q.size {
		var zero T
		return zero, ErrIndexOutOfRange
	}

	var seen int
	for _, key := range q.keys {
		bucket := q.buckets[key]
		if index < seen+len(bucket) {
			return bucket[index-seen], nil
		}
		seen += len(bucket)
	}

	// Unreachable while the invariants hold: index < size implies some
	// bucket covers it.
	var zero T

	return zero, ErrIndexOutOfRange
}

// Dequeue removes and returns the front item of the smallest-priority
// bucket; when that bucket drains, its key leaves the sorted index.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1) amortized; O(k) shift when a bucket drains.
func (q *HashQueue[T, P]) Dequeue() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	lowest := q.keys[0]
	bucket := q.buckets[lowest]
	item := bucket[0]

	if len(bucket) == 1 {
		delete(q.buckets, lowest)
		q.keys = slices.Delete(q.keys, 0, 1)
	} else {
		q.buckets[lowest] = bucket[1:]
	}
	q.size--

	return item, nil
}

// Clone returns a deep copy: fresh buckets, fresh key index, same layout.
// Useful for non-destructive drains (e.g. comparing Peek(i) against
// repeated Dequeue on the copy).
// Complexity: O(n + k) over items and distinct priorities.
func (q *HashQueue[T, P]) Clone() *HashQueue[T, P] {
	clone := &HashQueue[T, P]{
		buckets: make(map[P][]T, len(q.buckets)),
		keys:    slices.Clone(q.keys),
		size:    q.size,
	}
	for key, bucket := range q.buckets {
		clone.buckets[key] = slices.Clone(bucket)
	}

	return clone
}
