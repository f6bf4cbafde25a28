package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/pqueue"
)

// BenchmarkHashQueue_EnqueueDequeue measures a full fill-then-drain cycle
// with a tie-heavy priority distribution (the regime the hash layout is
// built for: k distinct priorities far below n items).
func BenchmarkHashQueue_EnqueueDequeue(b *testing.B) {
	const items = 1024

	rng := rand.New(rand.NewSource(1))
	priorities := make([]int, items)
	for i := range priorities {
		priorities[i] = rng.Intn(32)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pqueue.NewHashQueue[int, int]()
		for item, p := range priorities {
			q.Enqueue(item, p)
		}
		for !q.IsEmpty() {
			if _, err := q.Dequeue(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkHashQueue_Peek measures positional peek in the middle of the
// layout, the O(k) scan path.
func BenchmarkHashQueue_Peek(b *testing.B) {
	const items = 1024

	q := pqueue.NewHashQueue[int, int]()
	rng := rand.New(rand.NewSource(2))
	for item := 0; item < items; item++ {
		q.Enqueue(item, rng.Intn(64))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := q.Peek(items / 2); err != nil {
			b.Fatal(err)
		}
	}
}
