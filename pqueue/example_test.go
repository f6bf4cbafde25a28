package pqueue_test

import (
	"fmt"
	"strings"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/pqueue"
)

// ExampleHashQueue shows the ranking rule: smaller priority first, ties
// in insertion order.
func ExampleHashQueue() {
	q := pqueue.NewHashQueue[string, int]()
	q.Enqueue("A", 5)
	q.Enqueue("B", 1)
	q.Enqueue("C", 1)
	q.Enqueue("D", 3)

	var order []string
	for !q.IsEmpty() {
		item, _ := q.Dequeue()
		order = append(order, item)
	}
	fmt.Println(strings.Join(order, " "))
	// Output:
	// B C D A
}
