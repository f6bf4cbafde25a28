// Package shortestpath: shared result type, constants and Dijkstra options.
package shortestpath

import (
	"math"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/pqueue"
)

// Inf marks an unreached vertex in Result.Dist.
var Inf = math.Inf(1)

// NoParent marks a vertex with no predecessor in Result.Parent: the
// source itself, or any vertex not (yet) reached.
const NoParent = -1

// Result is the per-invocation output of either engine. It is sized to
// the graph's vertex count, created fresh per call, and owned by the
// caller; the engines never retain or mutate it after returning.
type Result struct {
	// Dist maps vertex id → distance from the source (Inf if unreached).
	Dist []float64

	// Parent maps vertex id → predecessor on a shortest path (NoParent
	// if unreached or the source itself).
	Parent []int

	// HasNegativeCycle reports a negative cycle reachable from the
	// source. Only BellmanFord sets it; when true, distances touched by
	// the cycle are not meaningful.
	HasNegativeCycle bool
}

// newResult allocates an all-unreached Result for n vertices.
func newResult(n int) Result {
	res := Result{
		Dist:   make([]float64, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = Inf
		res.Parent[i] = NoParent
	}

	return res
}

// QueueFactory produces the priority queue a single Dijkstra invocation
// will own, keyed by tentative distance.
type QueueFactory func() pqueue.Queue[int, float64]

// Options configures Dijkstra. BellmanFord takes no options.
type Options struct {
	// NewQueue builds the vertex queue. Defaults to the hash-backed
	// pqueue implementation.
	NewQueue QueueFactory
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// WithQueue substitutes the priority queue implementation Dijkstra
// expands vertices with. Any pqueue.Queue[int, float64] works; the
// algorithm only relies on the min-first, insertion-stable contract.
func WithQueue(factory QueueFactory) Option {
	return func(o *Options) {
		if factory != nil {
			o.NewQueue = factory
		}
	}
}

// DefaultOptions returns the standard configuration: a fresh HashQueue
// per invocation.
func DefaultOptions() Options {
	return Options{
		NewQueue: func() pqueue.Queue[int, float64] {
			return pqueue.NewHashQueue[int, float64]()
		},
	}
}
