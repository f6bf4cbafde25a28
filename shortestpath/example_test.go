package shortestpath_test

import (
	"fmt"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/core"
	"github.com/IvanPalatovA/GraphAlgorithmsLab/shortestpath"
)

// ExampleDijkstra runs the canonical diamond graph and rebuilds the
// route to the far vertex.
func ExampleDijkstra() {
	g, _ := core.NewGraph(5, core.WithDirected(true))
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 5)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(1, 3, 2)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 4, 3)

	res := shortestpath.Dijkstra(g, 0)
	fmt.Println("dist:", res.Dist)
	fmt.Println("path 0→4:", shortestpath.RestorePath(0, 4, res.Parent))
	// Output:
	// dist: [0 2 3 4 7]
	// path 0→4: [0 1 2 3 4]
}

// ExampleBellmanFord shows negative-cycle reporting: the result is still
// returned, the flag tells the caller not to trust affected distances.
func ExampleBellmanFord() {
	g, _ := core.NewGraph(3, core.WithDirected(true))
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 1, -3)

	res := shortestpath.BellmanFord(g, 0)
	fmt.Println("negative cycle:", res.HasNegativeCycle)
	// Output:
	// negative cycle: true
}
