package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/core"
	"github.com/IvanPalatovA/GraphAlgorithmsLab/shortestpath"
)

func TestRestorePath_TargetOutOfRange(t *testing.T) {
	parent := []int{shortestpath.NoParent, 0}
	assert.Nil(t, shortestpath.RestorePath(0, -1, parent))
	assert.Nil(t, shortestpath.RestorePath(0, 2, parent))
}

func TestRestorePath_UnreachableTarget(t *testing.T) {
	// Vertex 2 was never relaxed: no parent and not the source.
	parent := []int{shortestpath.NoParent, 0, shortestpath.NoParent}
	assert.Nil(t, shortestpath.RestorePath(0, 2, parent))
}

func TestRestorePath_SourceIsTarget(t *testing.T) {
	parent := []int{shortestpath.NoParent, 0}
	assert.Equal(t, []int{0}, shortestpath.RestorePath(0, 0, parent))
}

// TestRestorePath_DisconnectedChain: the walk ends at a root that is not
// the requested source, so no path exists between the pair.
func TestRestorePath_DisconnectedChain(t *testing.T) {
	// 1's chain roots at 0, but the caller asks for source 2.
	parent := []int{shortestpath.NoParent, 0, shortestpath.NoParent}
	assert.Nil(t, shortestpath.RestorePath(2, 1, parent))
}

// TestRestorePath_CyclicChain: a parent table corrupted into a cycle
// (possible after a negative cycle) must yield an empty path, not hang.
func TestRestorePath_CyclicChain(t *testing.T) {
	parent := []int{shortestpath.NoParent, 2, 1}
	assert.Nil(t, shortestpath.RestorePath(0, 1, parent))
}

// TestRestorePath_ConsecutiveParentLinks: every consecutive pair of the
// returned sequence must be a valid parent link.
func TestRestorePath_ConsecutiveParentLinks(t *testing.T) {
	g := buildDiamond(t)
	res := shortestpath.Dijkstra(g, 0)

	for target := 0; target < g.VertexCount(); target++ {
		path := shortestpath.RestorePath(0, target, res.Parent)
		require.NotEmpty(t, path, "every diamond vertex is reachable from 0")
		assert.Equal(t, 0, path[0])
		assert.Equal(t, target, path[len(path)-1])
		for i := 1; i < len(path); i++ {
			assert.Equal(t, path[i-1], res.Parent[path[i]],
				"link %d→%d must match the parent table", path[i-1], path[i])
		}
	}
}

// TestRestorePath_ViaCoreGraph exercises the whole flow on an undirected
// chain with a tempting shortcut.
func TestRestorePath_ViaCoreGraph(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(0, 3, 10))

	res := shortestpath.BellmanFord(g, 0)
	assert.Equal(t, []int{0, 1, 2, 3}, shortestpath.RestorePath(0, 3, res.Parent))
}
