package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanPalatovA/GraphAlgorithmsLab/core"
)

// TestNewGraph_NegativeCount verifies the constructor rejects n < 0.
func TestNewGraph_NegativeCount(t *testing.T) {
	_, err := core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

// TestNewGraph_Empty verifies that a zero-vertex graph is legal and inert.
func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.Directed(), "graphs default to undirected")
}

// TestAddEdge_OutOfRange checks that both endpoints are validated and a
// failed insert leaves the graph untouched.
func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 3, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(3, 0, 1), core.ErrVertexOutOfRange)
	assert.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_DirectedSingleArc: a directed insert stores exactly one arc.
func TestAddEdge_DirectedSingleArc(t *testing.T) {
	g, err := core.NewGraph(2, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2.5))

	assert.Equal(t, 1, g.EdgeCount())

	out0, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{To: 1, Weight: 2.5}}, out0)

	out1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Empty(t, out1, "directed arc must not be mirrored")
}

// TestAddEdge_UndirectedMirrors: an undirected insert stores both arcs
// but counts as a single edge.
func TestAddEdge_UndirectedMirrors(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))

	assert.Equal(t, 1, g.EdgeCount())

	out1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{To: 0, Weight: 4}}, out1)
}

// TestAddEdge_UndirectedSelfLoop: self-loops are stored once, even on
// undirected graphs.
func TestAddEdge_UndirectedSelfLoop(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 1, 7))

	out1, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Len(t, out1, 1, "undirected self-loop must not be duplicated")
}

// TestNeighbors_InsertionOrder asserts arcs come back in the order they
// were appended.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g, err := core.NewGraph(4, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 3, 3))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 2))

	out, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{To: 3, Weight: 3}, {To: 1, Weight: 1}, {To: 2, Weight: 2}}, out)

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestResize_GrowAndShrink covers both directions plus the no-op case.
func TestResize_GrowAndShrink(t *testing.T) {
	g, err := core.NewGraph(2, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	// Grow: old arcs survive, new vertices are isolated and addressable.
	require.NoError(t, g.Resize(4))
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())
	require.NoError(t, g.AddEdge(3, 0, 9))

	// No-op resize.
	require.NoError(t, g.Resize(4))
	assert.Equal(t, 2, g.EdgeCount())

	// Shrink: removed vertices lose their adjacency lists.
	require.NoError(t, g.Resize(1))
	assert.Equal(t, 1, g.VertexCount())

	assert.ErrorIs(t, g.Resize(-2), core.ErrNegativeVertexCount)
}

// TestResize_DanglingEdgeSurvives pins the documented gap: shrinking does
// not scrub arcs that point into removed vertices, so a surviving vertex
// can still read back an out-of-range destination.
func TestResize_DanglingEdgeSurvives(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2, 5))

	require.NoError(t, g.Resize(2))

	out, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].To, "dangling arc is read back as stored")
	assert.GreaterOrEqual(t, out[0].To, g.VertexCount())
}

// TestClone_DeepCopy verifies clones share no adjacency storage.
func TestClone_DeepCopy(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))

	c := g.Clone()
	assert.Equal(t, g.VertexCount(), c.VertexCount())
	assert.Equal(t, g.Directed(), c.Directed())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	// Mutate the clone; the original must be unaffected.
	require.NoError(t, c.AddEdge(2, 0, 3))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, c.EdgeCount())

	orig, err := g.Neighbors(0)
	require.NoError(t, err)
	clone, err := c.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, orig, clone)
}
