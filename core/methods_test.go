package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BogdanFloris/CLRS-Library/core"
)

func TestAddVertex_EmptyKey(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddEdge("A", "B", 3))

	// Re-adding an existing vertex must not reset its adjacency.
	require.NoError(t, g.AddVertex("A"))
	assert.True(t, g.Connected("A", "B"))
	assert.Equal(t, 2, g.VertexCount())
}

func TestGetVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	v, err := g.GetVertex("A")
	require.NoError(t, err)
	assert.Equal(t, "A", v.ID)

	_, err = g.GetVertex("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 7))

	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.True(t, g.Connected("A", "B"))
	assert.False(t, g.Connected("B", "A"), "directed edge must not be mirrored")
}

func TestAddEdge_UndirectedMirror(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 7))

	assert.True(t, g.Connected("A", "B"))
	assert.True(t, g.Connected("B", "A"))

	a, err := g.GetVertex("A")
	require.NoError(t, err)
	b, err := g.GetVertex("B")
	require.NoError(t, err)
	wAB, ok := a.Weight(b)
	require.True(t, ok)
	wBA, ok := b.Weight(a)
	require.True(t, ok)
	assert.Equal(t, wAB, wBA, "mirror edge keeps identical weight")
}

func TestAddEdge_LastWriteWins(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "B", 9))

	a, _ := g.GetVertex("A")
	b, _ := g.GetVertex("B")
	w, ok := a.Weight(b)
	require.True(t, ok)
	assert.Equal(t, int64(9), w, "repeated AddEdge overwrites the weight")
	assert.Equal(t, 1, g.EdgeCount(), "no parallel entry is created")
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "A", 2))
	assert.True(t, g.Connected("A", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_EmptyKey(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", "B", 0), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "", 0), core.ErrEmptyVertexID)
}

func TestAddEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	err := g.AddEdges([]core.EdgeSpec{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	})
	require.NoError(t, err)
	assert.True(t, g.Connected("A", "B"))
	assert.True(t, g.Connected("B", "C"))
}

func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, k := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(k))
	}
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestEdges_Deterministic(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 3))
	require.NoError(t, g.AddEdge("A", "B", 1))

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "A", edges[0].From.ID)
	assert.Equal(t, "B", edges[0].To.ID)
	assert.Equal(t, int64(1), edges[0].Weight)
	assert.Equal(t, "A", edges[1].From.ID)
	assert.Equal(t, "C", edges[1].To.ID)
	assert.Equal(t, "B", edges[2].From.ID)
}

func TestEdges_UndirectedYieldsBothDirections(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 4))

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "A", edges[0].From.ID)
	assert.Equal(t, "B", edges[0].To.ID)
	assert.Equal(t, "B", edges[1].From.ID)
	assert.Equal(t, "A", edges[1].To.ID)
	assert.Equal(t, int64(4), edges[1].Weight)
}

func TestConnected_AbsentKeys(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	assert.False(t, g.Connected("A", "ghost"))
	assert.False(t, g.Connected("ghost", "A"))
}

func TestNeighbors_SortedByID(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("X", "C", 0))
	require.NoError(t, g.AddEdge("X", "A", 0))
	require.NoError(t, g.AddEdge("X", "B", 0))

	x, err := g.GetVertex("X")
	require.NoError(t, err)
	var ids []string
	for _, n := range x.Neighbors() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, ids)
}
