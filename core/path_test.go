package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BogdanFloris/CLRS-Library/core"
)

// chainGraph builds A→B→C→D and links predecessors as a search from A
// would have left them.
func chainGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdges([]core.EdgeSpec{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	}))
	for _, link := range [][2]string{{"B", "A"}, {"C", "B"}, {"D", "C"}} {
		v, err := g.GetVertex(link[0])
		require.NoError(t, err)
		p, err := g.GetVertex(link[1])
		require.NoError(t, err)
		v.SetPredecessor(p)
	}

	return g
}

func TestPathTo_Chain(t *testing.T) {
	g := chainGraph(t)
	path, err := g.PathTo("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestPathTo_SourceIsDest(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	path, err := g.PathTo("A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path, "path from a source to itself is the single-element path")
}

func TestPathTo_NoPath(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("Z"))

	_, err := g.PathTo("A", "Z")
	assert.ErrorIs(t, err, core.ErrNoPath)
}

func TestPathTo_MissingVertices(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	_, err := g.PathTo("ghost", "A")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.PathTo("A", "ghost")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestWritePath(t *testing.T) {
	g := chainGraph(t)
	var sb strings.Builder
	require.NoError(t, g.WritePath(&sb, "A", "D"))
	assert.Equal(t, "A B C D\n", sb.String())
}

func TestWritePath_NoPathNotice(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("Z"))

	var sb strings.Builder
	require.NoError(t, g.WritePath(&sb, "A", "Z"))
	assert.Equal(t, "No path from A to Z exists!\n", sb.String())
}
