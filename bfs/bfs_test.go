package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/bfs"
	"github.com/katalvlaran/hamilton/core"
)

func TestBFS_NilGraph(t *testing.T) {
	_, err := bfs.BFS(nil, "x")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_StartVertexMissing(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0,0"))

	_, err := bfs.BFS(g, "9,9")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

// chainGraph builds a 2x2 grid-style adjacency graph: a square of four
// cells linked into a cycle, same shape grid.Grid.Adjacency produces for
// a fully open 2x2 grid.
func chainGraph(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range []string{"0,0", "0,1", "1,0", "1,1"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("0,0", "0,1"))
	require.NoError(t, g.AddEdge("0,0", "1,0"))
	require.NoError(t, g.AddEdge("0,1", "1,1"))
	require.NoError(t, g.AddEdge("1,0", "1,1"))

	return g
}

func TestBFS_VisitsEveryReachableVertex(t *testing.T) {
	g := chainGraph(t)

	res, err := bfs.BFS(g, "0,0")
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
	assert.Equal(t, "0,0", res.Order[0])
}

func TestBFS_DoesNotCrossDisconnectedComponents(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0,0"))
	require.NoError(t, g.AddVertex("0,1"))
	require.NoError(t, g.AddEdge("0,0", "0,1"))
	require.NoError(t, g.AddVertex("5,5")) // isolated

	res, err := bfs.BFS(g, "0,0")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"0,0", "0,1"}, res.Order)
}
