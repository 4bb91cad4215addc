package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

func TestNewGraph_NegativeCount(t *testing.T) {
	g, err := core.NewGraph(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Edges())
	assert.False(t, g.HasVertex(0))
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 3, 1), core.ErrVertexOutOfRange)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_LoopPolicy(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddEdge(1, 1, 0), core.ErrLoopNotAllowed)

	looped, err := core.NewGraph(2, core.WithLoops())
	require.NoError(t, err)
	require.NoError(t, looped.AddEdge(1, 1, 0))
	assert.True(t, looped.Looped())
	assert.Equal(t, 1, looped.EdgeCount())
}

func TestAddEdge_NegativeWeightPolicy(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	assert.ErrorIs(t, g.AddEdge(0, 1, -4), core.ErrNegativeWeight)

	neg, err := core.NewGraph(2, core.WithNegativeWeights())
	require.NoError(t, err)
	require.NoError(t, neg.AddEdge(0, 1, -4))
	assert.True(t, neg.NegativeWeights())
}

func TestAddUndirected(t *testing.T) {
	g, err := core.NewGraph(2, core.WithLoops())
	require.NoError(t, err)
	require.NoError(t, g.AddUndirected(0, 1, 7))
	require.NoError(t, g.AddUndirected(1, 1, 2))

	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 7},
		{From: 1, To: 0, Weight: 7},
		{From: 1, To: 1, Weight: 2},
	}, g.Edges())
}

func TestNeighbors_InsertionOrderAndSourceField(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(2, 3, 5))
	require.NoError(t, g.AddEdge(2, 0, 1))
	require.NoError(t, g.AddEdge(2, 3, 2))

	nbs, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Len(t, nbs, 3)
	for _, e := range nbs {
		assert.Equal(t, 2, e.From)
	}
	assert.Equal(t, []int{3, 0, 3}, []int{nbs[0].To, nbs[1].To, nbs[2].To})

	deg, err := g.OutDegree(2)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.OutDegree(-1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestMinWeight_ParallelEdges(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 9))
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(0, 1, 6))

	w, ok := g.MinWeight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(3), w)

	_, ok = g.MinWeight(1, 0)
	assert.False(t, ok)
	_, ok = g.MinWeight(0, 7)
	assert.False(t, ok)
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	edges := g.Edges()
	edges[0].Weight = 100

	w, ok := g.MinWeight(0, 1)
	require.True(t, ok)
	assert.Equal(t, int64(1), w)
	assert.NoError(t, g.Validate())
}
