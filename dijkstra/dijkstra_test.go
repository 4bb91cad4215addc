// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, the worked scenarios of the package
// documentation, MaxDistance, InfEdgeThreshold, ties, self-loops and
// parallel edges.
package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

type wEdge struct {
	u, v int
	w    int64
}

// buildGraph creates a directed graph with n vertices and the given edges.
func buildGraph(t testing.TB, n int, edges []wEdge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestSolve_NilGraph(t *testing.T) {
	res, err := dijkstra.Solve(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestSolve_SourceOutOfRange(t *testing.T) {
	g := buildGraph(t, 3, nil)
	for _, src := range []int{-1, 3, 100} {
		res, err := dijkstra.Solve(g, src)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange, "source %d", src)
	}
}

func TestSolve_EmptyGraph(t *testing.T) {
	g := buildGraph(t, 0, nil)
	_, err := dijkstra.Solve(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)
}

func TestSolve_NegativeWeightDetected(t *testing.T) {
	g := buildGraph(t, 2, []wEdge{{0, 1, -5}}, core.WithNegativeWeights())
	_, err := dijkstra.Solve(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "0→1")
}

func TestSolve_NegativeWeightUnchecked(t *testing.T) {
	g := buildGraph(t, 2, []wEdge{{0, 1, -5}}, core.WithNegativeWeights())
	res, err := dijkstra.Solve(g, 0, dijkstra.WithoutWeightCheck())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Dist[0])
}

func TestSolve_OptionViolations(t *testing.T) {
	g := buildGraph(t, 2, []wEdge{{0, 1, 1}})

	_, err := dijkstra.Solve(g, 0, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	_, err = dijkstra.Solve(g, 0, dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)

	// Option errors take priority over a nil graph.
	_, err = dijkstra.Solve(nil, 0, dijkstra.WithInfEdgeThreshold(-3))
	assert.ErrorIs(t, err, dijkstra.ErrOptionViolation)
}

func TestSolve_CancelledContext(t *testing.T) {
	g := buildGraph(t, 2, []wEdge{{0, 1, 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dijkstra.Solve(g, 0, dijkstra.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 2. Worked scenarios.
// ------------------------------------------------------------------------

// Scenario A: (0→1,4), (0→2,1), (2→1,1).
func TestSolve_ScenarioA_Detour(t *testing.T) {
	g := buildGraph(t, 3, []wEdge{{0, 1, 4}, {0, 2, 1}, {2, 1, 1}})

	res, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 1}, res.Dist)
	assert.Equal(t, []int{dijkstra.NoVertex, 2, 0}, res.Prev)

	path, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, path)

	cost, ok := res.Distance(1)
	assert.True(t, ok)
	assert.Equal(t, int64(2), cost)
}

// Scenario B: vertex 3 has no edges at all.
func TestSolve_ScenarioB_Disconnected(t *testing.T) {
	g := buildGraph(t, 4, []wEdge{{0, 1, 4}, {0, 2, 1}, {2, 1, 1}})

	res, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, res.Dist[3])
	assert.Equal(t, dijkstra.NoVertex, res.Prev[3])
	assert.False(t, res.Reachable(3))

	path, ok := dijkstra.ExtractPath(res.Dist, res.Prev, 3)
	assert.False(t, ok)
	assert.Nil(t, path)

	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// Scenario C: destination equals source.
func TestSolve_ScenarioC_SourceIsDestination(t *testing.T) {
	g := buildGraph(t, 3, []wEdge{{0, 1, 4}, {1, 2, 1}})

	res, err := dijkstra.Solve(g, 1)
	require.NoError(t, err)

	path, ok := dijkstra.ExtractPath(res.Dist, res.Prev, 1)
	require.True(t, ok)
	assert.Equal(t, []int{1}, path)
	assert.Equal(t, int64(0), res.Dist[1])

	_, hasPrev := res.Predecessor(1)
	assert.False(t, hasPrev)
	// Edges only run forward from 0, so 0 is unreachable from 1.
	assert.False(t, res.Reachable(0))
}

// Scenario D: parallel edges with different weights.
func TestSolve_ScenarioD_ParallelEdges(t *testing.T) {
	g := buildGraph(t, 3, []wEdge{{0, 1, 9}, {0, 1, 2}, {0, 1, 5}, {1, 2, 1}, {1, 2, 7}})

	res, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 3}, res.Dist)

	w, ok := g.MinWeight(0, 1)
	require.True(t, ok)
	assert.Equal(t, res.Dist[1], res.Dist[0]+w)
}

// ------------------------------------------------------------------------
// 3. Structural edge cases.
// ------------------------------------------------------------------------

func TestSolve_SingleVertex(t *testing.T) {
	g := buildGraph(t, 1, nil)

	res, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, res.Dist)
	assert.Equal(t, []int{dijkstra.NoVertex}, res.Prev)
}

func TestSolve_SelfLoops(t *testing.T) {
	g := buildGraph(t, 2, []wEdge{{0, 0, 0}, {0, 0, 3}, {0, 1, 2}, {1, 1, 1}}, core.WithLoops())

	res, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2}, res.Dist)
	assert.Equal(t, []int{dijkstra.NoVertex, 0}, res.Prev)
}

func TestSolve_ZeroWeightCycle(t *testing.T) {
	g := buildGraph(t, 3, []wEdge{{0, 1, 0}, {1, 2, 0}, {2, 0, 0}})

	res, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, res.Dist)

	path, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestSolve_UndirectedChain(t *testing.T) {
	// 0—1—2—3—4
	//       |
	//       5—6
	g, err := core.NewGraph(7)
	require.NoError(t, err)
	for _, e := range []wEdge{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {3, 5, 1}, {5, 6, 1}} {
		require.NoError(t, g.AddUndirected(e.u, e.v, e.w))
	}

	res, err := dijkstra.Solve(g, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 3, 2, 1, 0, 2, 3}, res.Dist)

	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, path)
}

// Two equal-cost routes to 3; the lower-index vertex 1 is finalized first
// and keeps the predecessor slot because updates require a strict improvement.
func TestSolve_TieBreakIsDeterministic(t *testing.T) {
	g := buildGraph(t, 4, []wEdge{{0, 2, 1}, {0, 1, 1}, {2, 3, 1}, {1, 3, 1}})

	first, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.Dist[3])
	assert.Equal(t, 1, first.Prev[3])

	for i := 0; i < 20; i++ {
		again, err := dijkstra.Solve(g, 0)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSolve_DoesNotMutateGraph(t *testing.T) {
	g := buildGraph(t, 3, []wEdge{{0, 1, 4}, {0, 2, 1}, {2, 1, 1}})
	before := g.Edges()

	_, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
}

// ------------------------------------------------------------------------
// 4. MaxDistance and InfEdgeThreshold.
// ------------------------------------------------------------------------

func TestSolve_MaxDistanceLimits(t *testing.T) {
	g := buildGraph(t, 4, []wEdge{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}})

	res, err := dijkstra.Solve(g, 0, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, dijkstra.Infinity, dijkstra.Infinity}, res.Dist)
	assert.Equal(t, dijkstra.NoVertex, res.Prev[2])
}

func TestSolve_MaxDistanceZero(t *testing.T) {
	g := buildGraph(t, 2, []wEdge{{0, 1, 1}, {0, 1, 0}})

	res, err := dijkstra.Solve(g, 0, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	// The zero-weight parallel edge keeps 1 within the cap.
	assert.Equal(t, []int64{0, 0}, res.Dist)
}

func TestSolve_MaxDistanceDropsBeyondCap(t *testing.T) {
	// 1 lies past the cap, so its zero-weight edge to 2 is never relaxed.
	g := buildGraph(t, 4, []wEdge{{0, 1, 5}, {1, 2, 0}, {0, 3, 4}, {3, 2, 3}})

	res, err := dijkstra.Solve(g, 0, dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, dijkstra.Infinity, dijkstra.Infinity, 4}, res.Dist)
	assert.Equal(t, []int{dijkstra.NoVertex, dijkstra.NoVertex, dijkstra.NoVertex, 0}, res.Prev)

	res, err = dijkstra.Solve(g, 0, dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 5, 5, 4}, res.Dist)
	assert.Equal(t, 1, res.Prev[2])
}

func TestSolve_InfThresholdStopsHeavyEdge(t *testing.T) {
	g := buildGraph(t, 3, []wEdge{{0, 1, 2}, {1, 2, 4}, {0, 2, 10}})

	res, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Dist[2])

	res, err = dijkstra.Solve(g, 0, dijkstra.WithInfEdgeThreshold(4))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, res.Dist[2])
}

func TestSolve_HugeWeightsDoNotOverflow(t *testing.T) {
	g := buildGraph(t, 4, []wEdge{
		{0, 1, dijkstra.Infinity - 1},
		{1, 2, 5},
		{0, 3, dijkstra.Infinity},
	})

	res, err := dijkstra.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity-1, res.Dist[1])
	assert.False(t, res.Reachable(2))
	assert.False(t, res.Reachable(3))
}
