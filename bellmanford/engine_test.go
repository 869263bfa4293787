// Package bellmanford_test contains unit tests for the Bellman-Ford engine.
// They cover validation, the relaxed fixed point, caching, negative-cycle
// detection and the overflow guard.
package bellmanford_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplan/bellmanford"
	"github.com/katalvlaran/routeplan/core"
)

const inf = core.Unreachable

func mustStore(t *testing.T, n int, edges ...core.Edge) *core.EdgeStore {
	t.Helper()
	s, err := core.NewEdgeStore(n, edges)
	require.NoError(t, err)
	return s
}

func mustEngine(t *testing.T, s *core.EdgeStore, opts ...bellmanford.Option) *bellmanford.Engine {
	t.Helper()
	e, err := bellmanford.NewEngine(s, opts...)
	require.NoError(t, err)
	return e
}

// assertFixedPoint checks dist[v] <= dist[u]+w for every edge with a finite tail.
func assertFixedPoint(t *testing.T, s *core.EdgeStore, dist []int64) {
	t.Helper()
	for i, e := range s.All() {
		if dist[e.From] == inf {
			continue
		}
		assert.LessOrEqualf(t, dist[e.To], dist[e.From]+e.Weight, "edge %d (%d→%d) still relaxes", i, e.From, e.To)
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNewEngine_NilStore(t *testing.T) {
	_, err := bellmanford.NewEngine(nil)
	require.ErrorIs(t, err, bellmanford.ErrNilStore)
}

func TestCompute_InvalidSource(t *testing.T) {
	e := mustEngine(t, mustStore(t, 3))

	_, err := e.Compute(3)
	require.ErrorIs(t, err, core.ErrInvalidVertex)

	_, err = e.Compute(-1)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestCompute_Triangle(t *testing.T) {
	// A→B(4), B→C(3), A→C(10)
	s := mustStore(t, 3,
		core.Edge{From: 0, To: 1, Weight: 4},
		core.Edge{From: 1, To: 2, Weight: 3},
		core.Edge{From: 0, To: 2, Weight: 10},
	)
	res, err := mustEngine(t, s).Compute(0)
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 4, 7}, res.Distances)
	assert.Equal(t, []int{core.NoVertex, 0, 1}, res.Predecessors)
	assert.False(t, res.FromCache)
	assert.Equal(t, 0, res.Source)
	assertFixedPoint(t, s, res.Distances)
}

func TestCompute_NegativeEdgesNoCycle(t *testing.T) {
	// 0→1(5), 0→2(2), 2→1(-4), 1→3(1)
	s := mustStore(t, 4,
		core.Edge{From: 0, To: 1, Weight: 5},
		core.Edge{From: 0, To: 2, Weight: 2},
		core.Edge{From: 2, To: 1, Weight: -4},
		core.Edge{From: 1, To: 3, Weight: 1},
	)
	res, err := mustEngine(t, s).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, -2, 2, -1}, res.Distances)
	assert.Equal(t, 2, res.Predecessors[1])
	assertFixedPoint(t, s, res.Distances)
}

func TestCompute_EdgesInReverseOrderStillConverge(t *testing.T) {
	// Chain 0→1→2→3→4 listed backwards needs all V-1 passes.
	s := mustStore(t, 5,
		core.Edge{From: 3, To: 4, Weight: 1},
		core.Edge{From: 2, To: 3, Weight: 1},
		core.Edge{From: 1, To: 2, Weight: 1},
		core.Edge{From: 0, To: 1, Weight: 1},
	)
	res, err := mustEngine(t, s).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, res.Distances)
}

func TestCompute_UnreachableVertex(t *testing.T) {
	// D has no incoming edge.
	s := mustStore(t, 4,
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 2, Weight: 1},
		core.Edge{From: 3, To: 0, Weight: 1},
	)
	res, err := mustEngine(t, s).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, inf, res.Distances[3])
	assert.Equal(t, core.NoVertex, res.Predecessors[3])
}

func TestCompute_SourceWithoutOutgoingEdges(t *testing.T) {
	s := mustStore(t, 3, core.Edge{From: 1, To: 2, Weight: 1})
	res, err := mustEngine(t, s).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, inf, inf}, res.Distances)
}

func TestCompute_SingleVertex(t *testing.T) {
	res, err := mustEngine(t, mustStore(t, 1)).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, res.Distances)
	assert.Equal(t, []int{core.NoVertex}, res.Predecessors)
}

func TestCompute_DuplicateEdgesTakeCheapest(t *testing.T) {
	s := mustStore(t, 2,
		core.Edge{From: 0, To: 1, Weight: 9},
		core.Edge{From: 0, To: 1, Weight: 2},
		core.Edge{From: 0, To: 1, Weight: 5},
	)
	res, err := mustEngine(t, s).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Distances[1])
}

func TestCompute_SourceDistanceZeroForEverySource(t *testing.T) {
	s := mustStore(t, 4,
		core.Edge{From: 0, To: 1, Weight: 3},
		core.Edge{From: 1, To: 2, Weight: -1},
		core.Edge{From: 2, To: 3, Weight: 2},
		core.Edge{From: 3, To: 0, Weight: 4},
	)
	e := mustEngine(t, s)
	for src := 0; src < s.VertexCount(); src++ {
		res, err := e.Compute(src)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Distances[src], "source %d", src)
		assertFixedPoint(t, s, res.Distances)
	}
}

// ------------------------------------------------------------------------
// 3. Cache behaviour
// ------------------------------------------------------------------------

func TestCompute_SecondCallServedFromCache(t *testing.T) {
	s := mustStore(t, 3,
		core.Edge{From: 0, To: 1, Weight: 4},
		core.Edge{From: 1, To: 2, Weight: 3},
	)
	e := mustEngine(t, s)

	first, err := e.Compute(0)
	require.NoError(t, err)
	second, err := e.Compute(0)
	require.NoError(t, err)

	assert.False(t, first.FromCache)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Distances, second.Distances)
	assert.Nil(t, second.Predecessors, "cache keeps distances only")
	assert.Equal(t, 1, e.Cache().Len())
}

func TestCompute_CallerCannotCorruptCache(t *testing.T) {
	s := mustStore(t, 2, core.Edge{From: 0, To: 1, Weight: 4})
	e := mustEngine(t, s)

	first, err := e.Compute(0)
	require.NoError(t, err)
	first.Distances[1] = -100

	second, err := e.Compute(0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), second.Distances[1])

	second.Distances[1] = -200
	third, err := e.Compute(0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), third.Distances[1])
}

func TestCompute_WithoutCache(t *testing.T) {
	s := mustStore(t, 2, core.Edge{From: 0, To: 1, Weight: 4})
	e := mustEngine(t, s, bellmanford.WithoutCache())

	for i := 0; i < 2; i++ {
		res, err := e.Compute(0)
		require.NoError(t, err)
		assert.False(t, res.FromCache)
		assert.NotNil(t, res.Predecessors)
	}
	assert.Equal(t, 0, e.Cache().Len())
}

func TestEngine_Reset(t *testing.T) {
	s := mustStore(t, 2, core.Edge{From: 0, To: 1, Weight: 4})
	e := mustEngine(t, s)

	_, err := e.Compute(0)
	require.NoError(t, err)
	_, err = e.Compute(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, e.Cache().Sources())

	e.Reset()
	assert.Equal(t, 0, e.Cache().Len())

	res, err := e.Compute(0)
	require.NoError(t, err)
	assert.False(t, res.FromCache)
}

// ------------------------------------------------------------------------
// 4. Negative cycles
// ------------------------------------------------------------------------

func TestCompute_NegativeTwoCycle(t *testing.T) {
	// 0→1(1), 1→2(-5), 2→1(3): cycle 1↔2 weighs -2.
	s := mustStore(t, 3,
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 2, Weight: -5},
		core.Edge{From: 2, To: 1, Weight: 3},
	)
	e := mustEngine(t, s)

	res, err := e.Compute(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bellmanford.ErrNegativeCycle))
	assert.Nil(t, res.Distances)

	var nc *bellmanford.NegativeCycleError
	require.ErrorAs(t, err, &nc)
	assert.Equal(t, 0, nc.Source)
	assert.Len(t, nc.Distances, 3)
	assert.Equal(t, 0, e.Cache().Len(), "negative-cycle runs are never cached")

	// Asking again recomputes and fails again.
	_, err = e.Compute(0)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
	assert.Equal(t, 0, e.Cache().Len())
}

func TestCompute_NegativeCycleUnreachableFromSource(t *testing.T) {
	// The cycle 1↔2 exists but 0 cannot reach it.
	s := mustStore(t, 3,
		core.Edge{From: 1, To: 2, Weight: -5},
		core.Edge{From: 2, To: 1, Weight: 3},
	)
	e := mustEngine(t, s)

	res, err := e.Compute(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, inf, inf}, res.Distances)

	_, err = e.Compute(1)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
	assert.Equal(t, []int{0}, e.Cache().Sources())
}

func TestCompute_NegativeSelfLoop(t *testing.T) {
	s := mustStore(t, 2,
		core.Edge{From: 0, To: 1, Weight: 2},
		core.Edge{From: 1, To: 1, Weight: -1},
	)
	_, err := mustEngine(t, s).Compute(0)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestNegativeCycleError_Message(t *testing.T) {
	err := &bellmanford.NegativeCycleError{Source: 2, Edge: 5}
	assert.Contains(t, err.Error(), "negative weight cycle")
	assert.Contains(t, err.Error(), "source 2")
}

// ------------------------------------------------------------------------
// 5. Overflow guard
// ------------------------------------------------------------------------

func TestCompute_OverflowIsNoImprovement(t *testing.T) {
	// 0→1 near MaxInt64, then 1→2 would overflow.
	s := mustStore(t, 3,
		core.Edge{From: 0, To: 1, Weight: math.MaxInt64 - 10},
		core.Edge{From: 1, To: 2, Weight: 100},
	)
	res, err := mustEngine(t, s).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-10), res.Distances[1])
	assert.Equal(t, inf, res.Distances[2], "overflowing relaxation must be skipped")
}

func TestCompute_NegativeOverflowIsNoImprovement(t *testing.T) {
	s := mustStore(t, 3,
		core.Edge{From: 0, To: 1, Weight: math.MinInt64 + 5},
		core.Edge{From: 1, To: 2, Weight: -10},
	)
	res, err := mustEngine(t, s).Compute(0)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64+5), res.Distances[1])
	assert.Equal(t, inf, res.Distances[2])
}
