// Package core_test verifies EdgeStore construction, enumeration and the city table.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplan/core"
)

func triangle() []core.Edge {
	return []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 3},
		{From: 0, To: 2, Weight: 10},
	}
}

func TestNewEdgeStore_Valid(t *testing.T) {
	s, err := core.NewEdgeStore(3, triangle())
	require.NoError(t, err)
	assert.Equal(t, 3, s.VertexCount())
	assert.Equal(t, 3, s.EdgeCount())
	assert.Equal(t, core.Edge{From: 1, To: 2, Weight: 3}, s.Edge(1))
	assert.True(t, s.HasVertex(2))
	assert.False(t, s.HasVertex(3))
	assert.False(t, s.HasVertex(-1))
}

func TestNewEdgeStore_EdgeOutOfRange(t *testing.T) {
	_, err := core.NewEdgeStore(3, []core.Edge{{From: 0, To: 5, Weight: 1}})
	require.ErrorIs(t, err, core.ErrInvalidGraph)

	_, err = core.NewEdgeStore(3, []core.Edge{{From: -1, To: 0, Weight: 1}})
	require.ErrorIs(t, err, core.ErrInvalidGraph)
}

func TestNewEdgeStore_ZeroVertices(t *testing.T) {
	_, err := core.NewEdgeStore(0, nil)
	require.ErrorIs(t, err, core.ErrInvalidGraph)
}

func TestNewEdgeStore_NoEdges(t *testing.T) {
	s, err := core.NewEdgeStore(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.EdgeCount())
}

func TestNewEdgeStore_CopiesInput(t *testing.T) {
	edges := triangle()
	s, err := core.NewEdgeStore(3, edges)
	require.NoError(t, err)

	edges[0].Weight = 999
	assert.Equal(t, int64(4), s.Edge(0).Weight, "store must not alias the caller's slice")

	out := s.Edges()
	out[1].Weight = 999
	assert.Equal(t, int64(3), s.Edge(1).Weight, "Edges() must return a copy")
}

func TestEdgeStore_AllIsRestartable(t *testing.T) {
	s, err := core.NewEdgeStore(3, triangle())
	require.NoError(t, err)

	collect := func() []core.Edge {
		var got []core.Edge
		for _, e := range s.All() {
			got = append(got, e)
		}
		return got
	}
	first := collect()
	second := collect()
	assert.Equal(t, triangle(), first)
	assert.Equal(t, first, second)
}

func TestEdgeStore_AllStopsEarly(t *testing.T) {
	s, err := core.NewEdgeStore(3, triangle())
	require.NoError(t, err)

	var seen []int
	for i := range s.All() {
		seen = append(seen, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestEdgeStore_DuplicateEdgesKept(t *testing.T) {
	s, err := core.NewEdgeStore(2, []core.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 0, To: 1, Weight: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, s.EdgeCount())
}

func TestEdgeStore_Fingerprint(t *testing.T) {
	a, err := core.NewEdgeStore(3, triangle())
	require.NoError(t, err)
	b, err := core.NewEdgeStore(3, triangle())
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	changed := triangle()
	changed[2].Weight = 11
	c, err := core.NewEdgeStore(3, changed)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	wider, err := core.NewEdgeStore(4, triangle())
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), wider.Fingerprint())
}

func TestIsFinite(t *testing.T) {
	assert.True(t, core.IsFinite(0))
	assert.True(t, core.IsFinite(-7))
	assert.False(t, core.IsFinite(core.Unreachable))
}

func TestCities_Lookup(t *testing.T) {
	c, err := core.NewCities([]string{"London", "Paris", "paris"})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	id, err := c.Index("Paris")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	id, err = c.Index("paris")
	require.NoError(t, err)
	assert.Equal(t, 2, id, "lookups are case-sensitive")

	_, err = c.Index("Rome")
	require.ErrorIs(t, err, core.ErrInvalidVertex)

	assert.Equal(t, "London", c.Name(0))
	assert.Equal(t, "", c.Name(3))
}

func TestCities_Rejects(t *testing.T) {
	_, err := core.NewCities([]string{"A", " "})
	require.ErrorIs(t, err, core.ErrEmptyCityName)

	_, err = core.NewCities([]string{"A", "B", "A"})
	require.ErrorIs(t, err, core.ErrDuplicateCity)
}

func TestCities_Resolve(t *testing.T) {
	c, err := core.NewCities([]string{"A", "B", "C"})
	require.NoError(t, err)

	edges, err := c.Resolve([]core.Road{{From: "A", To: "B", Weight: 4}, {From: "B", To: "C", Weight: -2}})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 4}, {From: 1, To: 2, Weight: -2}}, edges)

	_, err = c.Resolve([]core.Road{{From: "A", To: "Z", Weight: 1}})
	require.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestCities_Equal(t *testing.T) {
	a, _ := core.NewCities([]string{"A", "B"})
	b, _ := core.NewCities([]string{"A", "B"})
	c, _ := core.NewCities([]string{"B", "A"})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
