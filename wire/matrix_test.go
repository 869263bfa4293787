package wire_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/wire"
)

func TestParseMatrix(t *testing.T) {
	cities := mustCities(t, "A", "B", "C")
	cells := [][]string{
		{"0", " 4 ", "inf"},
		{"", "0", "-3"},
		{"Inf", "2", "INF"},
	}

	edges, err := wire.ParseMatrix(cities, cells)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: -3},
		{From: 2, To: 1, Weight: 2},
	}, edges)
}

func TestParseMatrix_ZeroOffDiagonalMeansNoRoad(t *testing.T) {
	cities := mustCities(t, "A", "B")
	edges, err := wire.ParseMatrix(cities, [][]string{{"0", "0"}, {"0", "0"}})
	require.NoError(t, err)
	assert.Empty(t, edges)

	edges, err = wire.ParseMatrix(cities, [][]string{{"0", wire.ZeroRoad}, {"0", "0"}})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 0}}, edges)
}

func TestParseMatrix_Errors(t *testing.T) {
	cities := mustCities(t, "A", "B")

	_, err := wire.ParseMatrix(cities, [][]string{{"0", "1"}})
	assert.ErrorIs(t, err, wire.ErrMalformed)

	_, err = wire.ParseMatrix(cities, [][]string{{"0", "1"}, {"0"}})
	assert.ErrorIs(t, err, wire.ErrMalformed)

	_, err = wire.ParseMatrix(cities, [][]string{{"0", "1.5"}, {"0", "0"}})
	assert.ErrorIs(t, err, wire.ErrMalformed)
	assert.Contains(t, err.Error(), "A→B")
}

func TestFormatMatrix_RoundTrip(t *testing.T) {
	cities := mustCities(t, "A", "B", "C")
	store, err := core.NewEdgeStore(3, []core.Edge{
		{From: 0, To: 1, Weight: 9},
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: -3},
		{From: 2, To: 0, Weight: 0},
		{From: 2, To: 2, Weight: 0},
	})
	require.NoError(t, err)

	cells := wire.FormatMatrix(store)
	assert.Equal(t, [][]string{
		{"0", "4", "INF"},
		{"INF", "0", "-3"},
		{wire.ZeroRoad, "INF", wire.ZeroRoad},
	}, cells)

	edges, err := wire.ParseMatrix(cities, cells)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: -3},
		{From: 2, To: 0, Weight: 0},
		{From: 2, To: 2, Weight: 0},
	}, edges)
}

func TestCSVExports(t *testing.T) {
	cities := mustCities(t, "A", "B")
	store, err := core.NewEdgeStore(2, []core.Edge{{From: 0, To: 1, Weight: 6}})
	require.NoError(t, err)

	var res bytes.Buffer
	require.NoError(t, wire.WriteResultsCSV(&res, cities, 1, []int64{core.Unreachable, 0}))
	assert.Equal(t, "Source,Destination,Distance\nB,A,INF\nB,B,0\n", res.String())

	var roads bytes.Buffer
	require.NoError(t, wire.WriteRoadsCSV(&roads, cities, store))
	assert.Equal(t, "Source,Destination,Weight\nA,B,6\n", roads.String())
}
