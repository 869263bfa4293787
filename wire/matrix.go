package wire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/routeplan/core"
)

// ParseMatrix converts a V×V grid of distance cells into edges.
//
// Cell [i][j] is the road i → j. Empty cells, "INF" in any case, and a bare
// "0" mean no road; any other cell must be an integer, so a zero-weight road
// is written "+0". Edges come out in row-major order.
func ParseMatrix(cities *core.Cities, cells [][]string) ([]core.Edge, error) {
	n := cities.Len()
	if len(cells) != n {
		return nil, fmt.Errorf("%w: matrix has %d rows, want %d", ErrMalformed, len(cells), n)
	}

	var edges []core.Edge
	for i, row := range cells {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %s has %d cells, want %d", ErrMalformed, cities.Name(i), len(row), n)
		}
		for j, cell := range row {
			val := strings.ToUpper(strings.TrimSpace(cell))
			if val == "" || val == Infinity || val == "0" {
				continue
			}
			w, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: cell %s→%s: %q is not an integer", ErrMalformed, cities.Name(i), cities.Name(j), cell)
			}
			edges = append(edges, core.Edge{From: i, To: j, Weight: w})
		}
	}

	return edges, nil
}

// ZeroRoad is the cell FormatMatrix writes for a road of weight 0.
const ZeroRoad = "+0"

// FormatMatrix is the inverse of ParseMatrix for stores without duplicate
// pairs: a diagonal without a self-loop is "0", missing roads are "INF" and
// zero-weight roads are ZeroRoad. With duplicates the cheapest weight wins.
func FormatMatrix(store *core.EdgeStore) [][]string {
	n := store.VertexCount()
	cells := make([][]string, n)
	best := make([][]int64, n)
	for i := range cells {
		cells[i] = make([]string, n)
		best[i] = make([]int64, n)
		for j := range cells[i] {
			best[i][j] = core.Unreachable
		}
	}
	for _, e := range store.All() {
		if e.Weight < best[e.From][e.To] {
			best[e.From][e.To] = e.Weight
		}
	}
	for i := range cells {
		for j := range cells[i] {
			switch {
			case i == j && !core.IsFinite(best[i][j]):
				cells[i][j] = "0"
			case best[i][j] == 0:
				cells[i][j] = ZeroRoad
			default:
				cells[i][j] = FormatDistance(best[i][j])
			}
		}
	}

	return cells
}
