package wire

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/routeplan/core"
)

// WriteResultsCSV exports a distance vector as
// "Source,Destination,Distance" rows, INF for unreachable cities.
func WriteResultsCSV(w io.Writer, cities *core.Cities, source int, dist []int64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Source", "Destination", "Distance"}); err != nil {
		return err
	}
	src := cities.Name(source)
	for i, d := range dist {
		if err := cw.Write([]string{src, cities.Name(i), FormatDistance(d)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteRoadsCSV exports the store as "Source,Destination,Weight" rows in
// store order.
func WriteRoadsCSV(w io.Writer, cities *core.Cities, store *core.EdgeStore) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Source", "Destination", "Weight"}); err != nil {
		return err
	}
	for _, e := range store.All() {
		row := []string{cities.Name(e.From), cities.Name(e.To), strconv.FormatInt(e.Weight, 10)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
