package wire

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/route"
)

// PathArrow separates city names in a rendered path.
const PathArrow = " -> "

// FormatPath renders the city sequence of p, e.g. "A -> B -> C".
func FormatPath(cities *core.Cities, p route.Path) string {
	parts := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		parts[i] = cities.Name(v)
	}

	return strings.Join(parts, PathArrow)
}

// WritePaths writes one line per path:
//
//	Path to C: A -> B -> C (7)
//	Path to D: unreachable
//	Path to E: no path found (distance 5)
//
// followed by a warning line for every path whose edge sum differs from its
// reported distance.
func WritePaths(w io.Writer, cities *core.Cities, paths []route.Path) error {
	bw := bufio.NewWriter(w)
	for _, p := range paths {
		dest := cities.Name(p.Destination)
		if p.Kind == route.Unreachable {
			fmt.Fprintf(bw, "Path to %s: unreachable\n", dest)
			continue
		}
		if p.Kind == route.Failed {
			fmt.Fprintf(bw, "Path to %s: no path found (distance %d)\n", dest, p.Distance)
			continue
		}
		fmt.Fprintf(bw, "Path to %s: %s (%d)\n", dest, FormatPath(cities, p), p.Distance)
		if p.Mismatch {
			fmt.Fprintf(bw, "Warning: path to %s sums to %d but reported distance is %d\n", dest, p.Total, p.Distance)
		}
	}

	return bw.Flush()
}
