package wire

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/routeplan/bellmanford"
	"github.com/katalvlaran/routeplan/core"
)

// FormatDistance renders d, or "INF" for core.Unreachable.
func FormatDistance(d int64) string {
	if !core.IsFinite(d) {
		return Infinity
	}

	return strconv.FormatInt(d, 10)
}

// ParseDistance is the inverse of FormatDistance.
func ParseDistance(s string) (int64, error) {
	if s == Infinity {
		return core.Unreachable, nil
	}
	d, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad distance %q", ErrMalformed, s)
	}

	return d, nil
}

// WriteTable writes the distance table for source, one row per city in id order.
func WriteTable(w io.Writer, cities *core.Cities, source int, dist []int64) error {
	if len(dist) != cities.Len() {
		return fmt.Errorf("%w: %d distances for %d cities", ErrMalformed, len(dist), cities.Len())
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s %s\n", SourceHeader, cities.Name(source))
	fmt.Fprintln(bw, Rule)
	for i, d := range dist {
		fmt.Fprintf(bw, "%-15s %s\n", cities.Name(i), FormatDistance(d))
	}
	fmt.Fprintln(bw, Rule)

	return bw.Flush()
}

// WriteNegativeCycle writes the negative-cycle warning line.
func WriteNegativeCycle(w io.Writer) error {
	_, err := fmt.Fprintln(w, NegativeCycleWarning)

	return err
}

// ReadTable parses a response produced by WriteTable.
//
// Cities absent from the table stay core.Unreachable, except the source,
// which defaults to 0. Lines outside the ruled block are ignored, so trailing
// path lines are harmless. A negative-cycle warning yields
// bellmanford.ErrNegativeCycle.
func ReadTable(r io.Reader, cities *core.Cities) (int, []int64, error) {
	dist := make([]int64, cities.Len())
	for i := range dist {
		dist[i] = core.Unreachable
	}

	source := core.NoVertex
	inside := false
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "":
		case text == NegativeCycleWarning:
			return core.NoVertex, nil, bellmanford.ErrNegativeCycle
		case strings.HasPrefix(text, SourceHeader):
			id, err := cities.Index(strings.TrimSpace(strings.TrimPrefix(text, SourceHeader)))
			if err != nil {
				return core.NoVertex, nil, fmt.Errorf("wire: line %d: %w", line, err)
			}
			source = id
			inside = false
		case text == Rule:
			inside = !inside
		case inside:
			fields := strings.Fields(text)
			if len(fields) != 2 {
				return core.NoVertex, nil, malformed(line, "want \"city distance\", got %q", text)
			}
			id, err := cities.Index(fields[0])
			if err != nil {
				return core.NoVertex, nil, fmt.Errorf("wire: line %d: %w", line, err)
			}
			d, err := ParseDistance(fields[1])
			if err != nil {
				return core.NoVertex, nil, fmt.Errorf("wire: line %d: %w", line, err)
			}
			dist[id] = d
		}
	}
	if err := sc.Err(); err != nil {
		return core.NoVertex, nil, err
	}
	if source == core.NoVertex {
		return core.NoVertex, nil, malformed(line, "missing %q header", SourceHeader)
	}
	if !core.IsFinite(dist[source]) {
		dist[source] = 0
	}

	return source, dist, nil
}
