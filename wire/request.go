package wire

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/routeplan/core"
)

// maxCount caps both header counts. Slices grow with the lines actually
// read, so a large header alone allocates nothing.
const maxCount = 1 << 20

// lineReader yields non-blank, trimmed lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

// next returns the next non-blank line. io.ErrUnexpectedEOF is wrapped when
// the input ends first.
func (lr *lineReader) next(what string) (string, error) {
	for lr.sc.Scan() {
		lr.line++
		if text := strings.TrimSpace(lr.sc.Text()); text != "" {
			return text, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("%w: line %d: expected %s: %w", ErrMalformed, lr.line+1, what, io.ErrUnexpectedEOF)
}

// ReadRequest decodes a request. Unknown city names in roads or as the
// source wrap core.ErrInvalidVertex; grammar violations wrap ErrMalformed.
func ReadRequest(r io.Reader) (*Request, error) {
	lr := newLineReader(r)

	head, err := lr.next("vertex and edge counts")
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(head)
	if len(fields) != 2 {
		return nil, malformed(lr.line, "want \"V E\", got %q", head)
	}
	v, errV := strconv.Atoi(fields[0])
	e, errE := strconv.Atoi(fields[1])
	if errV != nil || errE != nil || v < 1 || e < 0 {
		return nil, malformed(lr.line, "bad counts %q", head)
	}
	if v > maxCount || e > maxCount {
		return nil, malformed(lr.line, "counts %q exceed %d", head, maxCount)
	}

	names := make([]string, 0, min(v, 1024))
	for len(names) < v {
		name, err := lr.next("city name")
		if err != nil {
			return nil, err
		}
		if strings.ContainsAny(name, " \t") {
			return nil, malformed(lr.line, "city name %q contains whitespace", name)
		}
		names = append(names, name)
	}
	cities, err := core.NewCities(names)
	if err != nil {
		return nil, fmt.Errorf("wire: line %d: %w", lr.line, err)
	}

	edges := make([]core.Edge, 0, min(e, 1024))
	for len(edges) < e {
		text, err := lr.next("road")
		if err != nil {
			return nil, err
		}
		edge, err := parseRoad(cities, text)
		if err != nil {
			return nil, fmt.Errorf("wire: line %d: %w", lr.line, err)
		}
		edges = append(edges, edge)
	}

	srcName, err := lr.next("source city")
	if err != nil {
		return nil, err
	}
	source, err := cities.Index(srcName)
	if err != nil {
		return nil, fmt.Errorf("wire: line %d: %w", lr.line, err)
	}

	store, err := core.NewEdgeStore(v, edges)
	if err != nil {
		return nil, err
	}

	return &Request{Cities: cities, Store: store, Source: source}, nil
}

func parseRoad(cities *core.Cities, text string) (core.Edge, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return core.Edge{}, fmt.Errorf("%w: want \"from to weight\", got %q", ErrMalformed, text)
	}
	weight, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: bad weight %q", ErrMalformed, fields[2])
	}
	edges, err := cities.Resolve([]core.Road{{From: fields[0], To: fields[1], Weight: weight}})
	if err != nil {
		return core.Edge{}, err
	}

	return edges[0], nil
}

// WriteRequest encodes a request in the grammar ReadRequest accepts.
func WriteRequest(w io.Writer, cities *core.Cities, store *core.EdgeStore, source int) error {
	if cities.Len() != store.VertexCount() {
		return fmt.Errorf("%w: %d cities for %d vertices", ErrMalformed, cities.Len(), store.VertexCount())
	}
	if !store.HasVertex(source) {
		return fmt.Errorf("%w: source %d", core.ErrInvalidVertex, source)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", store.VertexCount(), store.EdgeCount())
	for _, name := range cities.Names() {
		fmt.Fprintln(bw, name)
	}
	for _, e := range store.All() {
		fmt.Fprintf(bw, "%s %s %d\n", cities.Name(e.From), cities.Name(e.To), e.Weight)
	}
	fmt.Fprintln(bw, cities.Name(source))

	return bw.Flush()
}
