package route

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/routeplan/core"
)

// Reconstruct rebuilds the path source → destination.
//
// pred selects the mode: a non-nil predecessor vector uses FromPredecessors,
// nil falls back to FromDistances over the store's edges.
func Reconstruct(store *core.EdgeStore, source, destination int, dist []int64, pred []int) (Path, error) {
	if pred != nil {
		return FromPredecessors(store, source, destination, dist, pred)
	}

	return FromDistances(store, source, destination, dist)
}

// All reconstructs a path to every vertex except source, in id order.
// The first failing destination aborts the walk with its error.
func All(store *core.EdgeStore, source int, dist []int64, pred []int) ([]Path, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	paths := make([]Path, 0, store.VertexCount()-1)
	for v := 0; v < store.VertexCount(); v++ {
		if v == source {
			continue
		}
		p, err := Reconstruct(store, source, v, dist, pred)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	return paths, nil
}

// Collect is All without the abort: a destination whose walk fails with
// ErrReconstructionFailed becomes a Failed path and the others are still
// rebuilt. Invalid input (nil store, wrong vector length, bad source) is
// still returned as an error.
func Collect(store *core.EdgeStore, source int, dist []int64, pred []int) ([]Path, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	paths := make([]Path, 0, store.VertexCount()-1)
	for v := 0; v < store.VertexCount(); v++ {
		if v == source {
			continue
		}
		p, err := Reconstruct(store, source, v, dist, pred)
		switch {
		case errors.Is(err, ErrReconstructionFailed):
			p = Path{Kind: Failed, Source: source, Destination: v, Distance: dist[v], Err: err}
		case err != nil:
			return nil, err
		}
		paths = append(paths, p)
	}

	return paths, nil
}

// FromPredecessors follows pred links back from destination.
//
// The weight of hop p → v is the smallest weight among the store's p → v
// edges, which is the edge that set dist[v] on a converged run.
//
// Complexity: O(E + V).
func FromPredecessors(store *core.EdgeStore, source, destination int, dist []int64, pred []int) (Path, error) {
	if err := validate(store, source, destination, dist); err != nil {
		return Path{}, err
	}
	if len(pred) != store.VertexCount() {
		return Path{}, fmt.Errorf("%w: predecessors has %d entries, want %d", ErrDimensionMismatch, len(pred), store.VertexCount())
	}
	if p, done := trivial(source, destination, dist); done {
		return p, nil
	}

	cheapest := cheapestEdges(store)
	limit := 2 * store.VertexCount()

	w := walker{source: source, destination: destination}
	cur := destination
	for cur != source {
		if w.steps() >= limit {
			return Path{}, fmt.Errorf("%w: no source after %d steps from %d", ErrReconstructionFailed, limit, destination)
		}
		p := pred[cur]
		if !store.HasVertex(p) {
			return Path{}, fmt.Errorf("%w: vertex %d has no predecessor", ErrReconstructionFailed, cur)
		}
		weight, ok := cheapest[[2]int{p, cur}]
		if !ok {
			return Path{}, fmt.Errorf("%w: no edge %d→%d for predecessor link", ErrReconstructionFailed, p, cur)
		}
		w.push(p, weight)
		cur = p
	}

	return w.finish(dist), nil
}

// FromDistances re-derives the path using only distances and the edge set.
//
// At each step the store is scanned in order for the first edge
// (p, current, w) with p != current, dist[p] finite and
// dist[p] + w == dist[current].
//
// Complexity: O(V·E).
func FromDistances(store *core.EdgeStore, source, destination int, dist []int64) (Path, error) {
	if err := validate(store, source, destination, dist); err != nil {
		return Path{}, err
	}
	if p, done := trivial(source, destination, dist); done {
		return p, nil
	}

	limit := 2 * store.VertexCount()

	w := walker{source: source, destination: destination}
	cur := destination
	for cur != source {
		if w.steps() >= limit {
			return Path{}, fmt.Errorf("%w: no source after %d steps from %d", ErrReconstructionFailed, limit, destination)
		}
		p, weight, ok := supportingEdge(store, dist, cur)
		if !ok {
			return Path{}, fmt.Errorf("%w: no edge into %d matches its distance", ErrReconstructionFailed, cur)
		}
		w.push(p, weight)
		cur = p
	}

	return w.finish(dist), nil
}

// supportingEdge returns the tail and weight of the first edge into v that
// accounts exactly for dist[v].
func supportingEdge(store *core.EdgeStore, dist []int64, v int) (int, int64, bool) {
	for _, e := range store.All() {
		if e.To != v || e.From == v || !core.IsFinite(dist[e.From]) {
			continue
		}
		if sum, ok := add(dist[e.From], e.Weight); ok && sum == dist[v] {
			return e.From, e.Weight, true
		}
	}

	return core.NoVertex, 0, false
}

// cheapestEdges maps every (from, to) pair to its smallest edge weight.
func cheapestEdges(store *core.EdgeStore) map[[2]int]int64 {
	m := make(map[[2]int]int64, store.EdgeCount())
	for _, e := range store.All() {
		k := [2]int{e.From, e.To}
		if w, ok := m[k]; !ok || e.Weight < w {
			m[k] = e.Weight
		}
	}

	return m
}

func validate(store *core.EdgeStore, source, destination int, dist []int64) error {
	if store == nil {
		return ErrNilStore
	}
	if len(dist) != store.VertexCount() {
		return fmt.Errorf("%w: distances has %d entries, want %d", ErrDimensionMismatch, len(dist), store.VertexCount())
	}
	if !store.HasVertex(source) {
		return fmt.Errorf("%w: source %d", core.ErrInvalidVertex, source)
	}
	if !store.HasVertex(destination) {
		return fmt.Errorf("%w: destination %d", core.ErrInvalidVertex, destination)
	}

	return nil
}

// trivial handles the unreachable placeholder and source == destination.
func trivial(source, destination int, dist []int64) (Path, bool) {
	if !core.IsFinite(dist[destination]) {
		return Path{
			Kind:        Unreachable,
			Source:      source,
			Destination: destination,
			Vertices:    []int{source, destination},
			Total:       0,
			Distance:    core.Unreachable,
		}, true
	}
	if source == destination {
		return Path{
			Kind:        Found,
			Source:      source,
			Destination: destination,
			Vertices:    []int{source},
			Weights:     []int64{},
			Distance:    dist[destination],
			Mismatch:    dist[destination] != 0,
		}, true
	}

	return Path{}, false
}

// walker collects a path backwards, destination first.
type walker struct {
	source, destination int
	back                []int   // vertices before destination, nearest first
	weights             []int64 // hop weights, nearest first
}

func (w *walker) steps() int { return len(w.weights) }

func (w *walker) push(v int, weight int64) {
	w.back = append(w.back, v)
	w.weights = append(w.weights, weight)
}

// finish reverses the collected hops into source → destination order and
// verifies the summed weight.
func (w *walker) finish(dist []int64) Path {
	vertices := make([]int, 0, len(w.back)+1)
	vertices = append(vertices, w.back...)
	slices.Reverse(vertices)
	vertices = append(vertices, w.destination)

	weights := slices.Clone(w.weights)
	slices.Reverse(weights)

	var total int64
	for _, x := range weights {
		total += x
	}

	return Path{
		Kind:        Found,
		Source:      w.source,
		Destination: w.destination,
		Vertices:    vertices,
		Weights:     weights,
		Total:       total,
		Distance:    dist[w.destination],
		Mismatch:    total != dist[w.destination],
	}
}

// add returns a+b, or ok=false on int64 overflow.
func add(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}
