// Package bellmanford implements the Bellman-Ford relaxation engine.
//
// Notes on implementation choices:
//
//   - Exactly V-1 full passes over the edge store, in store order, with no
//     early exit.
//   - One extra detection pass. The first edge that still relaxes proves a
//     reachable negative cycle.
//   - Relaxation skips sums that would overflow int64.
//   - Only successful runs reach the cache.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/routeplan/core"
)

// Engine answers shortest-path queries over one immutable edge store.
// The cache lives and dies with the Engine.
type Engine struct {
	store   *core.EdgeStore
	options Options
	cache   *Cache
}

// NewEngine binds an engine to store.
//
// Options customization:
//
//   - WithoutCache(): never memoise; every Compute runs in full.
func NewEngine(store *core.EdgeStore, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		store:   store,
		options: cfg,
		cache:   NewCache(),
	}, nil
}

// Store returns the edge store the engine was built on.
func (e *Engine) Store() *core.EdgeStore { return e.store }

// Cache exposes the engine's cache for diagnostics.
func (e *Engine) Cache() *Cache { return e.cache }

// Reset discards every cached result.
func (e *Engine) Reset() { e.cache.Clear() }

// Compute returns shortest distances from source to every vertex.
//
// Steps:
//  1. Validate source ∈ [0, V) (core.ErrInvalidVertex).
//  2. Serve from the cache if present (FromCache=true, Predecessors=nil).
//  3. Run V-1 relaxation passes.
//  4. Run one detection pass; any relaxation → *NegativeCycleError.
//  5. Cache the distances and return them with predecessors.
//
// Complexity:
//
//   - Time:  O(V·E) uncached, O(V) cached.
//   - Space: O(V).
func (e *Engine) Compute(source int) (Result, error) {
	// 1) Validate source.
	if !e.store.HasVertex(source) {
		return Result{}, fmt.Errorf("%w: source %d outside [0, %d)", core.ErrInvalidVertex, source, e.store.VertexCount())
	}

	// 2) Cached answer, if any.
	if e.options.CacheEnabled {
		if dist, ok := e.cache.Get(source); ok {
			return Result{Source: source, Distances: dist, FromCache: true}, nil
		}
	}

	// 3) Fresh run.
	r := newRunner(e.store, source)
	r.relaxAll()

	// 4) Detection pass.
	if idx, found := r.detect(); found {
		return Result{}, &NegativeCycleError{
			Source:    source,
			Distances: r.dist,
			Edge:      idx,
		}
	}

	// 5) Remember and return.
	if e.options.CacheEnabled {
		e.cache.Put(source, r.dist)
	}

	return Result{
		Source:       source,
		Distances:    r.dist,
		Predecessors: r.prev,
	}, nil
}

// runner holds the mutable state for a single Bellman-Ford execution.
type runner struct {
	store *core.EdgeStore // read-only input
	dist  []int64         // vertex → best known distance from source
	prev  []int           // vertex → predecessor on that path
}

// newRunner sets dist[v]=+∞, prev[v]=none for all v, then dist[source]=0.
func newRunner(store *core.EdgeStore, source int) *runner {
	n := store.VertexCount()
	r := &runner{
		store: store,
		dist:  make([]int64, n),
		prev:  make([]int, n),
	}
	for v := 0; v < n; v++ {
		r.dist[v] = core.Unreachable
		r.prev[v] = core.NoVertex
	}
	r.dist[source] = 0

	return r
}

// relaxAll performs exactly V-1 full passes over the edge store.
func (r *runner) relaxAll() {
	passes := r.store.VertexCount() - 1
	for pass := 0; pass < passes; pass++ {
		for _, e := range r.store.All() {
			if nd, ok := r.improves(e); ok {
				r.dist[e.To] = nd
				r.prev[e.To] = e.From
			}
		}
	}
}

// detect makes one more pass and returns the index of the first edge that
// still relaxes. It does not modify dist.
func (r *runner) detect() (int, bool) {
	for i, e := range r.store.All() {
		if _, ok := r.improves(e); ok {
			return i, true
		}
	}

	return 0, false
}

// improves reports whether relaxing e lowers dist[e.To], and the new value.
// An unreached tail or an overflowing sum never improves anything.
func (r *runner) improves(e core.Edge) (int64, bool) {
	du := r.dist[e.From]
	if !core.IsFinite(du) {
		return 0, false
	}
	nd, ok := addDistance(du, e.Weight)
	if !ok || nd >= r.dist[e.To] {
		return 0, false
	}

	return nd, true
}

// addDistance returns d+w, or ok=false if the sum leaves the int64 range.
func addDistance(d, w int64) (int64, bool) {
	if w > 0 && d > math.MaxInt64-w {
		return 0, false
	}
	if w < 0 && d < math.MinInt64-w {
		return 0, false
	}

	return d + w, true
}
