package bellmanford

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilStore indicates that NewEngine was called with a nil edge store.
	ErrNilStore = errors.New("bellmanford: edge store is nil")

	// ErrNegativeCycle indicates that a negative-weight cycle is reachable
	// from the queried source, so shortest distances are undefined.
	ErrNegativeCycle = errors.New("bellmanford: negative weight cycle reachable from source")
)

// NegativeCycleError reports a run that still relaxed an edge after V-1 passes.
//
// Distances holds the vector as it stood when detection happened. It is
// still improving and therefore only fit for diagnostic display.
type NegativeCycleError struct {
	Source    int     // queried source vertex
	Distances []int64 // unreliable in-progress distances
	Edge      int     // index of the first edge that still relaxed
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("%v: source %d, edge %d still relaxes", ErrNegativeCycle, e.Source, e.Edge)
}

// Unwrap lets errors.Is match ErrNegativeCycle.
func (e *NegativeCycleError) Unwrap() error { return ErrNegativeCycle }

// Result is the outcome of a successful Compute.
//
// Distances[v] is the shortest distance from Source to v, or core.Unreachable.
// Predecessors[v] is the vertex before v on one shortest path, or
// core.NoVertex for Source and unreached vertices. Predecessors is nil when
// the result was served from the cache, since the cache keeps distances only.
type Result struct {
	Source       int
	Distances    []int64
	Predecessors []int
	FromCache    bool
}

// Options configures an Engine.
//
// CacheEnabled – memoise successful runs per source (default true).
type Options struct {
	CacheEnabled bool
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithoutCache disables memoisation: every Compute runs the full algorithm
// and always returns predecessors.
func WithoutCache() Option {
	return func(o *Options) {
		o.CacheEnabled = false
	}
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		CacheEnabled: true,
	}
}
