// Package core defines the immutable edge store and the city table that every
// route computation in routeplan is built on.
//
// The graph G = (V,E) is described by:
//
//   - a vertex count V ≥ 1; vertices are dense integer ids in [0, V)
//   - an ordered list of directed, weighted edges (From, To, Weight)
//   - an optional Cities table mapping id ↔ unique display name
//
// Why an immutable store?
//
//   - The engine caches per-source results. A store that can never change
//     makes every cached distance vector valid for the whole session.
//   - Deterministic enumeration: All() yields edges in construction order on
//     every call, so relaxation order and tie-breaks are reproducible.
//   - Fingerprint() gives collaborators a cheap way to tell whether a reloaded
//     edge list is really a different graph (and the cache must be dropped).
//
// Construction:
//
//	store, err := core.NewEdgeStore(3, []core.Edge{
//	    {From: 0, To: 1, Weight: 4},
//	    {From: 1, To: 2, Weight: 3},
//	    {From: 0, To: 2, Weight: 10},
//	})
//
// Negative weights are allowed. Duplicate (From, To) pairs are allowed and are
// kept as separate edges. Self-loops are allowed.
//
// Cities:
//
//	cities, err := core.NewCities([]string{"London", "Paris", "Berlin"})
//	edges, err := cities.Resolve([]core.Road{{From: "London", To: "Paris", Weight: 350}})
//
// Sentinels:
//
//	Unreachable – distance value meaning "no finite path" (math.MaxInt64).
//	NoVertex    – predecessor value meaning "none" (-1).
//
// Errors:
//
//	ErrInvalidGraph   – V < 1 or an edge endpoint outside [0, V).
//	ErrInvalidVertex  – a vertex id or city name that is not part of the graph.
//	ErrEmptyCityName  – a blank city name in the table.
//	ErrDuplicateCity  – the same city name given twice.
//
// Thread safety: EdgeStore and Cities are read-only after construction and
// safe for concurrent readers.
package core
