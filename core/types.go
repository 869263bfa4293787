package core

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and lookups.
var (
	// ErrInvalidGraph indicates a vertex count below one or an edge whose
	// endpoint lies outside [0, V).
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrInvalidVertex indicates a vertex id or city name unknown to the graph.
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrEmptyCityName indicates a blank entry in a city table.
	ErrEmptyCityName = errors.New("core: city name is empty")

	// ErrDuplicateCity indicates the same name appears twice in a city table.
	ErrDuplicateCity = errors.New("core: duplicate city name")
)

const (
	// Unreachable is the distance sentinel for vertices with no finite path
	// from the source. It compares greater than every real distance.
	Unreachable int64 = math.MaxInt64

	// NoVertex marks "no predecessor" for the source and unreached vertices.
	NoVertex = -1
)

// Edge is a directed, weighted connection From → To.
type Edge struct {
	From   int   // source vertex id
	To     int   // destination vertex id
	Weight int64 // may be negative
}

// Road is an edge expressed with city names, as a collaborator collects it
// before resolving names to ids.
type Road struct {
	From   string
	To     string
	Weight int64
}

// IsFinite reports whether d is a real distance rather than Unreachable.
func IsFinite(d int64) bool { return d != Unreachable }
