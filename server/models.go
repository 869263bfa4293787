package server

// GraphRequest is the body of PUT /api/graph.
type GraphRequest struct {
	Cities []string      `json:"cities"`
	Roads  []RoadPayload `json:"roads"`
}

// MatrixRequest is the body of PUT /api/graph/matrix. Cells[i][j] is the
// road Cities[i] → Cities[j]; "", "INF" and "0" mean no road.
type MatrixRequest struct {
	Cities []string   `json:"cities"`
	Cells  [][]string `json:"cells"`
}

// RoadPayload is one directed road.
type RoadPayload struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// GraphSummary describes the loaded graph.
type GraphSummary struct {
	Cities        []string `json:"cities"`
	Roads         int      `json:"roads"`
	Fingerprint   string   `json:"fingerprint"`
	CachedSources []string `json:"cached_sources"`
	Reused        bool     `json:"reused,omitempty"`
}

// MatrixResponse is the loaded graph as a distance matrix.
type MatrixResponse struct {
	Cities []string   `json:"cities"`
	Cells  [][]string `json:"cells"`
}

// CityDistance is one entry of a distance vector. Distance is nil when the
// city is unreachable.
type CityDistance struct {
	City     string `json:"city"`
	Distance *int64 `json:"distance"`
}

// RoutePayload is one reconstructed path.
type RoutePayload struct {
	Destination string   `json:"destination"`
	Reachable   bool     `json:"reachable"`
	Distance    *int64   `json:"distance,omitempty"`
	Path        []string `json:"path,omitempty"`
	Weights     []int64  `json:"weights,omitempty"`
	Total       *int64   `json:"total,omitempty"`
	Mismatch    bool     `json:"mismatch,omitempty"`
	// Error is "reconstruction_failed" when Distance is finite but no
	// city sequence could be rebuilt for it.
	Error string `json:"error,omitempty"`
}

// RoutesResponse is returned by GET /api/routes/{source}.
type RoutesResponse struct {
	Source    string         `json:"source"`
	Cached    bool           `json:"cached"`
	Distances []CityDistance `json:"distances"`
	Routes    []RoutePayload `json:"routes"`
}

// RouteResponse is returned by GET /api/routes/{source}/{destination}.
type RouteResponse struct {
	Source string       `json:"source"`
	Cached bool         `json:"cached"`
	Route  RoutePayload `json:"route"`
}

// ErrorResponse is the body of every non-2xx API reply.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Partial []CityDistance `json:"partial_distances,omitempty"`
}
