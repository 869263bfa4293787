package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/katalvlaran/routeplan/bellmanford"
	"github.com/katalvlaran/routeplan/core"
	"github.com/katalvlaran/routeplan/route"
	"github.com/katalvlaran/routeplan/wire"
)

// Error codes carried in ErrorResponse.Code.
const (
	codeBadRequest    = "bad_request"
	codeTooLarge      = "too_large"
	codeNoGraph       = "no_graph"
	codeUnknownCity   = "unknown_city"
	codeNegativeCycle = "negative_cycle"
	codeNoRoute       = "reconstruction_failed"
	codeInternal      = "internal"
)

// Query parameter values for ?format=.
const (
	formatText = "text"
	formatCSV  = "csv"
)

var errNoGraph = errors.New("no graph loaded")

func (s *Server) putGraph(w http.ResponseWriter, r *http.Request) {
	var req GraphRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	cities, err := core.NewCities(req.Cities)
	if err != nil {
		s.fail(w, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	roads := make([]core.Road, len(req.Roads))
	for i, rd := range req.Roads {
		roads[i] = core.Road{From: rd.From, To: rd.To, Weight: rd.Weight}
	}
	edges, err := cities.Resolve(roads)
	if err != nil {
		s.fail(w, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	s.load(w, cities, edges)
}

func (s *Server) putMatrix(w http.ResponseWriter, r *http.Request) {
	var req MatrixRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	cities, err := core.NewCities(req.Cities)
	if err != nil {
		s.fail(w, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	edges, err := wire.ParseMatrix(cities, req.Cells)
	if err != nil {
		s.fail(w, http.StatusBadRequest, codeBadRequest, err)
		return
	}
	s.load(w, cities, edges)
}

// load replaces the session graph. When the city table and the edge
// fingerprint are unchanged the current engine and its cache are kept.
func (s *Server) load(w http.ResponseWriter, cities *core.Cities, edges []core.Edge) {
	limits := s.cfg.Limits
	if cities.Len() > limits.MaxCities {
		s.fail(w, http.StatusBadRequest, codeTooLarge, fmt.Errorf("%d cities exceeds limit %d", cities.Len(), limits.MaxCities))
		return
	}
	if limits.MaxRoads > 0 && len(edges) > limits.MaxRoads {
		s.fail(w, http.StatusBadRequest, codeTooLarge, fmt.Errorf("%d roads exceeds limit %d", len(edges), limits.MaxRoads))
		return
	}
	store, err := core.NewEdgeStore(cities.Len(), edges)
	if err != nil {
		s.fail(w, http.StatusBadRequest, codeBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reused := s.session != nil &&
		s.session.cities.Equal(cities) &&
		s.session.engine.Store().Fingerprint() == store.Fingerprint()
	if !reused {
		engine, err := bellmanford.NewEngine(store)
		if err != nil {
			s.fail(w, http.StatusInternalServerError, codeInternal, err)
			return
		}
		s.session = &session{cities: cities, engine: engine}
	}
	s.log.Info("graph loaded",
		zap.Int("cities", cities.Len()),
		zap.Int("roads", store.EdgeCount()),
		zap.String("fingerprint", fingerprintHex(store)),
		zap.Bool("reused", reused),
	)

	summary := s.summary()
	summary.Reused = reused
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) getGraph(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		s.fail(w, http.StatusConflict, codeNoGraph, errNoGraph)
		return
	}
	if r.URL.Query().Get("format") == formatCSV {
		w.Header().Set("Content-Type", "text/csv")
		if err := wire.WriteRoadsCSV(w, s.session.cities, s.session.engine.Store()); err != nil {
			s.log.Warn("write roads csv", zap.Error(err))
		}
		return
	}
	writeJSON(w, http.StatusOK, s.summary())
}

func (s *Server) getMatrix(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		s.fail(w, http.StatusConflict, codeNoGraph, errNoGraph)
		return
	}
	writeJSON(w, http.StatusOK, MatrixResponse{
		Cities: s.session.cities.Names(),
		Cells:  wire.FormatMatrix(s.session.engine.Store()),
	})
}

func (s *Server) deleteCache(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		s.fail(w, http.StatusConflict, codeNoGraph, errNoGraph)
		return
	}
	dropped := s.session.engine.Cache().Len()
	s.session.engine.Reset()
	s.log.Info("cache cleared", zap.Int("entries", dropped))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getRoutes(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, src, res, ok := s.computeFor(w, mux.Vars(r)["source"])
	if !ok {
		return
	}
	store := sess.engine.Store()

	format := r.URL.Query().Get("format")
	if format == formatCSV {
		w.Header().Set("Content-Type", "text/csv")
		if err := wire.WriteResultsCSV(w, sess.cities, src, res.Distances); err != nil {
			s.log.Warn("write results csv", zap.Error(err))
		}
		return
	}

	paths, err := route.Collect(store, src, res.Distances, res.Predecessors)
	if err != nil {
		s.log.Error("reconstruct paths", zap.Int("source", src), zap.Error(err))
		s.fail(w, http.StatusInternalServerError, codeInternal, err)
		return
	}

	if format == formatText {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := wire.WriteTable(w, sess.cities, src, res.Distances); err != nil {
			s.log.Warn("write table", zap.Error(err))
			return
		}
		if err := wire.WritePaths(w, sess.cities, paths); err != nil {
			s.log.Warn("write paths", zap.Error(err))
		}
		for _, p := range paths {
			s.countMismatch(p)
		}
		return
	}

	resp := RoutesResponse{
		Source:    sess.cities.Name(src),
		Cached:    res.FromCache,
		Distances: distances(sess.cities, res.Distances),
		Routes:    make([]RoutePayload, len(paths)),
	}
	for i, p := range paths {
		resp.Routes[i] = s.routePayload(sess.cities, p)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getRoute(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vars := mux.Vars(r)
	sess, src, res, ok := s.computeFor(w, vars["source"])
	if !ok {
		return
	}
	dst, err := sess.cities.Index(vars["destination"])
	if err != nil {
		s.fail(w, http.StatusNotFound, codeUnknownCity, err)
		return
	}
	p, err := route.Reconstruct(sess.engine.Store(), src, dst, res.Distances, res.Predecessors)
	if errors.Is(err, route.ErrReconstructionFailed) {
		p, err = route.Path{Kind: route.Failed, Source: src, Destination: dst, Distance: res.Distances[dst], Err: err}, nil
	}
	if err != nil {
		s.log.Error("reconstruct path", zap.Int("source", src), zap.Int("destination", dst), zap.Error(err))
		s.fail(w, http.StatusInternalServerError, codeInternal, err)
		return
	}
	writeJSON(w, http.StatusOK, RouteResponse{
		Source: sess.cities.Name(src),
		Cached: res.FromCache,
		Route:  s.routePayload(sess.cities, p),
	})
}

// computeFor resolves sourceName and runs the engine. It writes the error
// reply itself and reports ok=false on any failure. Callers hold s.mu.
func (s *Server) computeFor(w http.ResponseWriter, sourceName string) (*session, int, bellmanford.Result, bool) {
	sess := s.session
	if sess == nil {
		s.fail(w, http.StatusConflict, codeNoGraph, errNoGraph)
		return nil, 0, bellmanford.Result{}, false
	}
	src, err := sess.cities.Index(sourceName)
	if err != nil {
		s.fail(w, http.StatusNotFound, codeUnknownCity, err)
		return nil, 0, bellmanford.Result{}, false
	}

	start := time.Now()
	res, err := sess.engine.Compute(src)
	s.metrics.computeDuration.Observe(time.Since(start).Seconds())

	var cycle *bellmanford.NegativeCycleError
	switch {
	case errors.As(err, &cycle):
		s.metrics.computations.WithLabelValues(outcomeNegativeCycle).Inc()
		s.log.Warn("negative cycle", zap.String("source", sourceName), zap.Int("edge", cycle.Edge))
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Code:    codeNegativeCycle,
			Message: wire.NegativeCycleWarning,
			Partial: distances(sess.cities, cycle.Distances),
		})
		return nil, 0, bellmanford.Result{}, false
	case err != nil:
		s.metrics.computations.WithLabelValues(outcomeError).Inc()
		s.log.Error("compute", zap.String("source", sourceName), zap.Error(err))
		s.fail(w, http.StatusInternalServerError, codeInternal, err)
		return nil, 0, bellmanford.Result{}, false
	case res.FromCache:
		s.metrics.computations.WithLabelValues(outcomeCached).Inc()
	default:
		s.metrics.computations.WithLabelValues(outcomeComputed).Inc()
	}
	s.log.Debug("computed", zap.String("source", sourceName), zap.Bool("cached", res.FromCache))

	return sess, src, res, true
}

func (s *Server) routePayload(cities *core.Cities, p route.Path) RoutePayload {
	out := RoutePayload{Destination: cities.Name(p.Destination)}
	switch p.Kind {
	case route.Unreachable:
		return out
	case route.Failed:
		s.log.Warn("no path for reachable city",
			zap.String("destination", out.Destination),
			zap.Int64("distance", p.Distance),
			zap.Error(p.Err),
		)
		out.Distance = finite(p.Distance)
		out.Error = codeNoRoute
		return out
	}
	s.countMismatch(p)
	names := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		names[i] = cities.Name(v)
	}
	out.Reachable = true
	out.Distance = finite(p.Distance)
	out.Path = names
	out.Weights = p.Weights
	out.Total = finite(p.Total)
	out.Mismatch = p.Mismatch

	return out
}

func (s *Server) countMismatch(p route.Path) {
	if p.Kind == route.Found && p.Mismatch {
		s.metrics.mismatches.Inc()
	}
}

// summary describes the current session. Callers hold s.mu.
func (s *Server) summary() GraphSummary {
	store := s.session.engine.Store()
	sources := s.session.engine.Cache().Sources()
	cached := make([]string, len(sources))
	for i, id := range sources {
		cached[i] = s.session.cities.Name(id)
	}

	return GraphSummary{
		Cities:        s.session.cities.Names(),
		Roads:         store.EdgeCount(),
		Fingerprint:   fingerprintHex(store),
		CachedSources: cached,
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, code string, err error) {
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("code", code), zap.Error(err))
	}
	writeJSON(w, status, ErrorResponse{Code: code, Message: err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func distances(cities *core.Cities, dist []int64) []CityDistance {
	out := make([]CityDistance, len(dist))
	for i, d := range dist {
		out[i] = CityDistance{City: cities.Name(i), Distance: finite(d)}
	}

	return out
}

func finite(d int64) *int64 {
	if !core.IsFinite(d) {
		return nil
	}

	return &d
}

func fingerprintHex(store *core.EdgeStore) string {
	return strconv.FormatUint(store.Fingerprint(), 16)
}
