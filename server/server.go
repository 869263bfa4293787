// Package server exposes the route planner over HTTP.
//
// One graph is loaded at a time. The session (city table, edge store and
// engine with its cache) sits behind a mutex, so requests are served one
// computation at a time.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/routeplan/bellmanford"
	"github.com/katalvlaran/routeplan/config"
	"github.com/katalvlaran/routeplan/core"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
	maxBodyBytes      = 1 << 20
)

// Server is the HTTP front end of one route-planning session.
type Server struct {
	cfg     config.Config
	log     *zap.Logger
	reg     *prometheus.Registry
	metrics *metrics
	router  *mux.Router

	mu      sync.Mutex
	session *session
}

type session struct {
	cities *core.Cities
	engine *bellmanford.Engine
}

// New builds a server with no graph loaded. A nil logger is replaced by a
// no-op logger.
func New(cfg config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:     cfg,
		log:     log,
		reg:     reg,
		metrics: newMetrics(reg),
		router:  mux.NewRouter(),
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/graph", s.putGraph).Methods(http.MethodPut)
	api.HandleFunc("/graph", s.getGraph).Methods(http.MethodGet)
	api.HandleFunc("/graph/matrix", s.putMatrix).Methods(http.MethodPut)
	api.HandleFunc("/graph/matrix", s.getMatrix).Methods(http.MethodGet)
	api.HandleFunc("/routes/{source}", s.getRoutes).Methods(http.MethodGet)
	api.HandleFunc("/routes/{source}/{destination}", s.getRoute).Methods(http.MethodGet)
	api.HandleFunc("/cache", s.deleteCache).Methods(http.MethodDelete)

	if s.cfg.Metrics.Enabled {
		s.router.Handle(s.cfg.Metrics.Path, promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	s.router.Use(s.observe)
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Registry returns the server's private metrics registry.
func (s *Server) Registry() *prometheus.Registry { return s.reg }

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Listen)
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info("listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("stopped")

	return nil
}
