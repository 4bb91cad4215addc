// Package server exposes shortest-path queries over a loaded core.Graph as
// a small JSON HTTP API, with Prometheus metrics for every solve.
//
// Routes:
//
//	GET /healthz                      liveness probe
//	GET /v1/graph                     vertex and edge counts
//	GET /v1/distances/{source}        distance and predecessor tables
//	GET /v1/path/{source}/{target}    one reconstructed path and its cost
//	GET /metrics                      Prometheus exposition
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// Config holds HTTP server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// SolveTimeout bounds each solve; zero means only the request context applies.
	SolveTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown in ListenAndServe.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the settings used when a field is left zero.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 5 * time.Second,
	}
}

// Server answers shortest-path queries against one read-only graph.
type Server struct {
	g      *core.Graph
	cfg    Config
	router *mux.Router

	registry      *prometheus.Registry
	solveTotal    *prometheus.CounterVec
	solveDuration prometheus.Histogram
}

// New builds a Server for g. The graph must not be mutated while the server runs.
func New(g *core.Graph, cfg Config) *Server {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = def.ShutdownTimeout
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	s := &Server{
		g:        g,
		cfg:      cfg,
		router:   mux.NewRouter(),
		registry: reg,
		solveTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvpath_solve_total",
			Help: "Total shortest-path solves by outcome",
		}, []string{"result"}),
		solveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lvpath_solve_duration_seconds",
			Help:    "Shortest-path solve duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
		}),
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/graph", s.handleGraph).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/distances/{source}", s.handleDistances).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/path/{source}/{target}", s.handlePath).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// solve runs one Dijkstra solve under the request context and records metrics.
func (s *Server) solve(ctx context.Context, source int) (*dijkstra.Result, error) {
	if s.cfg.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SolveTimeout)
		defer cancel()
	}

	start := time.Now()
	res, err := dijkstra.Solve(s.g, source, dijkstra.WithContext(ctx))
	s.solveDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		s.solveTotal.WithLabelValues("ok").Inc()
	case errors.Is(err, dijkstra.ErrVertexOutOfRange):
		s.solveTotal.WithLabelValues("bad_vertex").Inc()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.solveTotal.WithLabelValues("cancelled").Inc()
	default:
		s.solveTotal.WithLabelValues("error").Inc()
	}

	return res, err
}
