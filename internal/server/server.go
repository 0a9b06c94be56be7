// Package server exposes the beam engine, the catalog and saved projects
// over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/project"
	"github.com/alexiusacademia/gobeam/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// Options configures a Server
type Options struct {
	// Store backs the project routes. Nil leaves them unregistered.
	Store *store.Store

	Logger *slog.Logger

	// Defaults fill engine inputs a request leaves at zero
	Defaults project.Defaults

	// RateLimit is requests per second per client on /api; zero disables it
	RateLimit float64
	RateBurst int
}

// Server routes HTTP requests to the engine
type Server struct {
	router   *mux.Router
	store    *store.Store
	logger   *slog.Logger
	defaults project.Defaults
	metrics  *Metrics
	validate *validator.Validate
	limiter  *IPRateLimiter
}

// New builds a server and its routes
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		router:   mux.NewRouter(),
		store:    opts.Store,
		logger:   logger,
		defaults: opts.Defaults,
		metrics:  NewMetrics(),
		validate: newValidator(),
	}
	s.routes(opts)
	return s
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *Server) routes(opts Options) {
	s.router.Use(s.instrument)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	s.router.Handle("/metrics", s.metrics.Handler()).Methods("GET")

	api := s.router.PathPrefix("/api").Subrouter()
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = NewIPRateLimiter(rate.Limit(opts.RateLimit), burst)
		s.limiter.limited = s.metrics.RateLimitedTotal.Inc
		api.Use(s.limiter.LimitMiddleware)
	}

	api.HandleFunc("/beam/analyze", s.handleAnalyze).Methods("POST")
	api.HandleFunc("/materials", s.handleMaterials).Methods("GET")
	api.HandleFunc("/sections", s.handleSections).Methods("GET")
	api.HandleFunc("/sections/properties", s.handleSectionProperties).Methods("POST")
	api.HandleFunc("/report/generate", s.handleReport).Methods("POST")

	if s.store != nil {
		api.HandleFunc("/projects", s.handleListProjects).Methods("GET")
		api.HandleFunc("/projects", s.handleCreateProject).Methods("POST")
		api.HandleFunc("/projects/{id}", s.handleGetProject).Methods("GET")
		api.HandleFunc("/projects/{id}", s.handleDeleteProject).Methods("DELETE")
		api.HandleFunc("/projects/{id}/analyze", s.handleAnalyzeProject).Methods("POST")
	}
}

// Handler returns the root handler with CORS applied
func (s *Server) Handler() http.Handler {
	return CORS(s.router)
}

// Metrics returns the server's collectors
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// analyze runs the engine and records the outcome
func (s *Server) analyze(req beam.Request) (*beam.Analysis, error) {
	if req.ElasticModulus == 0 {
		req.ElasticModulus = s.defaults.ElasticModulus
	}
	if req.MomentOfInertia == 0 {
		req.MomentOfInertia = s.defaults.MomentOfInertia
	}
	if req.NumPoints == 0 {
		req.NumPoints = s.defaults.NumPoints
	}

	start := time.Now()
	a, err := beam.Analyze(req)
	s.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	var (
		invalid     *beam.ValidationError
		unsupported *beam.UnsupportedConfigurationError
	)
	outcome := "ok"
	switch {
	case err == nil:
	case errors.As(err, &invalid):
		outcome = "invalid"
	case errors.As(err, &unsupported):
		outcome = "unsupported"
	default:
		outcome = "error"
	}
	s.metrics.AnalysesTotal.WithLabelValues(outcome).Inc()
	return a, err
}

// Run serves until ctx is canceled, then shuts down within
// cfg.ShutdownTimeout.
func (s *Server) Run(ctx context.Context, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if s.limiter != nil {
		go s.limiter.cleanup(ctx, time.Minute)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return <-errCh
}
