// Package server exposes the analysis pipeline over HTTP. The pipeline
// itself stays pure; everything request-shaped lives here.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/quantalab/qce/internal/config"
	"github.com/quantalab/qce/internal/pipeline"
)

// ServiceVersion is reported by the info and health endpoints.
const ServiceVersion = "1.0.0"

// Config holds server construction parameters.
type Config struct {
	Port     int
	Log      zerolog.Logger
	Pipeline *pipeline.Pipeline
	DevMode  bool
}

// Server is the HTTP boundary in front of the analysis pipeline.
type Server struct {
	router   *chi.Mux
	server   *http.Server
	log      zerolog.Logger
	pipeline *pipeline.Pipeline
}

// New creates a new HTTP server.
func New(cfg Config) *Server {
	pipe := cfg.Pipeline
	if pipe == nil {
		pipe = pipeline.New()
	}

	s := &Server{
		router:   chi.NewRouter(),
		log:      cfg.Log.With().Str("component", "server").Logger(),
		pipeline: pipe,
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// FromConfig builds a server from the loaded configuration.
func FromConfig(cfg *config.Config, log zerolog.Logger) *Server {
	return New(Config{
		Port:    cfg.Server.Port,
		Log:     log,
		DevMode: cfg.Server.DevMode,
	})
}

func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/supported-languages", s.handleSupportedLanguages)
	s.router.Post("/detect-language", s.handleDetectLanguage)
	s.router.Post("/analyze", s.handleAnalyze)
}

// loggingMiddleware logs each request with latency.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	})
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start begins serving. Blocks until the listener closes.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
