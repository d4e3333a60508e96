package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/crowdwork-analyzer/internal/logger"
	"github.com/jonathan/crowdwork-analyzer/internal/pipeline"
	"github.com/jonathan/crowdwork-analyzer/internal/runs"
)

// Server represents the HTTP server.
type Server struct {
	httpServer   *http.Server
	registry     *runs.Registry
	orchestrator *pipeline.Orchestrator
	validate     *validator.Validate
	log          *logger.Logger
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance over the given registry and orchestrator.
func New(cfg Config, registry *runs.Registry, orchestrator *pipeline.Orchestrator, log *logger.Logger) *Server {
	s := &Server{
		registry:     registry,
		orchestrator: orchestrator,
		validate:     validator.New(),
		log:          log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze/youtube", s.handleAnalyze)
	mux.HandleFunc("GET /results/{id}", s.handleResults)
	mux.HandleFunc("GET /results/{id}/stream", s.handleResultsStream)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // long timeout for result streams
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.WithField("addr", s.httpServer.Addr).Info("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Fatal("server terminated")
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithField("method", r.Method).
			WithField("path", r.URL.Path).
			WithField("duration_ms", time.Since(start).Milliseconds()).
			Info("request handled")
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.WithError(err).Error("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
