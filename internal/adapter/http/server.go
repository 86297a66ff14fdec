package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bren-perry/iw-generator/internal/domain"
	"github.com/bren-perry/iw-generator/internal/geo"
	"github.com/bren-perry/iw-generator/internal/observability"
)

// Composer runs the composition pipeline for a request.
type Composer interface {
	Compose(ctx context.Context, req domain.Request) domain.Notification
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the compose API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	composer   Composer
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the API and operational routes.
func NewServer(addr string, composer Composer, ready ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		composer: composer,
		metrics:  metrics,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /v1/notifications", s.handleCompose)
	mux.HandleFunc("GET /v1/hazards", s.handleCatalog)
	mux.HandleFunc("POST /v1/towns", s.handleTowns)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// handleCompose decodes a compose request, validates the closed-set fields,
// and returns the composed notification. Composition itself cannot fail, so
// the only error paths are malformed input.
func (s *Server) handleCompose(w http.ResponseWriter, r *http.Request) {
	var req domain.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, string(req.Mode), "invalid JSON body")
		return
	}

	if req.Mode != "" && req.Mode != domain.ModeStorm && req.Mode != domain.ModeRegional {
		s.badRequest(w, string(req.Mode), "unknown mode")
		return
	}
	if req.Province != "" {
		if _, ok := domain.ProvinceByCode(req.Province); !ok {
			s.badRequest(w, string(req.Mode), "unknown province code")
			return
		}
	}

	n := s.composer.Compose(r.Context(), req)
	writeJSON(w, http.StatusOK, n)
}

// handleCatalog serves the static hazard option tables and province list so
// form-building clients never hardcode them.
func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"hazards":   domain.Catalog(),
		"provinces": domain.Provinces(),
	})
}

type townsRequest struct {
	Polygon string `json:"polygon"`
	Limit   int    `json:"limit,omitempty"`
}

// handleTowns parses a free-text polygon and returns the most populous towns
// inside it, for prefilling the towns-in-path field.
func (s *Server) handleTowns(w http.ResponseWriter, r *http.Request) {
	var req townsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	points, err := geo.ParsePolygon(req.Polygon)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"towns": geo.TownsInPath(points, req.Limit),
	})
}

func (s *Server) badRequest(w http.ResponseWriter, mode, msg string) {
	if mode == "" {
		mode = "unknown"
	}
	s.metrics.ComposeRequests.WithLabelValues(mode, "bad_request").Inc()
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
