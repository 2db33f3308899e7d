// Package api provides the HTTP server for mathsheet. It streams worksheet
// PDFs, single tasks as JSON and the generation history.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tutu-network/mathsheet/internal/app/worksheet"
	"github.com/tutu-network/mathsheet/internal/domain"
	"github.com/tutu-network/mathsheet/internal/health"
)

// Server is the mathsheet HTTP API server.
type Server struct {
	registry       *worksheet.Registry
	builder        *worksheet.Builder
	renderer       domain.Renderer
	history        domain.RunStore // nil when history is disabled
	checker        *health.Checker
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(reg *worksheet.Registry, b *worksheet.Builder, r domain.Renderer) *Server {
	return &Server{registry: reg, builder: b, renderer: r}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHistory exposes the generation history under /api/history.
func (s *Server) SetHistory(h domain.RunStore) { s.history = h }

// SetHealthChecker reports the checker's results under /health.
func (s *Server) SetHealthChecker(c *health.Checker) { s.checker = c }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Minute))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/types", s.handleTypes)
		r.Get("/tasks/{type}", s.handleTask)
		r.Get("/worksheets/{seed}", s.handleWorksheet)
		r.Get("/worksheets/{seed}/task.pdf", s.handleWorksheetPDF(false))
		r.Get("/worksheets/{seed}/solution.pdf", s.handleWorksheetPDF(true))
		r.Get("/history", s.handleHistory)
		r.Get("/history/{id}", s.handleRun)
	})

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.checker == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	status, code := "ok", http.StatusOK
	if !s.checker.IsHealthy() {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]interface{}{
		"status": status,
		"checks": s.checker.Statuses(),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
