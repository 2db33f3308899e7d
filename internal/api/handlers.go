package api

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tutu-network/mathsheet/internal/app/worksheet"
	"github.com/tutu-network/mathsheet/internal/domain"
	"github.com/tutu-network/mathsheet/internal/infra/metrics"
)

// SeedHeader carries the seed a response was generated from.
const SeedHeader = "X-Mathsheet-Seed"

func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"types": s.registry.Types(),
	})
}

// handleTask returns one task as JSON. Without ?seed= a random seed is used
// and reported in the SeedHeader.
func (s *Server) handleTask(w http.ResponseWriter, r *http.Request) {
	gen, err := s.registry.Get(domain.TaskType(chi.URLParam(r, "type")))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	seed, err := seedFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task := gen.Generate(worksheet.NewRand(seed))
	w.Header().Set(SeedHeader, strconv.FormatUint(seed, 10))
	writeJSON(w, http.StatusOK, task)
}

// handleWorksheet returns the full worksheet for a seed as JSON.
func (s *Server) handleWorksheet(w http.ResponseWriter, r *http.Request) {
	seed, err := strconv.ParseUint(chi.URLParam(r, "seed"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "seed must be an unsigned integer")
		return
	}
	ws := s.builder.Build(worksheet.NewRand(seed), 0)
	metrics.ObserveWorksheet("api", ws)
	w.Header().Set(SeedHeader, strconv.FormatUint(seed, 10))
	writeJSON(w, http.StatusOK, ws)
}

// handleWorksheetPDF streams the task or solution document for a seed. The
// same seed always yields the same tasks, so task.pdf and solution.pdf of one
// seed belong together.
func (s *Server) handleWorksheetPDF(solution bool) http.HandlerFunc {
	doc := metrics.DocumentLabel(solution)
	return func(w http.ResponseWriter, r *http.Request) {
		seed, err := strconv.ParseUint(chi.URLParam(r, "seed"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "seed must be an unsigned integer")
			return
		}

		ws := s.builder.Build(worksheet.NewRand(seed), 0)
		metrics.ObserveWorksheet("api", ws)

		start := time.Now()
		var buf bytes.Buffer
		if err := s.renderer.Render(&buf, ws, solution); err != nil {
			metrics.RenderFailures.WithLabelValues(doc).Inc()
			log.Printf("[api] render %s seed=%d: %v", doc, seed, err)
			writeError(w, http.StatusInternalServerError, "render failed")
			return
		}
		metrics.RenderLatency.WithLabelValues(doc).Observe(time.Since(start).Seconds())

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", pdfName(seed, solution)))
		w.Header().Set(SeedHeader, strconv.FormatUint(seed, 10))
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, "history is disabled")
		return
	}
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	runs, err := s.history.ListRuns(limit)
	if err != nil {
		log.Printf("[api] list history: %v", err)
		writeError(w, http.StatusInternalServerError, "history unavailable")
		return
	}
	if runs == nil {
		runs = []domain.Run{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"runs": runs,
	})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, "history is disabled")
		return
	}
	run, err := s.history.GetRun(chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Printf("[api] get run: %v", err)
		writeError(w, http.StatusInternalServerError, "history unavailable")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func seedFromQuery(r *http.Request) (uint64, error) {
	v := r.URL.Query().Get("seed")
	if v == "" {
		return worksheet.RandomSeed(), nil
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errors.New("seed must be an unsigned integer")
	}
	return seed, nil
}

func pdfName(seed uint64, solution bool) string {
	if solution {
		return fmt.Sprintf("mathsheet_%d_loesung.pdf", seed)
	}
	return fmt.Sprintf("mathsheet_%d.pdf", seed)
}
