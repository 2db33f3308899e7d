// Package metrics provides Prometheus metrics for mathsheet: how many
// worksheets and tasks were generated and how long rendering took.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tutu-network/mathsheet/internal/domain"
)

// ─── Generation ─────────────────────────────────────────────────────────────

// WorksheetsGenerated counts generated worksheets by origin (cli, api).
var WorksheetsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mathsheet",
	Name:      "worksheets_generated_total",
	Help:      "Total generated worksheets.",
}, []string{"origin"})

// TasksGenerated counts generated tasks by type and operator.
var TasksGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mathsheet",
	Name:      "tasks_generated_total",
	Help:      "Total generated tasks.",
}, []string{"type", "operator"})

// CarryMarks counts carry/borrow markers shown in solutions.
var CarryMarks = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "mathsheet",
	Name:      "carry_marks_total",
	Help:      "Total carry and borrow markers in generated solutions.",
})

// ─── Rendering ──────────────────────────────────────────────────────────────

// RenderLatency tracks PDF rendering duration by document (task, solution).
var RenderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "mathsheet",
	Name:      "render_latency_seconds",
	Help:      "PDF rendering duration in seconds.",
	Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
}, []string{"document"})

// RenderFailures counts failed renders by document.
var RenderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mathsheet",
	Name:      "render_failures_total",
	Help:      "Total failed PDF renders.",
}, []string{"document"})

// ─── History ────────────────────────────────────────────────────────────────

// RunsRecorded counts generation runs written to the history store.
var RunsRecorded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "mathsheet",
	Name:      "history_runs_recorded_total",
	Help:      "Total generation runs recorded in history.",
})

// ObserveWorksheet records one generated worksheet and its tasks.
func ObserveWorksheet(origin string, ws domain.Worksheet) {
	WorksheetsGenerated.WithLabelValues(origin).Inc()
	for _, d := range ws.Days {
		for _, t := range d.Tasks {
			TasksGenerated.WithLabelValues(string(t.Type), t.Operator.String()).Inc()
			for _, c := range t.Carries {
				if c != "" {
					CarryMarks.Inc()
				}
			}
		}
	}
}

// DocumentLabel names the rendered document for metric labels.
func DocumentLabel(solution bool) string {
	if solution {
		return "solution"
	}
	return "task"
}
