package domain

import (
	"io"
	"math/rand/v2"
)

// ─── Service Interfaces ─────────────────────────────────────────────────────
// These interfaces define boundaries between layers.
// Infrastructure implements them; application layer depends on them.

// TaskGenerator produces one task per call from the given random stream.
// Every task it returns uses the same grid Layout.
type TaskGenerator interface {
	Generate(rng *rand.Rand) Task
	Layout() Layout
}

// Renderer turns a worksheet into a document. When solution is true the
// solution grids are rendered instead of the task grids.
type Renderer interface {
	Render(w io.Writer, ws Worksheet, solution bool) error
}

// RunStore persists generation runs.
type RunStore interface {
	InsertRun(run Run) error
	GetRun(id string) (*Run, error)
	ListRuns(limit int) ([]Run, error)
}
