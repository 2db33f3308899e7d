package pdf

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tutu-network/mathsheet/internal/app/addsub"
	"github.com/tutu-network/mathsheet/internal/app/worksheet"
	"github.com/tutu-network/mathsheet/internal/domain"
)

func newTestWorksheet(t *testing.T, days []string, perDay int) domain.Worksheet {
	t.Helper()
	reg, err := worksheet.NewRegistry(addsub.DefaultOptions())
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	opts := worksheet.DefaultOptions()
	opts.Days = days
	opts.TasksPerDay = perDay
	b, err := worksheet.NewBuilder(reg, opts, nil)
	if err != nil {
		t.Fatalf("NewBuilder() error: %v", err)
	}
	return b.Build(rand.New(rand.NewPCG(3, 3)), 0)
}

// ─── Placement ──────────────────────────────────────────────────────────────

func TestPlan_BalancedColumns(t *testing.T) {
	ws := newTestWorksheet(t, []string{"Montag"}, 6)
	r := New(DefaultStyle())
	items := plan(ws, ws.Title, r.style, r.pageBox())

	if items[0].Kind != itemTitle || items[1].Kind != itemHeading {
		t.Fatalf("first items = %v, %v; want title, heading", items[0].Kind, items[1].Kind)
	}

	pos := make(map[int]placement)
	for _, it := range items {
		if it.Kind == itemGrid {
			pos[it.Task] = it
		}
	}
	if len(pos) != 6 {
		t.Fatalf("grids placed = %d, want 6", len(pos))
	}
	// Column-major: 0,1 in the first column; 2,3 in the second; 4,5 in the third.
	if pos[0].X != pos[1].X || pos[2].X != pos[3].X || pos[4].X != pos[5].X {
		t.Errorf("column pairs not aligned: %+v", pos)
	}
	if !(pos[0].X < pos[2].X && pos[2].X < pos[4].X) {
		t.Errorf("columns not left to right: %v %v %v", pos[0].X, pos[2].X, pos[4].X)
	}
	if !(pos[0].Y < pos[1].Y) || pos[0].Y != pos[2].Y {
		t.Errorf("rows not top to bottom: %v %v %v", pos[0].Y, pos[1].Y, pos[2].Y)
	}
}

func TestPlan_UnevenDay(t *testing.T) {
	ws := newTestWorksheet(t, []string{"Montag"}, 5)
	r := New(DefaultStyle())

	seen := make(map[int]bool)
	for _, it := range plan(ws, ws.Title, r.style, r.pageBox()) {
		if it.Kind == itemGrid {
			if seen[it.Task] {
				t.Errorf("task %d placed twice", it.Task)
			}
			seen[it.Task] = true
		}
	}
	if len(seen) != 5 {
		t.Errorf("grids placed = %d, want 5", len(seen))
	}
}

func TestPlan_PageBreaks(t *testing.T) {
	ws := newTestWorksheet(t, worksheet.DefaultDays, 6)
	r := New(DefaultStyle())
	box := r.pageBox()
	gridH := float64(ws.Days[0].Tasks[0].Prompt.Layout.Rows) * r.style.CellSize

	items := plan(ws, ws.Title, r.style, box)
	pages := 0
	headings := 0
	for i, it := range items {
		pages = max(pages, it.Page)
		switch it.Kind {
		case itemGrid:
			if it.Y+gridH > box.Bottom {
				t.Errorf("grid %d/%d overflows page: y=%v", it.Day, it.Task, it.Y)
			}
		case itemHeading:
			headings++
			next := items[i+1]
			if next.Kind != itemGrid || next.Page != it.Page {
				t.Errorf("heading %q separated from its first row", it.Text)
			}
		}
	}
	if headings != 7 {
		t.Errorf("headings = %d, want 7", headings)
	}
	if pages < 2 {
		t.Errorf("pages = %d, want a week to need at least 2", pages)
	}
	if got := r.Pages(ws); got != pages {
		t.Errorf("Pages() = %d, want %d", got, pages)
	}
}

// ─── Rendering ──────────────────────────────────────────────────────────────

func TestRender_ProducesPDF(t *testing.T) {
	ws := newTestWorksheet(t, worksheet.DefaultDays, 6)
	r := New(DefaultStyle())

	var task, solution bytes.Buffer
	if err := r.Render(&task, ws, false); err != nil {
		t.Fatalf("Render(task) error: %v", err)
	}
	if err := r.Render(&solution, ws, true); err != nil {
		t.Fatalf("Render(solution) error: %v", err)
	}

	for name, buf := range map[string]*bytes.Buffer{"task": &task, "solution": &solution} {
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Errorf("%s: missing PDF header", name)
		}
		if !strings.Contains(buf.String(), "%%EOF") {
			t.Errorf("%s: missing EOF marker", name)
		}
	}
	if solution.Len() <= task.Len() {
		t.Errorf("solution (%d bytes) should be larger than task (%d bytes)", solution.Len(), task.Len())
	}
}

func TestWriteFile(t *testing.T) {
	ws := newTestWorksheet(t, []string{"Montag"}, 3)
	r := New(DefaultStyle())
	path := filepath.Join(t.TempDir(), "sheet.pdf")

	if err := r.WriteFile(path, ws, false); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error: %v", err)
	}
	if info.Size() == 0 {
		t.Error("written PDF is empty")
	}

	bad := filepath.Join(t.TempDir(), "missing", "sheet.pdf")
	if err := r.WriteFile(bad, ws, false); err == nil {
		t.Error("WriteFile() into a missing directory should fail")
	}
}

func TestLatin1(t *testing.T) {
	if got := latin1("Lösung"); got != "L\xf6sung" {
		t.Errorf("latin1(Lösung) = %q", got)
	}
	if got := latin1("Montag"); got != "Montag" {
		t.Errorf("latin1(Montag) = %q", got)
	}
	// Not representable in Windows-1252: passed through.
	if got := latin1("数学"); got != "数学" {
		t.Errorf("latin1(数学) = %q", got)
	}
}

// ─── Layout Fit ─────────────────────────────────────────────────────────────

func TestCheckLayout(t *testing.T) {
	// Default page: 451.28pt wide between margins, 150.43pt per column.
	tests := []struct {
		name        string
		rows, cols  int
		cellSize    float64
		tasksPerRow int
		wantErr     bool
	}{
		{"default grid", 6, 9, 12, 3, false},
		{"widest grid at 12pt", 6, 12, 12, 3, false},
		{"just fits", 6, 12, 12.5, 3, false},
		{"just too wide", 6, 12, 12.6, 3, true},
		{"overlapping columns", 6, 12, 16, 3, true},
		{"single column", 6, 12, 16, 1, false},
		{"taller than page", 60, 9, 12, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStyle()
			s.CellSize = tt.cellSize
			s.TasksPerRow = tt.tasksPerRow
			err := New(s).CheckLayout(domain.Layout{Rows: tt.rows, Cols: tt.cols})
			if tt.wantErr && !errors.Is(err, domain.ErrInvalidLayout) {
				t.Errorf("CheckLayout() error = %v, want ErrInvalidLayout", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckLayout() error = %v, want nil", err)
			}
		})
	}
}

// Grids of an accepted layout never overlap their neighbours or cross the
// right margin.
func TestPlan_AcceptedLayoutStaysInColumns(t *testing.T) {
	ws := newTestWorksheet(t, []string{"Montag", "Dienstag"}, 6)
	r := New(DefaultStyle())
	l := ws.Days[0].Tasks[0].Prompt.Layout
	if err := r.CheckLayout(l); err != nil {
		t.Fatalf("CheckLayout() error: %v", err)
	}

	box := r.pageBox()
	width := float64(l.Cols) * r.style.CellSize
	pitch := box.Width / float64(r.style.TasksPerRow)
	for _, it := range plan(ws, ws.Title, r.style, box) {
		if it.Kind != itemGrid {
			continue
		}
		if right := it.X + width; right > box.Left+box.Width+0.001 {
			t.Errorf("grid at x=%.1f ends at %.1f, past the margin %.1f", it.X, right, box.Left+box.Width)
		}
		col := int((it.X-box.Left)/pitch + 0.5)
		if it.X+width > box.Left+float64(col+1)*pitch+0.001 {
			t.Errorf("grid at x=%.1f overlaps column %d", it.X, col+1)
		}
	}
}
