package worksheet

import (
	"bytes"
	"errors"
	"log"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"github.com/tutu-network/mathsheet/internal/app/addsub"
	"github.com/tutu-network/mathsheet/internal/domain"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(addsub.DefaultOptions())
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	return reg
}

// ─── Naming ─────────────────────────────────────────────────────────────────

func TestOutputFiles_Single(t *testing.T) {
	files, err := OutputFiles("name.pdf", 1)
	if err != nil {
		t.Fatalf("OutputFiles() error: %v", err)
	}
	want := []domain.OutputFiles{{Task: "name.pdf", Solution: "name_loesung.pdf"}}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("OutputFiles(name.pdf, 1) = %v, want %v", files, want)
	}
}

func TestOutputFiles_Numbered(t *testing.T) {
	files, err := OutputFiles("name.pdf", 12)
	if err != nil {
		t.Fatalf("OutputFiles() error: %v", err)
	}
	if len(files) != 12 {
		t.Fatalf("len = %d, want 12", len(files))
	}
	if files[0].Task != "name_00.pdf" || files[0].Solution != "name_00_loesung.pdf" {
		t.Errorf("files[0] = %+v", files[0])
	}
	if files[11].Task != "name_11.pdf" || files[11].Solution != "name_11_loesung.pdf" {
		t.Errorf("files[11] = %+v", files[11])
	}
}

func TestOutputFiles_PaddingFollowsCount(t *testing.T) {
	tests := []struct {
		count int
		first string
	}{
		{2, "w_0.pdf"},
		{9, "w_0.pdf"},
		{10, "w_00.pdf"},
		{100, "w_000.pdf"},
	}
	for _, tt := range tests {
		files, err := OutputFiles("w", tt.count)
		if err != nil {
			t.Fatalf("OutputFiles(w, %d) error: %v", tt.count, err)
		}
		if files[0].Task != tt.first {
			t.Errorf("OutputFiles(w, %d)[0] = %q, want %q", tt.count, files[0].Task, tt.first)
		}
	}
}

func TestOutputFiles_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := OutputFiles("x.pdf", n); !errors.Is(err, domain.ErrInvalidWorksheetCount) {
			t.Errorf("OutputFiles(x.pdf, %d) error = %v, want ErrInvalidWorksheetCount", n, err)
		}
	}
}

func TestBase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"name.pdf", "name"},
		{"name", "name"},
		{"week.3.pdf", "week"},
		{"out/sheets.v2/week.pdf", "out/sheets.v2/week"},
	}
	for _, tt := range tests {
		got, err := Base(tt.in)
		if err != nil {
			t.Fatalf("Base(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Base(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "  ", ".pdf", "dir/.pdf"} {
		if _, err := Base(bad); !errors.Is(err, domain.ErrEmptyFilename) {
			t.Errorf("Base(%q) error = %v, want ErrEmptyFilename", bad, err)
		}
	}
}

// ─── Registry ───────────────────────────────────────────────────────────────

func TestRegistry_ParseTypes(t *testing.T) {
	reg := newTestRegistry(t)

	got, err := reg.ParseTypes([]string{"addsub", " AddSub , addsub"})
	if err != nil {
		t.Fatalf("ParseTypes() error: %v", err)
	}
	want := []domain.TaskType{domain.TaskAddSub, domain.TaskAddSub, domain.TaskAddSub}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTypes() = %v, want %v", got, want)
	}

	if _, err := reg.ParseTypes([]string{"multiply"}); !errors.Is(err, domain.ErrUnknownTaskType) {
		t.Errorf("ParseTypes(multiply) error = %v, want ErrUnknownTaskType", err)
	}
	if _, err := reg.ParseTypes([]string{" , "}); !errors.Is(err, domain.ErrNoTaskTypes) {
		t.Errorf("ParseTypes(empty) error = %v, want ErrNoTaskTypes", err)
	}
}

func TestRegistry_Types(t *testing.T) {
	reg := newTestRegistry(t)
	if got := reg.Types(); !reflect.DeepEqual(got, []domain.TaskType{domain.TaskAddSub}) {
		t.Errorf("Types() = %v", got)
	}
}

func TestNewRegistry_InvalidDigits(t *testing.T) {
	_, err := NewRegistry(addsub.Options{DigitsMin: 5, DigitsMax: 2})
	if !errors.Is(err, domain.ErrInvalidDigitRange) {
		t.Errorf("NewRegistry() error = %v, want ErrInvalidDigitRange", err)
	}
}

// ─── Builder ────────────────────────────────────────────────────────────────

func TestBuilder_Build(t *testing.T) {
	reg := newTestRegistry(t)
	b, err := NewBuilder(reg, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("NewBuilder() error: %v", err)
	}

	ws := b.Build(rand.New(rand.NewPCG(1, 1)), 0)
	if len(ws.Days) != 7 {
		t.Fatalf("Days = %d, want 7", len(ws.Days))
	}
	if ws.Days[0].Name != "Montag" || ws.Days[6].Name != "Sonntag" {
		t.Errorf("day names = %q..%q", ws.Days[0].Name, ws.Days[6].Name)
	}
	if ws.TaskCount() != 42 {
		t.Errorf("TaskCount() = %d, want 42", ws.TaskCount())
	}
	if ws.SolutionTitle != "Schriftliche Addition und Subtraktion - Lösung" {
		t.Errorf("SolutionTitle = %q", ws.SolutionTitle)
	}
}

func TestBuilder_BuildAllReproducible(t *testing.T) {
	reg := newTestRegistry(t)
	b, err := NewBuilder(reg, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("NewBuilder() error: %v", err)
	}

	first, err := b.BuildAll(rand.New(rand.NewPCG(99, 99)), 3)
	if err != nil {
		t.Fatalf("BuildAll() error: %v", err)
	}
	second, _ := b.BuildAll(rand.New(rand.NewPCG(99, 99)), 3)
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed produced different worksheets")
	}
	if reflect.DeepEqual(first[0].Days, first[1].Days) {
		t.Error("worksheets within one run should differ")
	}
	for i, ws := range first {
		if ws.Index != i {
			t.Errorf("Index = %d, want %d", ws.Index, i)
		}
	}

	if _, err := b.BuildAll(rand.New(rand.NewPCG(1, 1)), 0); !errors.Is(err, domain.ErrInvalidWorksheetCount) {
		t.Errorf("BuildAll(0) error = %v, want ErrInvalidWorksheetCount", err)
	}
}

func TestBuilder_VerboseLogsOperands(t *testing.T) {
	reg := newTestRegistry(t)
	opts := DefaultOptions()
	opts.Days = []string{"Montag"}
	opts.TasksPerDay = 2

	var buf bytes.Buffer
	b, err := NewBuilder(reg, opts, log.New(&buf, "", 0))
	if err != nil {
		t.Fatalf("NewBuilder() error: %v", err)
	}
	b.Build(rand.New(rand.NewPCG(5, 5)), 0)

	if n := strings.Count(buf.String(), "[worksheet] 0 Montag:"); n != 2 {
		t.Errorf("log lines = %d, want 2:\n%s", n, buf.String())
	}
}

// fixedGenerator returns the same task on every call.
type fixedGenerator struct {
	task domain.Task
}

func (g fixedGenerator) Generate(*rand.Rand) domain.Task { return g.task }
func (g fixedGenerator) Layout() domain.Layout           { return g.task.Prompt.Layout }

func TestBuilder_RotatesResolvedGenerators(t *testing.T) {
	reg := newTestRegistry(t)
	fixed := fixedGenerator{task: domain.Task{
		Type:   "fixed",
		A:      1,
		Prompt: domain.Grid{Layout: domain.Layout{Rows: 4, Cols: 3}},
	}}
	reg.Register("fixed", fixed)

	opts := DefaultOptions()
	opts.Days = []string{"Montag"}
	opts.TasksPerDay = 4
	opts.Types = []domain.TaskType{domain.TaskAddSub, "fixed"}
	b, err := NewBuilder(reg, opts, nil)
	if err != nil {
		t.Fatalf("NewBuilder() error: %v", err)
	}

	layouts := b.Layouts()
	if len(layouts) != 2 {
		t.Fatalf("Layouts() = %d, want 2", len(layouts))
	}
	if layouts[0].Cols != 9 || layouts[1].Cols != 3 {
		t.Errorf("Layouts() cols = %d, %d, want 9, 3", layouts[0].Cols, layouts[1].Cols)
	}

	// Replacing a registration later does not change a built Builder.
	reg.Register("fixed", fixedGenerator{task: domain.Task{Type: "fixed", A: 2}})

	ws := b.Build(rand.New(rand.NewPCG(4, 4)), 0)
	for i, task := range ws.Days[0].Tasks {
		want := opts.Types[i%2]
		if task.Type != want {
			t.Errorf("task %d type = %q, want %q", i, task.Type, want)
		}
		if task.Type == "fixed" && task.A != 1 {
			t.Errorf("task %d A = %d, want 1 from the generator resolved at construction", i, task.A)
		}
	}
}

func TestNewBuilder_Invalid(t *testing.T) {
	reg := newTestRegistry(t)

	opts := DefaultOptions()
	opts.Types = nil
	if _, err := NewBuilder(reg, opts, nil); !errors.Is(err, domain.ErrNoTaskTypes) {
		t.Errorf("no types error = %v", err)
	}

	opts = DefaultOptions()
	opts.Types = []domain.TaskType{"fractions"}
	if _, err := NewBuilder(reg, opts, nil); !errors.Is(err, domain.ErrUnknownTaskType) {
		t.Errorf("unknown type error = %v", err)
	}

	opts = DefaultOptions()
	opts.TasksPerDay = 0
	if _, err := NewBuilder(reg, opts, nil); !errors.Is(err, domain.ErrInvalidLayout) {
		t.Errorf("zero tasks error = %v", err)
	}
}

func TestNewRun(t *testing.T) {
	run := NewRun(42, 3, []domain.TaskType{domain.TaskAddSub}, 4, 6, "week")
	if run.ID == "" || len(run.ID) != 36 {
		t.Errorf("ID = %q, want a UUID", run.ID)
	}
	if run.Seed != 42 || run.Count != 3 || run.Base != "week" {
		t.Errorf("run = %+v", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}
