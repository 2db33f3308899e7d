// Package worksheet assembles a week of generated tasks into worksheets and
// names the files they are written to.
package worksheet

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/tutu-network/mathsheet/internal/domain"
)

// DefaultDays are the section headings of a weekly sheet.
var DefaultDays = []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}

const (
	DefaultTitle          = "Schriftliche Addition und Subtraktion"
	DefaultSolutionSuffix = "Lösung"
	DefaultTasksPerDay    = 6
)

// Options controls the content of a worksheet.
type Options struct {
	Title          string
	SolutionSuffix string
	Days           []string
	TasksPerDay    int
	Types          []domain.TaskType
}

// DefaultOptions returns the classic weekly addition/subtraction sheet.
func DefaultOptions() Options {
	return Options{
		Title:          DefaultTitle,
		SolutionSuffix: DefaultSolutionSuffix,
		Days:           DefaultDays,
		TasksPerDay:    DefaultTasksPerDay,
		Types:          []domain.TaskType{domain.TaskAddSub},
	}
}

// Builder generates worksheets. Generators are resolved from the Registry
// once, in opts.Types order.
type Builder struct {
	gens []domain.TaskGenerator
	opts Options
	log  *log.Logger
}

// NewBuilder checks opts against reg. A nil logger discards output.
func NewBuilder(reg *Registry, opts Options, logger *log.Logger) (*Builder, error) {
	if len(opts.Types) == 0 {
		return nil, domain.ErrNoTaskTypes
	}
	gens := make([]domain.TaskGenerator, 0, len(opts.Types))
	for _, t := range opts.Types {
		g, err := reg.Get(t)
		if err != nil {
			return nil, err
		}
		gens = append(gens, g)
	}
	if opts.TasksPerDay < 1 {
		return nil, fmt.Errorf("tasks per day %d: %w", opts.TasksPerDay, domain.ErrInvalidLayout)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Builder{gens: gens, opts: opts, log: logger}, nil
}

// Build generates worksheet number index from rng. Task types rotate through
// opts.Types in order across each day.
func (b *Builder) Build(rng *rand.Rand, index int) domain.Worksheet {
	ws := domain.Worksheet{
		Index:         index,
		Title:         b.opts.Title,
		SolutionTitle: b.solutionTitle(),
		Days:          make([]domain.Day, 0, len(b.opts.Days)),
	}
	for _, name := range b.opts.Days {
		day := domain.Day{Name: name, Tasks: make([]domain.Task, 0, b.opts.TasksPerDay)}
		for i := range b.opts.TasksPerDay {
			task := b.gens[i%len(b.gens)].Generate(rng)
			b.log.Printf("[worksheet] %d %s: %d, %d", index, name, task.A, task.B)
			day.Tasks = append(day.Tasks, task)
		}
		ws.Days = append(ws.Days, day)
	}
	return ws
}

// Layouts returns the grid layout of each configured task type, in
// opts.Types order.
func (b *Builder) Layouts() []domain.Layout {
	out := make([]domain.Layout, len(b.gens))
	for i, g := range b.gens {
		out[i] = g.Layout()
	}
	return out
}

// BuildAll generates count worksheets from one random stream.
func (b *Builder) BuildAll(rng *rand.Rand, count int) ([]domain.Worksheet, error) {
	if count < 1 {
		return nil, fmt.Errorf("count %d: %w", count, domain.ErrInvalidWorksheetCount)
	}
	out := make([]domain.Worksheet, count)
	for i := range count {
		out[i] = b.Build(rng, i)
	}
	return out, nil
}

func (b *Builder) solutionTitle() string {
	if b.opts.SolutionSuffix == "" {
		return b.opts.Title
	}
	return b.opts.Title + " - " + b.opts.SolutionSuffix
}
