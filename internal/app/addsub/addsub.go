// Package addsub generates formal column addition and subtraction tasks.
//
// A task is two random operands, the operator that keeps the result
// non-negative, the result and the carry/borrow row, laid out as a task grid
// and a solution grid. Nothing in this package renders; the grids are handed
// to a domain.Renderer.
package addsub

import (
	"math/rand/v2"

	"github.com/tutu-network/mathsheet/internal/domain"
)

// Options configures a Generator.
type Options struct {
	DigitsMin int
	DigitsMax int
	Padding   Padding
}

// DefaultOptions matches the classic weekly sheet: 4 to 6 digit operands.
func DefaultOptions() Options {
	return Options{DigitsMin: 4, DigitsMax: 6, Padding: DefaultPadding()}
}

// Generator builds addition/subtraction tasks. It holds no mutable state; the
// random stream is passed to every call.
type Generator struct {
	digits Range
	asm    *Assembler
}

// New validates opts and returns a Generator.
func New(opts Options) (*Generator, error) {
	r, err := NewRange(opts.DigitsMin, opts.DigitsMax)
	if err != nil {
		return nil, err
	}
	l, err := NewLayout(r.Max, opts.Padding)
	if err != nil {
		return nil, err
	}
	return &Generator{digits: r, asm: NewAssembler(l)}, nil
}

// Layout returns the grid layout of every generated task.
func (g *Generator) Layout() domain.Layout { return g.asm.Layout() }

// Generate draws two operands from rng and builds the task.
func (g *Generator) Generate(rng *rand.Rand) domain.Task {
	a := g.digits.Operand(rng)
	b := g.digits.Operand(rng)
	return g.Build(a, b)
}

// Build lays out the task for fixed operands.
func (g *Generator) Build(a, b int) domain.Task {
	op, result := Resolve(a, b)
	da, db := Digits(a), Digits(b)
	// a < b rather than op == OpAdd: a tie shows "+" but gets an empty
	// borrow row.
	carries := Carries(da, db, a < b)
	task, solution := g.asm.Assemble(da, db, op, Digits(result), carries)
	return domain.Task{
		Type:     domain.TaskAddSub,
		A:        a,
		B:        b,
		Operator: op,
		Result:   result,
		Carries:  carries,
		Prompt:   task,
		Solution: solution,
	}
}
