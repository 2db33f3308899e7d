package addsub

import (
	"fmt"

	"github.com/tutu-network/mathsheet/internal/domain"
)

// Padding is the number of blank rows and columns around a task.
type Padding struct {
	RowsAbove  int `toml:"rows_above" json:"rows_above"`
	RowsBelow  int `toml:"rows_below" json:"rows_below"`
	ColsBefore int `toml:"cols_before" json:"cols_before"`
	ColsAfter  int `toml:"cols_after" json:"cols_after"`
}

// DefaultPadding leaves one blank cell on every side.
func DefaultPadding() Padding {
	return Padding{RowsAbove: 1, RowsBelow: 1, ColsBefore: 1, ColsAfter: 1}
}

// NewLayout sizes a grid for operands of up to digitsMax digits: two operand
// rows, the operator/carry row and the result row, plus padding. The extra
// column holds the operator and the possible extra result digit.
func NewLayout(digitsMax int, p Padding) (domain.Layout, error) {
	if p.RowsAbove < 0 || p.RowsBelow < 0 || p.ColsBefore < 0 || p.ColsAfter < 0 {
		return domain.Layout{}, fmt.Errorf("padding %+v: %w", p, domain.ErrInvalidLayout)
	}
	return domain.Layout{
		Rows:             4 + p.RowsAbove + p.RowsBelow,
		Cols:             digitsMax + 1 + p.ColsBefore + p.ColsAfter,
		RowsAbove:        p.RowsAbove,
		RowsBelow:        p.RowsBelow,
		ColsBefore:       p.ColsBefore,
		ColsAfter:        p.ColsAfter,
		FirstOperandRow:  p.RowsAbove,
		SecondOperandRow: p.RowsAbove + 1,
		OperatorRow:      p.RowsAbove + 2,
		ResultRow:        p.RowsAbove + 3,
	}, nil
}

// Assembler places operands, operator, carries and result into grids.
type Assembler struct {
	layout domain.Layout
}

// NewAssembler returns an assembler for the given layout.
func NewAssembler(l domain.Layout) *Assembler {
	return &Assembler{layout: l}
}

// Layout returns the layout every assembled grid shares.
func (a *Assembler) Layout() domain.Layout { return a.layout }

// Assemble builds the task grid (operands and operator) and the solution grid
// (the same plus carries and result).
func (a *Assembler) Assemble(x, y []int, op domain.Operator, result []int, carries []string) (task, solution domain.Grid) {
	l := a.layout
	for i := range 2 {
		g := domain.NewGrid(l)
		a.fillRight(g, l.FirstOperandRow, cells(x))
		a.fillRight(g, l.SecondOperandRow, cells(y))
		a.fillLeft(g, l.OperatorRow, []string{op.String()})
		if i == 0 {
			task = g
			continue
		}
		a.fillRight(g, l.OperatorRow, carries)
		a.fillRight(g, l.ResultRow, cells(result))
		solution = g
	}
	return task, solution
}

// fillLeft writes data starting at the first inner column.
func (a *Assembler) fillLeft(g domain.Grid, row int, data []string) {
	for k, v := range data {
		g.Cells[row][a.layout.ColsBefore+k] = v
	}
}

// fillRight writes data so its last entry lands in the last inner column.
func (a *Assembler) fillRight(g domain.Grid, row int, data []string) {
	last := a.layout.Cols - 1 - a.layout.ColsAfter
	for k := range data {
		g.Cells[row][last-k] = data[len(data)-1-k]
	}
}
