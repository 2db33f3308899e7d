package domain

// Layout describes where the rows of a column-arithmetic task sit inside its
// Grid. Row and column indexes are zero-based.
type Layout struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`

	RowsAbove  int `json:"rows_above"`
	RowsBelow  int `json:"rows_below"`
	ColsBefore int `json:"cols_before"`
	ColsAfter  int `json:"cols_after"`

	FirstOperandRow  int `json:"first_operand_row"`
	SecondOperandRow int `json:"second_operand_row"`
	// OperatorRow holds the operator in its leftmost inner cell and the
	// carry/borrow markers right-aligned in the same row.
	OperatorRow int `json:"operator_row"`
	ResultRow   int `json:"result_row"`
}

// CarryRow is the row that carries the small carry/borrow markers.
func (l Layout) CarryRow() int { return l.OperatorRow }

// RuleRow is the row whose top edge gets the thick result line.
func (l Layout) RuleRow() int { return l.ResultRow }

// InnerCols returns the first and last column (inclusive) between the padding
// columns. The operator and all digits live inside that span.
func (l Layout) InnerCols() (first, last int) {
	return l.ColsBefore, l.Cols - 1 - l.ColsAfter
}

// Grid is one rendered task or solution: rows of single-character cells plus
// the layout metadata a renderer needs to style them.
type Grid struct {
	Layout Layout     `json:"layout"`
	Cells  [][]string `json:"cells"`
}

// NewGrid returns a blank grid sized for the layout.
func NewGrid(l Layout) Grid {
	cells := make([][]string, l.Rows)
	for i := range cells {
		cells[i] = make([]string, l.Cols)
	}
	return Grid{Layout: l, Cells: cells}
}

// Row returns the cells of row i.
func (g Grid) Row(i int) []string { return g.Cells[i] }
