package domain

import "testing"

func testLayout() Layout {
	return Layout{
		Rows: 6, Cols: 9,
		RowsAbove: 1, RowsBelow: 1, ColsBefore: 1, ColsAfter: 1,
		FirstOperandRow: 1, SecondOperandRow: 2, OperatorRow: 3, ResultRow: 4,
	}
}

func TestLayout_Rows(t *testing.T) {
	l := testLayout()
	if l.CarryRow() != 3 {
		t.Errorf("CarryRow() = %d, want 3", l.CarryRow())
	}
	if l.RuleRow() != 4 {
		t.Errorf("RuleRow() = %d, want 4", l.RuleRow())
	}
	first, last := l.InnerCols()
	if first != 1 || last != 7 {
		t.Errorf("InnerCols() = %d, %d, want 1, 7", first, last)
	}
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(testLayout())
	if len(g.Cells) != 6 {
		t.Fatalf("rows = %d, want 6", len(g.Cells))
	}
	for i := range g.Cells {
		if len(g.Row(i)) != 9 {
			t.Errorf("row %d has %d cells, want 9", i, len(g.Row(i)))
		}
		for _, c := range g.Row(i) {
			if c != "" {
				t.Errorf("row %d not blank: %q", i, c)
			}
		}
	}
}

func TestWorksheet_TaskCount(t *testing.T) {
	ws := Worksheet{Days: []Day{
		{Name: "Montag", Tasks: make([]Task, 6)},
		{Name: "Dienstag", Tasks: make([]Task, 4)},
	}}
	if got := ws.TaskCount(); got != 10 {
		t.Errorf("TaskCount() = %d, want 10", got)
	}
}

func TestTask_String(t *testing.T) {
	task := Task{A: 521, B: 387, Operator: OpSub, Result: 134}
	if got := task.String(); got != "521 - 387 = 134" {
		t.Errorf("String() = %q", got)
	}
}
