// Package domain holds the pure worksheet types shared by every layer.
package domain

import "strconv"

// Operator is the arithmetic operator shown in a task.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
)

// String returns the operator symbol.
func (o Operator) String() string { return string(o) }

// TaskType names a kind of task a worksheet can contain.
type TaskType string

const (
	// TaskAddSub is formal column addition and subtraction.
	TaskAddSub TaskType = "addsub"
)

// Task is one generated exercise. It is immutable once built.
type Task struct {
	Type     TaskType `json:"type"`
	A        int      `json:"a"`
	B        int      `json:"b"`
	Operator Operator `json:"operator"`
	Result   int      `json:"result"`
	Carries  []string `json:"carries"`
	Prompt   Grid     `json:"task"`
	Solution Grid     `json:"solution"`
}

// String renders the task as a one-line equation, e.g. "521 - 387 = 134".
func (t Task) String() string {
	return strconv.Itoa(t.A) + " " + t.Operator.String() + " " +
		strconv.Itoa(t.B) + " = " + strconv.Itoa(t.Result)
}
