package domain

import "time"

// Day is one section of a worksheet: a heading and its tasks.
type Day struct {
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Worksheet is a full week of tasks. The task document and the solution
// document are rendered from the same Worksheet.
type Worksheet struct {
	Index         int    `json:"index"`
	Title         string `json:"title"`
	SolutionTitle string `json:"solution_title"`
	Days          []Day  `json:"days"`
}

// TaskCount returns the number of tasks across all days.
func (w Worksheet) TaskCount() int {
	n := 0
	for _, d := range w.Days {
		n += len(d.Tasks)
	}
	return n
}

// OutputFiles names the pair of PDF files for one worksheet.
type OutputFiles struct {
	Task     string `json:"task"`
	Solution string `json:"solution"`
}

// Run is the persisted record of one generate invocation.
type Run struct {
	ID        string        `json:"id"`
	Seed      uint64        `json:"seed"`
	Count     int           `json:"count"`
	TaskTypes []TaskType    `json:"task_types"`
	DigitsMin int           `json:"digits_min"`
	DigitsMax int           `json:"digits_max"`
	Base      string        `json:"base"`
	Files     []OutputFiles `json:"files,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
