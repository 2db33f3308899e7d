// Package pdf renders worksheets to A4 PDF documents with go-pdf/fpdf.
// Sizes are in points.
package pdf

// Style controls how tasks are drawn and placed on the page.
type Style struct {
	CellSize      float64
	TaskSpacing   float64
	TasksPerRow   int
	Margin        float64
	FontFamily    string
	FontSize      float64
	CarryFontSize float64
	TitleSize     float64
	HeadingSize   float64

	// Gray levels (0 black … 255 white) and line widths of the grid.
	InnerGridGray  int
	InnerGridWidth float64
	BoxWidth       float64
	RuleWidth      float64
}

// DefaultStyle is a 12pt cell grid, three tasks per row.
func DefaultStyle() Style {
	return Style{
		CellSize:       12,
		TaskSpacing:    16,
		TasksPerRow:    3,
		Margin:         72,
		FontFamily:     "Helvetica",
		FontSize:       10,
		CarryFontSize:  8,
		TitleSize:      18,
		HeadingSize:    14,
		InnerGridGray:  128,
		InnerGridWidth: 0.25,
		BoxWidth:       0.5,
		RuleWidth:      2,
	}
}

func (s Style) titleHeight() float64   { return s.TitleSize * 1.5 }
func (s Style) headingHeight() float64 { return s.HeadingSize * 1.5 }
