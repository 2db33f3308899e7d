package pdf

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/tutu-network/mathsheet/internal/domain"
)

// Renderer draws worksheets. It is safe for concurrent use; every Render
// call builds its own document.
type Renderer struct {
	style Style
}

// New returns a Renderer using style.
func New(style Style) *Renderer {
	return &Renderer{style: style}
}

// CheckLayout reports domain.ErrInvalidLayout when a grid of layout l does
// not fit into one task column of the page, or is taller than a page below
// its day heading.
func (r *Renderer) CheckLayout(l domain.Layout) error {
	box := r.pageBox()
	width := float64(l.Cols) * r.style.CellSize
	pitch := box.Width / float64(max(1, r.style.TasksPerRow))
	if width > pitch {
		return fmt.Errorf("grid width %.1fpt exceeds column width %.1fpt: %w", width, pitch, domain.ErrInvalidLayout)
	}
	height := float64(l.Rows)*r.style.CellSize + r.style.headingHeight()
	if height > box.Bottom-box.Top {
		return fmt.Errorf("grid height %.1fpt exceeds page height %.1fpt: %w", height, box.Bottom-box.Top, domain.ErrInvalidLayout)
	}
	return nil
}

// Render writes ws as a PDF to w. With solution set, the solution title and
// solution grids are drawn.
func (r *Renderer) Render(w io.Writer, ws domain.Worksheet, solution bool) error {
	doc := r.build(ws, solution)
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WriteFile renders ws into the file at path.
func (r *Renderer) WriteFile(path string, ws domain.Worksheet, solution bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.Render(f, ws, solution); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Pages returns how many pages ws occupies.
func (r *Renderer) Pages(ws domain.Worksheet) int {
	items := plan(ws, ws.Title, r.style, r.pageBox())
	if len(items) == 0 {
		return 0
	}
	return items[len(items)-1].Page
}

func (r *Renderer) pageBox() pageBox {
	// A4 in points.
	const w, h = 595.28, 841.89
	m := r.style.Margin
	return pageBox{Left: m, Top: m, Width: w - 2*m, Bottom: h - m}
}

func (r *Renderer) build(ws domain.Worksheet, solution bool) *fpdf.Fpdf {
	s := r.style
	title := ws.Title
	if solution {
		title = ws.SolutionTitle
	}

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(s.Margin, s.Margin, s.Margin)
	doc.SetAutoPageBreak(false, s.Margin)
	doc.SetTitle(title, true)
	doc.SetCreator("mathsheet", true)

	page := 0
	for _, it := range plan(ws, title, s, r.pageBox()) {
		for page < it.Page {
			doc.AddPage()
			page++
		}
		switch it.Kind {
		case itemTitle:
			doc.SetFont(s.FontFamily, "B", s.TitleSize)
			doc.SetXY(it.X, it.Y)
			doc.CellFormat(0, s.titleHeight(), latin1(it.Text), "", 0, "L", false, 0, "")
		case itemHeading:
			doc.SetFont(s.FontFamily, "B", s.HeadingSize)
			doc.SetXY(it.X, it.Y)
			doc.CellFormat(0, s.headingHeight(), latin1(it.Text), "", 0, "L", false, 0, "")
		case itemGrid:
			task := ws.Days[it.Day].Tasks[it.Task]
			g := task.Prompt
			if solution {
				g = task.Solution
			}
			r.drawGrid(doc, it.X, it.Y, g)
		}
	}
	return doc
}

// drawGrid draws one task table: a thin gray cell grid, a box, the thick
// rule above the result row and the centered cell text. Carry markers use
// the small font.
func (r *Renderer) drawGrid(doc *fpdf.Fpdf, x, y float64, g domain.Grid) {
	s := r.style
	l := g.Layout
	cs := s.CellSize
	first, last := l.InnerCols()

	doc.SetDrawColor(s.InnerGridGray, s.InnerGridGray, s.InnerGridGray)
	doc.SetLineWidth(s.InnerGridWidth)
	for row := range l.Rows {
		for col := range l.Cols {
			cx, cy := x+float64(col)*cs, y+float64(row)*cs
			doc.Rect(cx, cy, cs, cs, "D")

			text := g.Row(row)[col]
			if text == "" {
				continue
			}
			size := s.FontSize
			if row == l.CarryRow() && col > first && col <= last {
				size = s.CarryFontSize
			}
			doc.SetFont(s.FontFamily, "", size)
			doc.SetXY(cx, cy)
			doc.CellFormat(cs, cs, text, "", 0, "CM", false, 0, "")
		}
	}

	doc.SetDrawColor(0, 0, 0)
	doc.SetLineWidth(s.BoxWidth)
	doc.Rect(x, y, float64(l.Cols)*cs, float64(l.Rows)*cs, "D")

	ry := y + float64(l.RuleRow())*cs
	doc.SetLineWidth(s.RuleWidth)
	doc.Line(x+float64(first)*cs, ry, x+float64(last+1)*cs, ry)
}

// latin1 converts UTF-8 text to Windows-1252, the encoding of the core PDF
// fonts. Text that cannot be encoded is passed through unchanged.
func latin1(s string) string {
	out, err := charmap.Windows1252.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return out
}
