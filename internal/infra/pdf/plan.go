package pdf

import "github.com/tutu-network/mathsheet/internal/domain"

type itemKind int

const (
	itemTitle itemKind = iota
	itemHeading
	itemGrid
)

// placement is one thing drawn on a page at (X, Y), the top-left corner.
type placement struct {
	Kind itemKind
	Page int
	X, Y float64
	Text string // title or heading text
	Day  int    // day index for headings and grids
	Task int    // task index within the day for grids
}

// pageBox is the drawable area of a page.
type pageBox struct {
	Left, Top, Width, Bottom float64
}

// plan places the title, each day heading and each task grid. Tasks of a day
// are split into balanced columns filled top to bottom, left to right. A
// heading is never left alone at the bottom of a page, and a row of grids is
// never split across pages.
func plan(ws domain.Worksheet, title string, s Style, box pageBox) []placement {
	var out []placement
	page := 1
	y := box.Top

	out = append(out, placement{Kind: itemTitle, Page: page, X: box.Left, Y: y, Text: title})
	y += s.titleHeight()

	perRow := max(1, s.TasksPerRow)
	colWidth := box.Width / float64(perRow)

	for di, day := range ws.Days {
		n := len(day.Tasks)
		gridH := 0.0
		if n > 0 {
			gridH = float64(day.Tasks[0].Prompt.Layout.Rows) * s.CellSize
		}

		// Keep the heading with the first row of grids.
		if y+s.headingHeight()+gridH > box.Bottom && y > box.Top {
			page++
			y = box.Top
		}
		out = append(out, placement{Kind: itemHeading, Page: page, X: box.Left, Y: y, Text: day.Name, Day: di})
		y += s.headingHeight()

		if n == 0 {
			continue
		}
		cols := min(perRow, n)
		rows := (n + cols - 1) / cols
		for r := range rows {
			if y+gridH > box.Bottom && y > box.Top {
				page++
				y = box.Top
			}
			for c := range cols {
				idx := c*rows + r
				if idx >= n {
					continue
				}
				out = append(out, placement{
					Kind: itemGrid,
					Page: page,
					X:    box.Left + float64(c)*colWidth,
					Y:    y,
					Day:  di,
					Task: idx,
				})
			}
			y += gridH + s.TaskSpacing
		}
	}
	return out
}
