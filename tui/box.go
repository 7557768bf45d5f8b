package tui

import "github.com/gdamore/tcell/v2"

// Box drawing characters (single line)
var boxChars = [6]rune{'┌', '─', '┐', '│', '└', '┘'}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box draws a border around the region edge.
func (r Region) Box(style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}

	// Corners
	r.Cell(0, 0, boxChars[boxTL], style)
	r.Cell(r.W-1, 0, boxChars[boxTR], style)
	r.Cell(0, r.H-1, boxChars[boxBL], style)
	r.Cell(r.W-1, r.H-1, boxChars[boxBR], style)

	// Horizontal edges
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, boxChars[boxH], style)
		r.Cell(x, r.H-1, boxChars[boxH], style)
	}

	// Vertical edges
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, boxChars[boxV], style)
		r.Cell(r.W-1, y, boxChars[boxV], style)
	}
}

// Pane draws a bordered pane with a title on the top edge and returns the
// content region inside the border.
func (r Region) Pane(title string, border, titleStyle tcell.Style) Region {
	if r.W < 3 || r.H < 3 {
		return r.Sub(1, 1, 0, 0)
	}

	r.Box(border)

	if title != "" {
		r.Text(2, 0, " "+title+" ", titleStyle)
	}

	return r.Sub(1, 1, r.W-2, r.H-2)
}
