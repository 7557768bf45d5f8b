// Package tui paints pad frames onto a tcell screen: a bordered pane, the
// visible text lines, and a scrollbar on the right edge.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Region is a clipped rectangular drawing area on a screen. Coordinates
// are region-local; writes outside the bounds are discarded.
type Region struct {
	screen tcell.Screen
	X, Y   int
	W, H   int
}

// NewRegion returns a region covering the whole screen.
func NewRegion(screen tcell.Screen) Region {
	w, h := screen.Size()
	return Region{screen: screen, W: w, H: h}
}

// Sub returns a child region offset by (x, y), clipped to the parent.
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{screen: r.screen, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Cell writes a single rune at region-local coordinates.
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return
	}
	r.screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Text writes a string starting at (x, y), truncated at the region width.
// Wide runes occupy two cells; zero-width runes are skipped.
func (r Region) Text(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		r.Cell(col, y, ch, style)
		col += w
	}
}
