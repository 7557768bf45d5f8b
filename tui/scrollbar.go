package tui

import "github.com/gdamore/tcell/v2"

// ScrollBar draws a vertical scrollbar track with a thumb along column x
// of the region.
func ScrollBar(r Region, x int, offset, visible, total int, style tcell.Style) {
	if x < 0 || x >= r.W || r.H < 1 {
		return
	}

	trackH := r.H
	if total <= visible || trackH < 3 {
		// No scrolling needed or track too small
		for y := 0; y < trackH; y++ {
			r.Cell(x, y, '│', style.Dim(true))
		}
		return
	}

	// Calculate thumb size and position
	thumbH := (visible * trackH) / total
	if thumbH < 1 {
		thumbH = 1
	}
	if thumbH > trackH {
		thumbH = trackH
	}

	maxScroll := total - visible
	thumbY := 0
	if maxScroll > 0 {
		thumbY = (offset * (trackH - thumbH)) / maxScroll
	}
	if thumbY < 0 {
		thumbY = 0
	}
	if thumbY+thumbH > trackH {
		thumbY = trackH - thumbH
	}

	// Draw track and thumb
	for y := 0; y < trackH; y++ {
		var ch rune
		if y >= thumbY && y < thumbY+thumbH {
			ch = '█'
		} else {
			ch = '░'
		}
		r.Cell(x, y, ch, style)
	}
}
