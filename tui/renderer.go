package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/greetpad/core"
)

// Renderer paints pad frames onto a tcell screen. One Draw call produces
// one complete, consistent frame.
type Renderer struct {
	screen tcell.Screen
	title  string
}

// NewRenderer creates a renderer for the given screen. The title appears
// on the top border of the pane.
func NewRenderer(screen tcell.Screen, title string) *Renderer {
	return &Renderer{screen: screen, title: title}
}

// Draw clears the screen, paints the bordered pane with the visible lines
// inside it and the scrollbar over the right edge, then flushes. The
// screen size is read fresh each frame, so resizes take effect on the
// next draw.
func (r *Renderer) Draw(lines []string, scroll core.ScrollState) error {
	r.screen.Clear()

	root := NewRegion(r.screen)
	content := root.Pane(r.title, tcell.StyleDefault, tcell.StyleDefault.Bold(true))

	for i, line := range lines {
		if i >= content.H {
			break
		}
		content.Text(0, i, line, tcell.StyleDefault)
	}

	ScrollBar(root, root.W-1, scroll.Offset, content.H, scroll.Total, tcell.StyleDefault)

	r.screen.Show()
	return nil
}
