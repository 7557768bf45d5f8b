// Package core holds the pad state. A single State instance is owned
// exclusively by the render loop; no other unit reads or writes it, so no
// locking is involved.
package core

import (
	"strings"

	"github.com/lixenwraith/greetpad/constants"
	"github.com/lixenwraith/greetpad/events"
)

// ScrollState is the display-only scrollbar state, recomputed from the
// line count and scroll position before every frame.
type ScrollState struct {
	Offset int // first visible line index
	Total  int // total line count
}

// State holds the pad text and viewport position.
// Invariant: 0 <= ScrollPos <= LineCount.
type State struct {
	text      strings.Builder
	LineCount int
	ScrollPos int
}

// NewState returns the seed state: one greeting line, viewport at the top.
func NewState() *State {
	s := &State{LineCount: constants.SeedLineCount}
	s.text.WriteString(constants.SeedText)
	return s
}

// Text returns the full buffer contents.
func (s *State) Text() string {
	return s.text.String()
}

// Apply performs the state transition for one pad event. TypeExit is not a
// state transition and is handled by the loop itself.
func (s *State) Apply(ev events.Event) {
	switch ev.Type {
	case events.TypeRune:
		s.text.WriteRune(ev.Rune)
	case events.TypeLineBreak:
		s.text.WriteByte('\n')
		s.LineCount++
	case events.TypeScrollDown:
		s.ScrollPos = clamp(s.ScrollPos+1, 0, s.LineCount)
	case events.TypeScrollUp:
		s.ScrollPos = clamp(s.ScrollPos-1, 0, s.LineCount)
	}
}

// Lines splits the buffer into display lines. A trailing newline does not
// contribute an empty final line.
func (s *State) Lines() []string {
	text := strings.TrimSuffix(s.text.String(), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// VisibleLines returns the lines at and below the scroll position.
func (s *State) VisibleLines() []string {
	lines := s.Lines()
	if s.ScrollPos >= len(lines) {
		return nil
	}
	return lines[s.ScrollPos:]
}

// Scroll returns the widget state for the current frame.
func (s *State) Scroll() ScrollState {
	return ScrollState{Offset: s.ScrollPos, Total: s.LineCount}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
