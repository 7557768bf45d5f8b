// Package input translates decoded terminal key events into pad events
// and runs the polling unit that feeds them to the render loop.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/greetpad/events"
)

// specialKeys maps non-rune keys to pad events
var specialKeys = map[tcell.Key]events.Type{
	tcell.KeyUp:    events.TypeScrollUp,
	tcell.KeyDown:  events.TypeScrollDown,
	tcell.KeyEnter: events.TypeLineBreak,
}

// Translate maps a decoded key press to a pad event. It returns false for
// keys outside the table; those produce no event at all.
func Translate(ev *tcell.EventKey) (events.Event, bool) {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == 'q' {
			return events.Event{Type: events.TypeExit}, true
		}
		return events.Event{Type: events.TypeRune, Rune: ev.Rune()}, true
	}
	if t, ok := specialKeys[ev.Key()]; ok {
		return events.Event{Type: t}, true
	}
	return events.Event{}, false
}
