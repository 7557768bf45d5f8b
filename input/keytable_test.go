package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/greetpad/events"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want events.Event
		ok   bool
	}{
		{"quit key", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), events.Event{Type: events.TypeExit}, true},
		{"lowercase rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), events.Event{Type: events.TypeRune, Rune: 'a'}, true},
		{"uppercase Q is a plain rune", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), events.Event{Type: events.TypeRune, Rune: 'Q'}, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), events.Event{Type: events.TypeRune, Rune: ' '}, true},
		{"wide rune", tcell.NewEventKey(tcell.KeyRune, '界', tcell.ModNone), events.Event{Type: events.TypeRune, Rune: '界'}, true},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), events.Event{Type: events.TypeScrollUp}, true},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), events.Event{Type: events.TypeScrollDown}, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), events.Event{Type: events.TypeLineBreak}, true},
		{"escape ignored", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), events.Event{}, false},
		{"left arrow ignored", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), events.Event{}, false},
		{"function key ignored", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), events.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.ev)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("Expected event %+v, got %+v", tt.want, got)
			}
		})
	}
}
