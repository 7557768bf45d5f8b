// Package engine implements the render/event loop and the shutdown signal
// that coordinates it with the input poller.
package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/greetpad/core"
	"github.com/lixenwraith/greetpad/events"
)

// Renderer draws one frame from the visible lines and scrollbar state.
type Renderer interface {
	Draw(lines []string, scroll core.ScrollState) error
}

// Feedback receives audible notifications for pad activity. Calls come
// from the loop goroutine only.
type Feedback interface {
	KeyTyped()
	LineBroken()
}

// Loop owns the pad state, drains the event queue, and requests exactly
// one frame draw per iteration. It is the sole consumer of the queue.
type Loop struct {
	state    *core.State
	queue    <-chan events.Event
	shutdown *Shutdown
	renderer Renderer
	feedback Feedback // nil disables audio feedback
	refresh  time.Duration
}

// NewLoop creates the render loop around the seed pad state.
func NewLoop(queue <-chan events.Event, shutdown *Shutdown, renderer Renderer, feedback Feedback, refresh time.Duration) *Loop {
	return &Loop{
		state:    core.NewState(),
		queue:    queue,
		shutdown: shutdown,
		renderer: renderer,
		feedback: feedback,
		refresh:  refresh,
	}
}

// State returns the pad state. The loop owns it; read it only after Run
// has returned.
func (l *Loop) State() *core.State {
	return l.state
}

// Run drives the loop until the shutdown signal fires or an Exit event
// arrives. Each iteration races the queue, the shutdown signal, and the
// refresh ticker, then ends with one frame draw. Shutdown and Exit return
// without a final draw. A draw failure raises shutdown so the poller
// stops, and the error is reported after both units have joined.
func (l *Loop) Run() error {
	ticker := time.NewTicker(l.refresh)
	defer ticker.Stop()

	for {
		var ev events.Event
		var have bool

		select {
		case e, ok := <-l.queue:
			if !ok {
				// Producer gone without shutdown: treat as idle and keep
				// drawing on ticks. A nil channel never fires again.
				l.queue = nil
			} else {
				ev, have = e, true
			}
		case <-l.shutdown.Done():
			return nil
		case <-ticker.C:
		}

		if have {
			if ev.Type == events.TypeExit {
				l.shutdown.Raise()
				return nil
			}
			l.state.Apply(ev)
			l.notify(ev)
		}

		if err := l.renderer.Draw(l.state.VisibleLines(), l.state.Scroll()); err != nil {
			l.shutdown.Raise()
			return fmt.Errorf("draw frame: %w", err)
		}
	}
}

func (l *Loop) notify(ev events.Event) {
	if l.feedback == nil {
		return
	}
	switch ev.Type {
	case events.TypeRune:
		l.feedback.KeyTyped()
	case events.TypeLineBreak:
		l.feedback.LineBroken()
	}
}
