package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/greetpad/engine"
	"github.com/lixenwraith/greetpad/events"
)

// Poller consumes the decoded terminal event stream and forwards pad
// events to the render loop. It is the sole producer on the out channel.
type Poller struct {
	in       <-chan tcell.Event
	out      chan<- events.Event
	shutdown *engine.Shutdown
}

// NewPoller wires the poller between the decoded stream and the bounded
// event queue. In production the stream comes from Screen.ChannelEvents,
// which closes it once the shutdown signal fires.
func NewPoller(in <-chan tcell.Event, out chan<- events.Event, shutdown *engine.Shutdown) *Poller {
	return &Poller{in: in, out: out, shutdown: shutdown}
}

// Run forwards events until the shutdown signal fires or the stream ends.
// Stream end raises shutdown itself so the render loop stops too. A
// terminal error event aborts the poller without retry; the error is
// reported after both units have joined. When the queue is full the send
// blocks, propagating backpressure to the terminal; a blocked send still
// observes shutdown.
func (p *Poller) Run() error {
	defer close(p.out)

	for {
		select {
		case <-p.shutdown.Done():
			return nil
		case ev, ok := <-p.in:
			if !ok {
				p.shutdown.Raise()
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventError:
				p.shutdown.Raise()
				return fmt.Errorf("decode input: %s", ev.Error())
			case *tcell.EventKey:
				pe, ok := Translate(ev)
				if !ok {
					continue
				}
				select {
				case p.out <- pe:
				case <-p.shutdown.Done():
					return nil
				}
			}
		}
	}
}
