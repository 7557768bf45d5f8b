// greetpad is a minimal scrollable typing pad. Two units run concurrently
// for the lifetime of the process: an input poller translating decoded
// keys into pad events, and a render loop that owns the pad state. They
// are connected by a bounded event queue and a broadcast shutdown signal
// that either unit may raise.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/greetpad/audio"
	"github.com/lixenwraith/greetpad/constants"
	"github.com/lixenwraith/greetpad/engine"
	"github.com/lixenwraith/greetpad/events"
	"github.com/lixenwraith/greetpad/input"
	"github.com/lixenwraith/greetpad/tui"
)

func main() {
	feedback, err := audio.NewFeedback()
	if err != nil {
		// Non-fatal, the pad can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	pollErr, drawErr, initErr := run(feedback)
	feedback.Close()

	if initErr != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", initErr)
		os.Exit(1)
	}

	// Unit failures are reported only here, after the terminal has been
	// restored on all paths.
	code := 0
	if pollErr != nil {
		fmt.Printf("Polling error: %v\n", pollErr)
		code = 1
	}
	if drawErr != nil {
		fmt.Printf("Drawing error: %v\n", drawErr)
		code = 1
	}
	os.Exit(code)
}

// run acquires the terminal, starts both units, joins them, and releases
// the terminal before returning their results.
func run(feedback *audio.Feedback) (pollErr, drawErr, initErr error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, nil, err
	}
	defer screen.Fini()

	shutdown := engine.NewShutdown()
	queue := make(chan events.Event, constants.EventQueueSize)

	// ChannelEvents closes the decoded stream once shutdown fires, so a
	// poller blocked on input still terminates.
	decoded := make(chan tcell.Event)
	go screen.ChannelEvents(decoded, shutdown.Done())

	poller := input.NewPoller(decoded, queue, shutdown)
	loop := engine.NewLoop(queue, shutdown,
		tui.NewRenderer(screen, "Greeting"), feedback, constants.RefreshInterval)

	pollDone := make(chan error, 1)
	drawDone := make(chan error, 1)
	go func() { pollDone <- poller.Run() }()
	go func() { drawDone <- loop.Run() }()

	return <-pollDone, <-drawDone, nil
}
