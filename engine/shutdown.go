package engine

import "sync"

// Shutdown is the broadcast stop signal shared by the poller and the
// render loop. Either unit may raise it; every subscriber of Done observes
// the single close.
type Shutdown struct {
	once sync.Once
	done chan struct{}
}

// NewShutdown creates an unraised signal.
func NewShutdown() *Shutdown {
	return &Shutdown{done: make(chan struct{})}
}

// Raise fires the signal. Redundant calls are no-ops and never fail.
func (s *Shutdown) Raise() {
	s.once.Do(func() { close(s.done) })
}

// Done returns the channel that is closed when the signal fires.
func (s *Shutdown) Done() <-chan struct{} {
	return s.done
}

// Raised reports whether the signal has fired.
func (s *Shutdown) Raised() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
