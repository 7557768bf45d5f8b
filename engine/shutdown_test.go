package engine

import (
	"sync"
	"testing"
	"time"
)

func TestShutdownInitiallyUnraised(t *testing.T) {
	s := NewShutdown()
	if s.Raised() {
		t.Error("Expected new signal to be unraised")
	}
	select {
	case <-s.Done():
		t.Error("Expected Done channel to block before Raise")
	default:
	}
}

func TestRaiseIsIdempotent(t *testing.T) {
	s := NewShutdown()
	s.Raise()
	s.Raise()
	s.Raise()
	if !s.Raised() {
		t.Error("Expected signal to be raised")
	}
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	s := NewShutdown()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-s.Done()
		}()
	}

	s.Raise()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected all subscribers to observe the signal")
	}
}
