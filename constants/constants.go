package constants

import "time"

// Event Queue
const (
	// EventQueueSize bounds the poller-to-loop event channel.
	// A full queue blocks the poller; events are never dropped.
	EventQueueSize = 16
)

// Render Loop Timing
const (
	// RefreshInterval forces a redraw even when no events arrive
	RefreshInterval = 100 * time.Millisecond
)

// Seed Content
const (
	// SeedText is the pad content at startup
	SeedText = "Hello, World!\n"

	// SeedLineCount is the line count of SeedText
	SeedLineCount = 1
)

// Feedback Tone Timing
const (
	KeyToneDuration  = 30 * time.Millisecond
	LineToneDuration = 60 * time.Millisecond
)

// Feedback Tone Pitch (Hz)
const (
	KeyToneFreq  = 440.0
	LineToneFreq = 880.0
)
