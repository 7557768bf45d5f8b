// Package audio plays short feedback tones for pad activity.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/greetpad/constants"
)

// Feedback plays a tick for typed characters and a blip for line breaks.
// Initialization is non-fatal: without a speaker the player stays silent.
type Feedback struct {
	sampleRate beep.SampleRate
	ready      bool
}

// NewFeedback initializes the speaker. The returned player is usable even
// when err is non-nil; it simply produces no sound.
func NewFeedback() (*Feedback, error) {
	f := &Feedback{sampleRate: beep.SampleRate(44100)}
	err := speaker.Init(f.sampleRate, f.sampleRate.N(time.Second/10))
	if err == nil {
		f.ready = true
	}
	return f, err
}

// KeyTyped plays a short tick for an appended character.
func (f *Feedback) KeyTyped() {
	f.tone(constants.KeyToneFreq, constants.KeyToneDuration)
}

// LineBroken plays a higher blip for a line break.
func (f *Feedback) LineBroken() {
	f.tone(constants.LineToneFreq, constants.LineToneDuration)
}

// Close shuts the speaker down.
func (f *Feedback) Close() {
	if f.ready {
		speaker.Close()
	}
}

func (f *Feedback) tone(freq float64, d time.Duration) {
	if !f.ready {
		return
	}
	sine, err := generators.SineTone(f.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(f.sampleRate.N(d), sine))
}
