// Package audio provides interaction feedback tones for rating widgets.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const feedbackSampleRate = beep.SampleRate(44100)

// Feedback plays short tones for rating interactions. Initialization
// failure leaves the feedback silent rather than erroring; the widget
// works without sound.
type Feedback struct {
	ready atomic.Bool
	muted atomic.Bool
}

// NewFeedback initializes the speaker. The returned error is informational;
// the Feedback is usable (silently) either way.
func NewFeedback() (*Feedback, error) {
	f := &Feedback{}
	err := speaker.Init(feedbackSampleRate, feedbackSampleRate.N(time.Second/10))
	if err == nil {
		f.ready.Store(true)
	}
	return f, err
}

// Enabled reports whether tones will actually play
func (f *Feedback) Enabled() bool {
	return f.ready.Load() && !f.muted.Load()
}

// SetMuted toggles tone playback without tearing down the speaker
func (f *Feedback) SetMuted(muted bool) {
	f.muted.Store(muted)
}

// Tick plays a short low tone for a live value change during a drag
func (f *Feedback) Tick() {
	f.tone(440, 25*time.Millisecond)
}

// Commit plays a brighter tone for a committed rating
func (f *Feedback) Commit() {
	f.tone(880, 60*time.Millisecond)
}

// tone plays a sine burst at the given frequency
func (f *Feedback) tone(freq float64, d time.Duration) {
	if !f.Enabled() {
		return
	}

	sine, err := generators.SineTone(feedbackSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(feedbackSampleRate.N(d), sine))
}

// Close mutes future playback. The speaker itself is process-global and
// left running; repeated open/close cycles would otherwise re-init it.
func (f *Feedback) Close() {
	f.ready.Store(false)
}
