// Package chime plays a short tone when the logo animation changes state.
package chime

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/propeltutoring/logo"
)

// SampleRate is the speaker rate.
const SampleRate = beep.SampleRate(44100)

// toneLength is how long each cue plays.
const toneLength = 80 * time.Millisecond

// frequencies per target state: a rising triad, the spin an octave up.
var frequencies = map[logo.State]float64{
	logo.Logo: 523.25,
	logo.Fade: 659.25,
	logo.Spin: 1046.5,
}

// Frequency returns the tone frequency played on entering s, or 0 for
// states without a cue.
func Frequency(s logo.State) float64 {
	return frequencies[s]
}

// Tone returns a streamer that plays freq for d.
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("chime: tone %vHz: %w", freq, err)
	}
	return beep.Take(SampleRate.N(d), sine), nil
}

// Player plays cues on the system speaker.
type Player struct {
	ok bool
}

// New initializes the speaker. Audio is optional; on error the returned
// player is silent and the error describes why.
func New() (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return &Player{}, fmt.Errorf("chime: init speaker: %w", err)
	}
	return &Player{ok: true}, nil
}

// Cue plays the tone for entering to. It does not block.
func (p *Player) Cue(_, to logo.State) {
	if p == nil || !p.ok {
		return
	}
	freq := Frequency(to)
	if freq == 0 {
		return
	}
	tone, err := Tone(freq, toneLength)
	if err != nil {
		logo.Logger().Warn("chime failed", "error", err)
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker.
func (p *Player) Close() {
	if p != nil && p.ok {
		speaker.Close()
		p.ok = false
	}
}
