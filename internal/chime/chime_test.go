package chime

import (
	"testing"
	"time"

	"github.com/propeltutoring/logo"
)

func TestFrequency(t *testing.T) {
	if Frequency(logo.Axes) != 0 {
		t.Error("axes should have no cue")
	}
	prev := 0.0
	for _, s := range []logo.State{logo.Logo, logo.Fade, logo.Spin} {
		f := Frequency(s)
		if f <= prev {
			t.Errorf("Frequency(%v) = %v, want rising above %v", s, f, prev)
		}
		prev = f
	}
}

func TestToneLength(t *testing.T) {
	tone, err := Tone(440, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("Tone: %v", err)
	}
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		total += n
		if !ok || n == 0 {
			break
		}
	}
	if want := SampleRate.N(50 * time.Millisecond); total != want {
		t.Errorf("tone has %d samples, want %d", total, want)
	}
}

func TestSilentPlayer(t *testing.T) {
	var p *Player
	p.Cue(logo.Axes, logo.Logo)
	p.Close()

	q := &Player{}
	q.Cue(logo.Logo, logo.Fade)
	q.Close()
}
