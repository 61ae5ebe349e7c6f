package logo

import "time"

// Clock reports the time elapsed since a sketch started.
type Clock interface {
	Elapsed() time.Duration
}

// FrameClock is a deterministic clock that advances one frame per Tick at
// a fixed rate. Exports use it so output does not depend on render speed.
type FrameClock struct {
	interval time.Duration
	frames   int
}

// NewFrameClock returns a clock for fps frames per second. Non-positive
// rates fall back to 30.
func NewFrameClock(fps int) *FrameClock {
	return &FrameClock{interval: frameInterval(fps)}
}

// Tick advances the clock by one frame.
func (c *FrameClock) Tick() { c.frames++ }

// Frames returns the number of ticks so far.
func (c *FrameClock) Frames() int { return c.frames }

// Elapsed returns frames × frame interval.
func (c *FrameClock) Elapsed() time.Duration {
	return time.Duration(c.frames) * c.interval
}

// WallClock measures real time since it was created.
type WallClock struct {
	start time.Time
	now   func() time.Time
}

// NewWallClock starts a wall clock now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now(), now: time.Now}
}

// Elapsed returns the time since the clock was created.
func (c *WallClock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// Pacer decides when a host running faster than the sketch rate (a vsync
// window, for example) should advance the sketch by a frame.
type Pacer struct {
	interval time.Duration
	next     time.Duration
	started  bool
}

// NewPacer returns a pacer for fps frames per second.
func NewPacer(fps int) *Pacer {
	return &Pacer{interval: frameInterval(fps)}
}

// Due reports whether a frame is due at elapsed and, if so, schedules the
// next one. After a stall it skips missed frames instead of bursting.
func (p *Pacer) Due(elapsed time.Duration) bool {
	if !p.started {
		p.started = true
		p.next = elapsed + p.interval
		return true
	}
	if elapsed < p.next {
		return false
	}
	p.next += p.interval
	if p.next <= elapsed {
		p.next = elapsed + p.interval
	}
	return true
}

// Interval returns the frame interval.
func (p *Pacer) Interval() time.Duration { return p.interval }

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}
