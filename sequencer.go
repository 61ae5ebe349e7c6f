package logo

import (
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Sequencer animates the mark one frame per Draw call:
//
//	Axes -> Logo -> Fade -> Spin
//
// Axes grows two lines out of the center. Logo traces the rose one segment
// per frame. Fade washes the trace out. Spin rotates a pre-rendered petal
// buffer forever, so steady state costs one image composite per frame.
//
// A Sequencer is not safe for concurrent use; the host loop owns it.
type Sequencer struct {
	cfg   Config
	hooks []func(from, to State)
	label text.Face

	bg     gg.RGBA
	stroke gg.RGBA

	state  State
	frames int
	ready  bool
	closed bool

	size   CanvasSize
	center gg.Point
	start  time.Duration // elapsed time at setup
	buffer *petalBuffer

	logoSteps int
	theta     float64
	last      gg.Point // relative to center

	fades    int
	rotation float64
}

// NewSequencer returns a sequencer in the Axes state. The config is
// validated; an invalid config falls back to DefaultConfig with a warning.
func NewSequencer(cfg Config, opts ...Option) *Sequencer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	for _, tweak := range o.tweak {
		tweak(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		Logger().Warn("invalid sequencer config, using defaults", "error", err)
		cfg = DefaultConfig()
	}
	return &Sequencer{
		cfg:    cfg,
		hooks:  o.hooks,
		label:  o.label,
		bg:     cfg.Palette.MustColor(cfg.Background),
		stroke: cfg.Palette.MustColor(cfg.Stroke),
		state:  Axes,
	}
}

// Config returns the configuration in effect.
func (q *Sequencer) Config() Config { return q.cfg }

// State returns the current state.
func (q *Sequencer) State() State { return q.state }

// Frames returns the number of frames drawn, skipped frames excluded.
func (q *Sequencer) Frames() int { return q.frames }

// Theta returns the angle reached by the trace.
func (q *Sequencer) Theta() float64 { return q.theta }

// Rotation returns the accumulated Spin rotation.
func (q *Sequencer) Rotation() float64 { return q.rotation }

// Center returns the canvas center used by the last frame.
func (q *Sequencer) Center() gg.Point { return q.center }

// Size returns the canvas size observed by the last frame.
func (q *Sequencer) Size() CanvasSize { return q.size }

// Ready reports whether Setup has run.
func (q *Sequencer) Ready() bool { return q.ready }

// Setup prepares the sequencer for s: paints the background, records the
// center and renders the offscreen petal buffer. It returns false, leaving
// the sequencer untouched, when the surface is missing or empty. Draw calls
// Setup itself when needed.
func (q *Sequencer) Setup(s Surface, elapsed time.Duration) bool {
	if q.closed {
		return false
	}
	size := surfaceSize(s)
	if size.Empty() {
		Logger().Debug("surface not available, setup deferred")
		return false
	}
	q.applySize(s, size)
	q.start = elapsed
	q.ready = true
	return true
}

// Draw renders one frame at elapsed time since the sketch started and
// evaluates at most one transition. A missing or empty surface skips the
// frame; the next call retries.
func (q *Sequencer) Draw(s Surface, elapsed time.Duration) {
	if q.closed {
		return
	}
	if !q.ready {
		if !q.Setup(s, elapsed) {
			return
		}
	}
	size := surfaceSize(s)
	if size.Empty() {
		Logger().Debug("surface not available, frame skipped", "frame", q.frames)
		return
	}
	if size != q.size {
		q.resize(s, size)
	}

	switch q.state {
	case Axes:
		q.drawAxes(s, elapsed)
	case Logo:
		q.drawLogo(s)
	case Fade:
		q.drawFade(s)
	case Spin:
		q.drawSpin(s)
	}
	q.drawLabel(s)
	q.frames++
}

// Close releases the offscreen buffer. Later Draw calls do nothing.
func (q *Sequencer) Close() error {
	if q.closed {
		return nil
	}
	q.closed = true
	q.buffer.close()
	q.buffer = nil
	return nil
}

func (q *Sequencer) drawAxes(s Surface, elapsed time.Duration) {
	ms := float64(elapsed-q.start) / float64(time.Millisecond)
	axisLen := max(ms, 0) * q.cfg.AxisSpeed
	c := q.center
	strokeLine(s, q.stroke, q.cfg.AxisWidth, gg.Pt(c.X, c.Y-axisLen), gg.Pt(c.X, c.Y+axisLen))
	strokeLine(s, q.stroke, q.cfg.AxisWidth, gg.Pt(c.X-axisLen, c.Y), gg.Pt(c.X+axisLen, c.Y))

	if axisLen >= float64(q.size.Width)/2 && axisLen >= float64(q.size.Height)/2 {
		q.transition(Logo)
	}
}

// enterLogo resets the trace to its starting point.
func (q *Sequencer) enterLogo() {
	q.logoSteps = 0
	q.theta = 0
	q.last = PointAt(q.theta, q.cfg.LogoSize, gg.Point{})
}

func (q *Sequencer) drawLogo(s Surface) {
	q.logoSteps++
	q.theta = float64(q.logoSteps) * q.cfg.ThetaStep.Radians()
	p := PointAt(q.theta, q.cfg.LogoSize, gg.Point{})

	s.Push()
	s.Translate(q.center.X, q.center.Y)
	strokeLine(s, q.stroke, q.cfg.TraceWidth, q.last, p)
	s.Pop()
	q.last = p

	if q.theta > q.cfg.ThetaLimit.Radians() {
		q.transition(Fade)
	}
}

// replayLogo redraws the segments traced so far, used after a resize
// cleared the surface mid-trace.
func (q *Sequencer) replayLogo(s Surface) {
	if q.logoSteps == 0 {
		return
	}
	step := q.cfg.ThetaStep.Radians()
	s.Push()
	s.Translate(q.center.X, q.center.Y)
	s.SetColor(q.stroke.Color())
	s.SetLineWidth(q.cfg.TraceWidth)
	prev := PointAt(0, q.cfg.LogoSize, gg.Point{})
	for i := 1; i <= q.logoSteps; i++ {
		p := PointAt(float64(i)*step, q.cfg.LogoSize, gg.Point{})
		s.DrawLine(prev.X, prev.Y, p.X, p.Y)
		prev = p
	}
	logDrawErr("stroke", s.Stroke())
	s.Pop()
}

func (q *Sequencer) drawFade(s Surface) {
	fadeBackground(s, q.bg, float64(q.cfg.FadeAlpha)/255, q.size)
	q.fades++
	if q.fades >= q.cfg.FadeFrames {
		paintBackground(s, q.bg, q.size)
		q.transition(Spin)
	}
}

func (q *Sequencer) drawSpin(s Surface) {
	paintBackground(s, q.bg, q.size)
	if q.buffer != nil {
		s.Push()
		s.Translate(q.center.X, q.center.Y)
		s.Rotate(q.rotation)
		s.DrawImage(q.buffer.img, -float64(q.buffer.width())/2, -float64(q.buffer.height())/2)
		s.Pop()
	}
	q.rotation -= q.cfg.SpinStep.Radians()
}

func (q *Sequencer) drawLabel(s Surface) {
	if q.label == nil {
		return
	}
	l, ok := s.(labeler)
	if !ok {
		return
	}
	s.SetColor(q.stroke.Color())
	l.SetFont(q.label)
	l.DrawString(q.state.String(), 10, 20)
}

// transition moves to the next state. Only forward moves are possible.
func (q *Sequencer) transition(to State) {
	from := q.state
	if to != from.next() || from.Terminal() {
		return
	}
	q.state = to
	switch to {
	case Logo:
		q.enterLogo()
	case Fade:
		q.fades = 0
	}
	Logger().Info("logo state changed", "from", from, "to", to, "frame", q.frames)
	for _, fn := range q.hooks {
		fn(from, to)
	}
}

// applySize records the canvas geometry, repaints the background and
// rebuilds the petal buffer.
func (q *Sequencer) applySize(s Surface, size CanvasSize) {
	q.size = size
	q.center = gg.Pt(float64(size.Width)/2, float64(size.Height)/2)
	paintBackground(s, q.bg, size)

	q.buffer.close()
	q.buffer = newPetalBuffer(size, q.cfg)
}

// resize handles a canvas size change observed at the start of a frame.
// Hosts clear the surface when resizing it, so the visible progress of the
// current state is restored: the Logo trace is replayed, the other states
// redraw everything they need on their own.
func (q *Sequencer) resize(s Surface, size CanvasSize) {
	Logger().Debug("canvas resized", "from", q.size, "to", size, "state", q.state)
	q.applySize(s, size)
	if q.state == Logo {
		q.replayLogo(s)
	}
}
