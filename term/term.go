// Package term previews the logo animation in a terminal.
//
// Each cell shows two vertically stacked pixels with the upper half block
// rune, foreground for the upper pixel and background for the lower one.
// The sketch renders at its configured canvas size and every frame is
// fitted to the current cell grid, letterboxed with the background color.
package term

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/propeltutoring/logo"
	xdraw "golang.org/x/image/draw"
)

// ErrScreenTooSmall is returned when the terminal has no usable cells.
var ErrScreenTooSmall = errors.New("term: screen too small")

// halfBlock is the upper half block rune.
const halfBlock = '▀'

// Cue is notified on every state transition.
type Cue interface {
	Cue(from, to logo.State)
}

// Options configures a Host.
type Options struct {
	// Cue, when set, is told about transitions.
	Cue Cue

	// Logo options passed to the sequencer.
	Logo []logo.Option
}

// Host drives a Sequencer at the config frame rate and blits it to a
// tcell screen.
type Host struct {
	screen tcell.Screen
	cfg    logo.Config

	dc    *gg.Context
	seq   *logo.Sequencer
	clock logo.Clock

	letterbox  tcell.Color
	cols, rows int
	frames     int
}

// New creates a host on an initialized screen. The caller keeps ownership
// of the screen.
func New(screen tcell.Screen, cfg logo.Config, opts Options) (*Host, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrScreenTooSmall, cols, rows)
	}

	lopts := opts.Logo
	if opts.Cue != nil {
		lopts = append(lopts, logo.WithTransitionHook(opts.Cue.Cue))
	}
	bg := cfg.Palette.MustColor(cfg.Background)

	return &Host{
		screen:    screen,
		cfg:       cfg,
		dc:        gg.NewContext(cfg.Canvas.Width, cfg.Canvas.Height),
		seq:       logo.NewSequencer(cfg, lopts...),
		clock:     logo.NewWallClock(),
		letterbox: cellColor(bg.R*bg.A, bg.G*bg.A, bg.B*bg.A),
		cols:      cols,
		rows:      rows,
	}, nil
}

// Sequencer returns the driven sequencer.
func (h *Host) Sequencer() *logo.Sequencer { return h.seq }

// Frames returns the number of frames shown.
func (h *Host) Frames() int { return h.frames }

// Run animates until ctx is done or the user presses Esc, Ctrl-C or q.
// A quit key returns nil; cancellation returns ctx.Err().
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(h.cfg.FrameRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.Frame(h.clock.Elapsed())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !h.handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.Frame(h.clock.Elapsed())
		}
	}
}

// Frame draws one sketch frame and shows it.
func (h *Host) Frame(elapsed time.Duration) {
	h.seq.Draw(h.dc, elapsed)
	h.blit()
	h.screen.Show()
	h.frames++
}

// Resize changes the cell grid the canvas is fitted to.
func (h *Host) Resize(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrScreenTooSmall, cols, rows)
	}
	if cols == h.cols && rows == h.rows {
		return nil
	}
	h.cols, h.rows = cols, rows
	h.screen.Clear()
	logo.Logger().Debug("terminal resized", "cols", cols, "rows", rows)
	return nil
}

// Close releases the sequencer and the canvas. The screen is left alone.
func (h *Host) Close() error {
	_ = h.seq.Close()
	return h.dc.Close()
}

// handle processes one event and reports whether to keep running.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		if err := h.Resize(cols, rows); err != nil {
			logo.Logger().Debug("resize ignored", "error", err)
		}
		h.screen.Sync()
	}
	return true
}

// blit averages the canvas into half-block cells.
func (h *Host) blit() {
	img := toRGBA(h.dc.Image())
	f := newFit(img.Bounds().Dx(), img.Bounds().Dy(), h.cols, 2*h.rows)
	for y := 0; y < h.rows; y++ {
		for x := 0; x < h.cols; x++ {
			top := h.average(img, f.source(x, 2*y))
			bottom := h.average(img, f.source(x, 2*y+1))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			h.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

// average returns the mean color of r, composited over black, or the
// letterbox color for an empty r.
func (h *Host) average(img *image.RGBA, r image.Rectangle) tcell.Color {
	if r.Empty() {
		return h.letterbox
	}
	var sum [3]uint64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):img.PixOffset(r.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			sum[0] += uint64(row[i])
			sum[1] += uint64(row[i+1])
			sum[2] += uint64(row[i+2])
		}
	}
	n := uint64(r.Dx() * r.Dy())
	return tcell.NewRGBColor(int32(sum[0]/n), int32(sum[1]/n), int32(sum[2]/n))
}

func cellColor(r, g, b float64) tcell.Color {
	return tcell.NewRGBColor(int32(r*255+0.5), int32(g*255+0.5), int32(b*255+0.5))
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	xdraw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, xdraw.Src)
	return rgba
}

// fit maps grid pixels onto a canvas scaled to fit inside the grid and
// centered in it.
type fit struct {
	w, h   int
	scale  float64
	ox, oy float64
}

func newFit(w, h, gridW, gridH int) fit {
	scale := min(float64(gridW)/float64(w), float64(gridH)/float64(h))
	return fit{
		w:     w,
		h:     h,
		scale: scale,
		ox:    (float64(gridW) - float64(w)*scale) / 2,
		oy:    (float64(gridH) - float64(h)*scale) / 2,
	}
}

// source returns the canvas pixels covered by grid pixel (gx, gy). It is
// empty for grid pixels in the letterbox.
func (f fit) source(gx, gy int) image.Rectangle {
	x0 := int(math.Floor((float64(gx) - f.ox) / f.scale))
	x1 := int(math.Ceil((float64(gx+1) - f.ox) / f.scale))
	y0 := int(math.Floor((float64(gy) - f.oy) / f.scale))
	y1 := int(math.Ceil((float64(gy+1) - f.oy) / f.scale))
	return image.Rect(x0, y0, x1, y1).Intersect(image.Rect(0, 0, f.w, f.h))
}
