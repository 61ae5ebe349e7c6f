// Package window previews the logo animation in a GPU window.
//
// The sketch draws into a ggcanvas.Canvas that is uploaded and composited
// by gogpu every vsync. A Pacer keeps the sketch at its configured frame
// rate however fast the display refreshes.
package window

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // register the GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/propeltutoring/logo"
)

// Options configures the window.
type Options struct {
	// Title of the window. Empty means "propel".
	Title string

	// Logo options passed to the sequencer.
	Logo []logo.Option
}

// Run opens a window sized to the config canvas and animates until the
// window is closed or Esc is pressed.
func Run(cfg logo.Config, opts Options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	title := opts.Title
	if title == "" {
		title = "propel"
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(title).
		WithSize(cfg.Canvas.Width, cfg.Canvas.Height))

	v := newView(cfg, opts.Logo...)
	clock := logo.NewWallClock()

	app.OnDraw(func(dc *gogpu.Context) {
		canvas, err := v.frame(app.GPUContextProvider(), dc.Width(), dc.Height(), clock.Elapsed())
		if err != nil {
			logo.Logger().Warn("window frame failed", "error", err)
			return
		}
		if canvas == nil {
			return
		}
		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			logo.Logger().Debug("render to window failed", "frame", v.seq.Frames(), "error", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeyEscape {
			app.Quit()
		}
	})

	app.OnClose(func() {
		_ = v.close()
		gg.CloseAccelerator()
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// view owns the sequencer and the canvas it draws on.
type view struct {
	seq    *logo.Sequencer
	pacer  *logo.Pacer
	canvas *ggcanvas.Canvas
}

func newView(cfg logo.Config, opts ...logo.Option) *view {
	return &view{
		seq:   logo.NewSequencer(cfg, opts...),
		pacer: logo.NewPacer(cfg.FrameRate),
	}
}

// frame brings the canvas to w×h and advances the sketch when a frame is
// due. It returns a nil canvas while the window or the GPU is not ready.
func (v *view) frame(provider gpucontext.DeviceProvider, w, h int, elapsed time.Duration) (*ggcanvas.Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	if v.canvas == nil {
		if provider == nil {
			return nil, nil
		}
		canvas, err := ggcanvas.New(provider, w, h)
		if err != nil {
			return nil, fmt.Errorf("window: create canvas: %w", err)
		}
		v.canvas = canvas
		logo.Logger().Debug("window canvas created", "width", w, "height", h)
	}
	if cw, ch := v.canvas.Size(); cw != w || ch != h {
		if err := v.canvas.Resize(w, h); err != nil {
			return nil, fmt.Errorf("window: resize canvas: %w", err)
		}
	}
	if v.pacer.Due(elapsed) {
		if err := v.canvas.Draw(func(dc *gg.Context) { v.seq.Draw(dc, elapsed) }); err != nil {
			return nil, fmt.Errorf("window: draw: %w", err)
		}
	}
	return v.canvas, nil
}

func (v *view) close() error {
	_ = v.seq.Close()
	if v.canvas == nil {
		return nil
	}
	err := v.canvas.Close()
	v.canvas = nil
	return err
}
