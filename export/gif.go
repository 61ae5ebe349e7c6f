package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/propeltutoring/logo"
	xdraw "golang.org/x/image/draw"
)

// GIFOptions configures GIF.
type GIFOptions struct {
	SequenceOptions

	// Scale resizes frames, (0, 1]. Zero keeps the canvas size.
	Scale float64
}

// rampSteps is the number of shades between the background and each other
// palette color. Fades and anti-aliasing only produce such blends.
const rampSteps = 50

// FrameSize returns the size of the encoded frames for cfg.
func (o GIFOptions) FrameSize(cfg logo.Config) (width, height int) {
	scale := o.Scale
	if scale <= 0 || scale > 1 {
		scale = 1
	}
	width = max(int(float64(cfg.Canvas.Width)*scale+0.5), 1)
	height = max(int(float64(cfg.Canvas.Height)*scale+0.5), 1)
	return width, height
}

// GIF encodes the animation as a looping GIF.
func GIF(ctx context.Context, w io.Writer, cfg logo.Config, opts GIFOptions) error {
	fw, fh := opts.FrameSize(cfg)
	bounds := image.Rect(0, 0, fw, fh)

	pal, err := Palette(cfg)
	if err != nil {
		return err
	}
	delay := max(100*opts.every()/max(cfg.FrameRate, 1), 2)

	anim := &gif.GIF{LoopCount: 0}
	scaled := image.NewRGBA(bounds)
	err = simulate(ctx, cfg, opts.SequenceOptions, "gif", func(_ int, dc *gg.Context) error {
		src := dc.Image()
		xdraw.CatmullRom.Scale(scaled, bounds, src, src.Bounds(), xdraw.Src, nil)
		frame := image.NewPaletted(bounds, pal)
		xdraw.FloydSteinberg.Draw(frame, bounds, scaled, image.Point{})
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
		return nil
	})
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("export: encode gif: %w", err)
	}
	return nil
}

// WriteGIF encodes the animation into a file at path.
func WriteGIF(ctx context.Context, path string, cfg logo.Config, opts GIFOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	if err := GIF(ctx, f, cfg, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	fw, fh := opts.FrameSize(cfg)
	logWritten(path, fw, fh)
	return nil
}

// Palette returns the GIF palette for cfg: transparent, the background, and
// ramps from the background to every other palette color.
func Palette(cfg logo.Config) (color.Palette, error) {
	bg, err := cfg.Palette.Color(cfg.Background)
	if err != nil {
		return nil, err
	}
	if bg.A == 0 {
		bg = gg.RGBA{R: 0, G: 0, B: 0, A: 0}
	}
	pal := color.Palette{color.Transparent, bg.Color()}
	for _, role := range logo.Roles() {
		if role == cfg.Background {
			continue
		}
		c, err := cfg.Palette.Color(role)
		if err != nil {
			return nil, err
		}
		for i := 1; i <= rampSteps && len(pal) < 256; i++ {
			pal = append(pal, bg.Lerp(c, float64(i)/rampSteps).Color())
		}
	}
	return pal, nil
}
