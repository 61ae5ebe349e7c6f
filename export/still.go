package export

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/propeltutoring/logo"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidDensity is returned for non-positive pixel densities.
var ErrInvalidDensity = errors.New("export: invalid pixel density")

// StillOptions configures Still.
type StillOptions struct {
	// Density multiplies every dimension. Zero means 3, the density the
	// download button of the logo maker used.
	Density float64

	// Opaque paints the configured background. Otherwise the still is
	// transparent outside the petals.
	Opaque bool

	// Caption is drawn centered under the logo, title-cased. Empty draws
	// nothing.
	Caption     string
	CaptionSize float64 // points at density 1; zero means 28
	CaptionRole logo.Role
}

func (o StillOptions) density() (float64, error) {
	switch {
	case o.Density == 0:
		return 3, nil
	case o.Density > 0:
		return o.Density, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidDensity, o.Density)
}

// Still renders the static petals of cfg at the requested density. The
// caller owns the returned context.
func Still(cfg logo.Config, opts StillOptions) (*gg.Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d, err := opts.density()
	if err != nil {
		return nil, err
	}
	w := int(float64(cfg.Canvas.Width)*d + 0.5)
	h := int(float64(cfg.Canvas.Height)*d + 0.5)

	dc := gg.NewContext(w, h)
	if opts.Opaque {
		dc.ClearWithColor(cfg.Palette.MustColor(cfg.Background))
	}

	logo.DrawPetals(dc, logo.PetalStyle{
		Center:    gg.Pt(float64(w)/2, float64(h)/2),
		Size:      cfg.LogoSize * d,
		Step:      cfg.PetalStep.Radians(),
		Color:     cfg.Palette.MustColor(cfg.Stroke),
		Width:     cfg.PetalWidth * d,
		DotRadius: cfg.DotRadius * d,
	})

	if opts.Caption != "" {
		if err := drawCaption(dc, cfg, opts, d); err != nil {
			_ = dc.Close()
			return nil, err
		}
	}
	return dc, nil
}

// WriteStill renders a still and saves it as PNG at path.
func WriteStill(path string, cfg logo.Config, opts StillOptions) error {
	dc, err := Still(cfg, opts)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("export: save %s: %w", path, err)
	}
	logWritten(path, dc.Width(), dc.Height())
	return nil
}

func drawCaption(dc *gg.Context, cfg logo.Config, opts StillOptions, d float64) error {
	src, err := captionSource()
	if err != nil {
		return err
	}
	size := opts.CaptionSize
	if size <= 0 {
		size = 28
	}
	role := opts.CaptionRole
	if role == "" {
		role = cfg.Stroke
	}
	c, err := cfg.Palette.Color(role)
	if err != nil {
		return err
	}

	dc.SetFont(src.Face(size * d))
	dc.SetColor(c.Color())
	caption := cases.Title(language.English).String(opts.Caption)
	dc.DrawStringAnchored(caption, float64(dc.Width())/2, float64(dc.Height())-size*d, 0.5, 1)
	return nil
}

var (
	captionOnce sync.Once
	captionSrc  *text.FontSource
	captionErr  error
)

// captionSource loads the embedded Go Regular font once.
func captionSource() (*text.FontSource, error) {
	captionOnce.Do(func() {
		captionSrc, captionErr = text.NewFontSource(goregular.TTF)
		if captionErr != nil {
			captionErr = fmt.Errorf("export: load caption font: %w", captionErr)
		}
	})
	return captionSrc, captionErr
}

// logWritten reports a written file with its size.
func logWritten(path string, w, h int) {
	attrs := []any{"path", path, "width", w, "height", h}
	if info, err := os.Stat(path); err == nil {
		attrs = append(attrs, "size", humanize.Bytes(uint64(info.Size())))
	}
	logo.Logger().Info("exported", attrs...)
}
