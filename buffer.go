package logo

import "github.com/gogpu/gg"

// PetalStyle describes how the static petals are painted.
type PetalStyle struct {
	Center    gg.Point
	Size      float64
	Step      float64
	Color     gg.RGBA
	Width     float64 // stroke width of each dot
	DotRadius float64
}

// DrawPetals paints all six petals as dots, one per sampled angle.
func DrawPetals(s Surface, st PetalStyle) {
	s.SetColor(st.Color.Color())
	s.SetLineWidth(st.Width)
	for theta := range PetalSamples(st.Step) {
		p := PointAt(theta, st.Size, st.Center)
		s.DrawCircle(p.X, p.Y, st.DotRadius)
		logDrawErr("fill", fillPreserve(s))
		logDrawErr("stroke", s.Stroke())
	}
}

// fillPreserve fills the current path and keeps it for a following Stroke
// when the surface supports it. Otherwise the dot is filled only.
func fillPreserve(s Surface) error {
	if fp, ok := s.(interface{ FillPreserve() error }); ok {
		return fp.FillPreserve()
	}
	return s.Fill()
}

// petalBuffer is the offscreen rendering of the petals composited during
// Spin.
type petalBuffer struct {
	dc  *gg.Context
	img *gg.ImageBuf
}

// newPetalBuffer renders the petals centered on a transparent surface of
// the given size.
func newPetalBuffer(size CanvasSize, cfg Config) *petalBuffer {
	dc := gg.NewContext(size.Width, size.Height)
	DrawPetals(dc, PetalStyle{
		Center:    gg.Pt(float64(size.Width)/2, float64(size.Height)/2),
		Size:      cfg.LogoSize,
		Step:      cfg.PetalStep.Radians(),
		Color:     cfg.Palette.MustColor(cfg.Stroke),
		Width:     cfg.PetalWidth,
		DotRadius: cfg.DotRadius,
	})
	return &petalBuffer{dc: dc, img: gg.ImageBufFromImage(dc.Image())}
}

func (b *petalBuffer) width() int  { return b.dc.Width() }
func (b *petalBuffer) height() int { return b.dc.Height() }

func (b *petalBuffer) close() {
	if b == nil || b.dc == nil {
		return
	}
	_ = b.dc.Close()
	b.dc = nil
	b.img = nil
}
