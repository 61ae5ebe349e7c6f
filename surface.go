package logo

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Surface is the drawing target of the sequencer. *gg.Context implements it.
//
// The sequencer assumes the surface keeps its pixels between frames, the way
// a canvas does; trace and fade effects accumulate on it.
type Surface interface {
	Width() int
	Height() int

	SetColor(c color.Color)
	SetLineWidth(w float64)

	DrawLine(x1, y1, x2, y2 float64)
	DrawCircle(x, y, r float64)
	DrawRectangle(x, y, w, h float64)
	Fill() error
	Stroke() error

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)

	DrawImage(img *gg.ImageBuf, x, y float64)
}

var _ Surface = (*gg.Context)(nil)

// labeler is implemented by surfaces that can draw text.
type labeler interface {
	SetFont(face text.Face)
	DrawString(s string, x, y float64)
}

// surfaceSize returns the size of s, or an empty size for a nil surface,
// including a nil *gg.Context.
func surfaceSize(s Surface) CanvasSize {
	if s == nil {
		return CanvasSize{}
	}
	if dc, ok := s.(*gg.Context); ok && dc == nil {
		return CanvasSize{}
	}
	return CanvasSize{Width: s.Width(), Height: s.Height()}
}

// fillRect paints a rectangle with c.
func fillRect(s Surface, c gg.RGBA, x, y, w, h float64) {
	s.SetColor(c.Color())
	s.DrawRectangle(x, y, w, h)
	logDrawErr("fill", s.Fill())
}

// strokeLine draws a single stroked segment.
func strokeLine(s Surface, c gg.RGBA, width float64, a, b gg.Point) {
	s.SetColor(c.Color())
	s.SetLineWidth(width)
	s.DrawLine(a.X, a.Y, b.X, b.Y)
	logDrawErr("stroke", s.Stroke())
}

// clearer is implemented by surfaces that can overwrite every pixel.
type clearer interface {
	ClearWithColor(c gg.RGBA)
}

// pixelTarget exposes the pixmap behind a surface.
type pixelTarget interface {
	ResizeTarget() *gg.Pixmap
}

// paintBackground covers the whole surface with c. Translucent colors
// replace the pixels when the surface supports it, since painting them over
// the old frame would leave it visible.
func paintBackground(s Surface, c gg.RGBA, size CanvasSize) {
	if c.A < 1 {
		if cl, ok := s.(clearer); ok {
			cl.ClearWithColor(c)
			return
		}
	}
	fillRect(s, c, 0, 0, float64(size.Width), float64(size.Height))
}

// fadeBackground moves every pixel a fraction amount of the way toward c.
// Opaque colors are painted over with that alpha; translucent ones are
// blended into the pixmap directly when the surface exposes it.
func fadeBackground(s Surface, c gg.RGBA, amount float64, size CanvasSize) {
	if c.A < 1 {
		if pt, ok := s.(pixelTarget); ok {
			if f, ok := s.(interface{ FlushGPU() error }); ok {
				logDrawErr("flush", f.FlushGPU())
			}
			fadePixels(pt.ResizeTarget(), c, amount)
			return
		}
	}
	fillRect(s, withAlpha(c, amount), 0, 0, float64(size.Width), float64(size.Height))
}

// fadePixels lerps every byte of p toward the bytes c is stored as.
// Truncation rounds toward the target when fading out.
func fadePixels(p *gg.Pixmap, c gg.RGBA, amount float64) {
	if p == nil {
		return
	}
	target := [4]float64{
		clampByte(c.R * 255),
		clampByte(c.G * 255),
		clampByte(c.B * 255),
		clampByte(c.A * 255),
	}
	data := p.Data()
	for i := range data {
		v := float64(data[i])
		data[i] = uint8(v + (target[i%4]-v)*amount)
	}
}

func clampByte(v float64) float64 {
	return min(max(v, 0), 255)
}

// logDrawErr records a failed fill or stroke. Output is cosmetic, so the
// frame carries on.
func logDrawErr(op string, err error) {
	if err != nil {
		Logger().Debug("draw failed", "op", op, "error", err)
	}
}
