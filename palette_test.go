package logo

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestPaletteColor(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		role Role
		want gg.RGBA
	}{
		{RoleTextPrimary, gg.RGB(1, 1, 1)},
		{RoleBackground, gg.RGB(0x16/255.0, 0x52/255.0, 0xdf/255.0)},
		{RoleAccent, gg.RGB(0x1e/255.0, 0xb9/255.0, 0xc2/255.0)},
		{RoleNone, gg.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got, err := p.Color(tt.role)
			if err != nil {
				t.Fatalf("Color(%s) error = %v", tt.role, err)
			}
			if !closeColor(got, tt.want) {
				t.Errorf("Color(%s) = %+v, want %+v", tt.role, got, tt.want)
			}
		})
	}
}

func TestPaletteUnknownRole(t *testing.T) {
	_, err := DefaultPalette().Color("chartreuse")
	if !errors.Is(err, ErrUnknownRole) {
		t.Errorf("Color(chartreuse) error = %v, want ErrUnknownRole", err)
	}
}

func TestPaletteValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Palette)
		wantErr bool
	}{
		{"default", func(*Palette) {}, false},
		{"short hex", func(p *Palette) { p.Accent = "#fff" }, false},
		{"alpha hex", func(p *Palette) { p.Accent = "1eb9c280" }, false},
		{"empty", func(p *Palette) { p.AccentDark = "" }, true},
		{"bad digit", func(p *Palette) { p.TextSecondary = "#bbbbbz" }, true},
		{"bad length", func(p *Palette) { p.Background = "#12345" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPalette()
			tt.mutate(&p)
			if err := p.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func closeColor(a, b gg.RGBA) bool {
	const tol = 1.0 / 255
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}
