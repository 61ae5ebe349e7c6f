package logo

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseAngle(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"0.1", 0.1, false},
		{"14pi", 14 * math.Pi, false},
		{"14.1 pi", 14.1 * math.Pi, false},
		{"0.5π", 0.5 * math.Pi, false},
		{"pi", math.Pi, false},
		{"-pi", -math.Pi, false},
		{"pi/6", math.Pi / 6, false},
		{"3*pi/2", 1.5 * math.Pi, false},
		{"tau", 0, true},
		{"pi/0", 0, true},
		{"xpi", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAngle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAngle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got.Radians()-tt.want) > 1e-12 {
				t.Errorf("ParseAngle(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseConfigOverlay(t *testing.T) {
	data := []byte(`
canvas:
  width: 640
theta_limit: 14.1pi
fade_frames: 20
palette:
  accent: "#ff0000"
stroke: accentDark
`)
	got, err := ParseConfig(data, DefaultConfig())
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	want := DefaultConfig()
	want.Canvas.Width = 640
	want.ThetaLimit = Angle(14.1 * math.Pi)
	want.FadeFrames = 20
	want.Palette.Accent = "#ff0000"
	want.Stroke = RoleAccentDark

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "canvas: ["},
		{"bad angle", "theta_step: sideways"},
		{"zero fade", "fade_frames: 0"},
		{"unknown role", "background: magenta"},
		{"bad hex", "palette: {accent: '#zzz'}"},
		{"empty canvas", "canvas: {width: 0}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data), DefaultConfig()); err == nil {
				t.Errorf("ParseConfig(%q) succeeded, want error", tt.data)
			}
		})
	}
}

func TestValidateWrapsErrInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ThetaStep = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
	cfg = DefaultConfig()
	cfg.Stroke = "nope"
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, ErrUnknownRole) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig and ErrUnknownRole", err)
	}
}

func TestPresets(t *testing.T) {
	if diff := cmp.Diff([]string{"home", "logo-maker"}, PresetNames()); diff != "" {
		t.Errorf("PresetNames mismatch (-want +got):\n%s", diff)
	}
	for _, name := range PresetNames() {
		cfg, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset(%q) invalid: %v", name, err)
		}
	}
	lm, _ := Preset("logo-maker")
	if lm.LogoSize != 312 || lm.PetalWidth != 6 || lm.Background != RoleNone {
		t.Errorf("logo-maker preset = %+v", lm)
	}
	if _, err := Preset("nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Preset(nope) error = %v, want ErrUnknownPreset", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.yml")
	if err := os.WriteFile(path, []byte("logo_size: 150\nspin_step: pi/30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogoSize != 150 {
		t.Errorf("LogoSize = %v, want 150", cfg.LogoSize)
	}
	if math.Abs(cfg.SpinStep.Radians()-math.Pi/30) > 1e-12 {
		t.Errorf("SpinStep = %v, want π/30", cfg.SpinStep)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yml"), DefaultConfig()); err == nil {
		t.Error("LoadConfig on a missing file succeeded")
	}
}

func TestLogoFrames(t *testing.T) {
	tests := []struct {
		step, limit float64
		want        int
	}{
		{0.1, 14 * math.Pi, 440},
		{0.1, 14.1 * math.Pi, 443},
		{1, 10, 11},
		{0.5, 0, 1},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.ThetaStep, cfg.ThetaLimit = Angle(tt.step), Angle(tt.limit)
		if got := cfg.LogoFrames(); got != tt.want {
			t.Errorf("LogoFrames(step=%v, limit=%v) = %d, want %d", tt.step, tt.limit, got, tt.want)
		}
	}
}

func TestIntroFrames(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.AxesFrames(); got != 16 {
		t.Errorf("AxesFrames() = %d, want 16", got)
	}
	if got := cfg.IntroFrames(); got != 16+440+50 {
		t.Errorf("IntroFrames() = %d, want %d", got, 16+440+50)
	}
}
