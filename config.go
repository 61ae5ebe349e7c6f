package logo

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration errors.
var (
	// ErrInvalidConfig is wrapped by every Config.Validate failure.
	ErrInvalidConfig = errors.New("logo: invalid config")

	// ErrUnknownPreset is returned by Preset for names it does not know.
	ErrUnknownPreset = errors.New("logo: unknown preset")
)

// CanvasSize is the size of the hosting surface in pixels.
type CanvasSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Empty reports whether either dimension is not positive.
func (c CanvasSize) Empty() bool {
	return c.Width <= 0 || c.Height <= 0
}

// Angle is an angle in radians. In YAML it may be written as a number or as
// a multiple of π: "14pi", "0.5π", "pi/6", "-pi".
type Angle float64

// Radians returns a as a float64.
func (a Angle) Radians() float64 { return float64(a) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Angle) UnmarshalYAML(value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err == nil {
		*a = Angle(f)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseAngle(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAngle parses a number of radians or a multiple of π.
func ParseAngle(s string) (Angle, error) {
	orig := s
	s = strings.TrimSpace(strings.ReplaceAll(s, "π", "pi"))
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Angle(f), nil
	}

	num, den, hasDen := strings.Cut(s, "/")
	coef, ok := strings.CutSuffix(strings.TrimSpace(num), "pi")
	if !ok {
		return 0, fmt.Errorf("invalid angle %q", orig)
	}
	coef = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(coef), "*"))
	k := 1.0
	switch coef {
	case "", "+":
	case "-":
		k = -1
	default:
		f, err := strconv.ParseFloat(coef, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid angle %q", orig)
		}
		k = f
	}
	if hasDen {
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d == 0 {
			return 0, fmt.Errorf("invalid angle %q", orig)
		}
		k /= d
	}
	return Angle(k * math.Pi), nil
}

// Config holds the cosmetic parameters and thresholds of the sketch.
// Variants of the mark differ only in these values.
type Config struct {
	Canvas    CanvasSize `yaml:"canvas"`
	FrameRate int        `yaml:"frame_rate"`

	Palette    Palette `yaml:"palette"`
	Background Role    `yaml:"background"` // canvas fill
	Stroke     Role    `yaml:"stroke"`     // axes, trace and petals

	// LogoSize scales the rose; points lie within LogoSize of the center.
	LogoSize float64 `yaml:"logo_size"`

	AxisSpeed float64 `yaml:"axis_speed"` // pixels per millisecond
	AxisWidth float64 `yaml:"axis_width"`

	ThetaStep  Angle   `yaml:"theta_step"`
	ThetaLimit Angle   `yaml:"theta_limit"`
	TraceWidth float64 `yaml:"trace_width"`

	FadeFrames int   `yaml:"fade_frames"`
	FadeAlpha  uint8 `yaml:"fade_alpha"`

	SpinStep Angle `yaml:"spin_step"` // subtracted from the rotation each frame

	PetalStep  Angle   `yaml:"petal_step"`
	PetalWidth float64 `yaml:"petal_width"`
	DotRadius  float64 `yaml:"dot_radius"`
}

// DefaultConfig returns the home page variant of the sketch.
func DefaultConfig() Config {
	return Config{
		Canvas:     CanvasSize{Width: 480, Height: 400},
		FrameRate:  30,
		Palette:    DefaultPalette(),
		Background: RoleAccent,
		Stroke:     RoleTextPrimary,
		LogoSize:   200,
		AxisSpeed:  0.5,
		AxisWidth:  1,
		ThetaStep:  0.1,
		ThetaLimit: Angle(14 * math.Pi),
		TraceWidth: 2,
		FadeFrames: 50,
		FadeAlpha:  25,
		SpinStep:   1,
		PetalStep:  0.005,
		PetalWidth: 2,
		DotRadius:  2,
	}
}

var presets = map[string]func() Config{
	"home": DefaultConfig,
	"logo-maker": func() Config {
		c := DefaultConfig()
		c.Canvas = CanvasSize{Width: 400, Height: 400}
		c.Background = RoleNone
		c.Stroke = RoleAccent
		c.LogoSize = 312
		c.PetalWidth = 6
		return c
	},
}

// Preset returns a named configuration: "home" or "logo-maker".
func Preset(name string) (Config, error) {
	f, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return f(), nil
}

// PresetNames lists the known presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Validate reports the first problem with c. Every error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	switch {
	case c.Canvas.Empty():
		return invalid("canvas %dx%d", c.Canvas.Width, c.Canvas.Height)
	case c.FrameRate <= 0:
		return invalid("frame_rate %d", c.FrameRate)
	case !(c.LogoSize >= 0):
		return invalid("logo_size %v", c.LogoSize)
	case !(c.AxisSpeed > 0):
		return invalid("axis_speed %v", c.AxisSpeed)
	case !(c.ThetaStep > 0):
		return invalid("theta_step %v", c.ThetaStep)
	case !(c.ThetaLimit >= 0):
		return invalid("theta_limit %v", c.ThetaLimit)
	case c.FadeFrames <= 0:
		return invalid("fade_frames %d", c.FadeFrames)
	case !(c.PetalStep > 0):
		return invalid("petal_step %v", c.PetalStep)
	case c.AxisWidth < 0 || c.TraceWidth < 0 || c.PetalWidth < 0 || c.DotRadius < 0:
		return invalid("negative stroke width")
	}
	if err := c.Palette.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for _, r := range []Role{c.Background, c.Stroke} {
		if _, err := c.Palette.Color(r); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// LogoFrames returns the number of frames the Logo state lasts.
func (c Config) LogoFrames() int {
	if !(c.ThetaStep > 0) {
		return 0
	}
	n := int(math.Floor(float64(c.ThetaLimit/c.ThetaStep))) + 1
	for float64(n-1)*float64(c.ThetaStep) > float64(c.ThetaLimit) {
		n--
	}
	for !(float64(n)*float64(c.ThetaStep) > float64(c.ThetaLimit)) {
		n++
	}
	return n
}

// ParseConfig decodes YAML data on top of base. Fields missing from data
// keep their base values.
func ParseConfig(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("logo: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// maxConfigSize bounds config files read by LoadConfig.
const maxConfigSize = 1 << 20

// LoadConfig reads a YAML config file and overlays it on base.
func LoadConfig(path string, base Config) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("logo: load config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("logo: config %s too large (%d bytes)", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("logo: load config: %w", err)
	}
	cfg, err := ParseConfig(data, base)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Debug("loaded config", "path", path, "size", info.Size())
	return cfg, nil
}

// AxesFrames returns the number of frames the Axes state lasts on a canvas
// of the configured size at the configured frame rate.
func (c Config) AxesFrames() int {
	if c.Canvas.Empty() || !(c.AxisSpeed > 0) {
		return 0
	}
	half := float64(max(c.Canvas.Width, c.Canvas.Height)) / 2
	interval := frameInterval(c.FrameRate)
	n := 0
	for float64(time.Duration(n)*interval)/float64(time.Millisecond)*c.AxisSpeed < half {
		n++
	}
	return n + 1
}

// IntroFrames returns the number of frames drawn before Spin begins.
func (c Config) IntroFrames() int {
	return c.AxesFrames() + c.LogoFrames() + c.FadeFrames
}
