package logo

import "github.com/gogpu/gg/text"

// Option configures a Sequencer during creation.
//
// Example:
//
//	seq := logo.NewSequencer(logo.DefaultConfig(),
//		logo.WithThetaLimit(14.1*math.Pi),
//		logo.WithTransitionHook(func(from, to logo.State) {
//			log.Printf("%v -> %v", from, to)
//		}))
type Option func(*options)

type options struct {
	hooks []func(from, to State)
	label text.Face
	tweak []func(*Config)
}

// WithPalette replaces the palette.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.tweak = append(o.tweak, func(c *Config) { c.Palette = p })
	}
}

// WithColors selects the palette roles used for the background and strokes.
func WithColors(background, stroke Role) Option {
	return func(o *options) {
		o.tweak = append(o.tweak, func(c *Config) {
			c.Background = background
			c.Stroke = stroke
		})
	}
}

// WithLogoSize sets the rose scale.
func WithLogoSize(size float64) Option {
	return func(o *options) {
		o.tweak = append(o.tweak, func(c *Config) { c.LogoSize = size })
	}
}

// WithThetaStep sets the angle advanced per Logo frame.
func WithThetaStep(step float64) Option {
	return func(o *options) {
		o.tweak = append(o.tweak, func(c *Config) { c.ThetaStep = Angle(step) })
	}
}

// WithThetaLimit sets the angle past which tracing ends.
func WithThetaLimit(limit float64) Option {
	return func(o *options) {
		o.tweak = append(o.tweak, func(c *Config) { c.ThetaLimit = Angle(limit) })
	}
}

// WithFadeFrames sets how many frames the Fade state lasts.
func WithFadeFrames(n int) Option {
	return func(o *options) {
		o.tweak = append(o.tweak, func(c *Config) { c.FadeFrames = n })
	}
}

// WithPetalStep sets the sampling step of the offscreen petal buffer.
func WithPetalStep(step float64) Option {
	return func(o *options) {
		o.tweak = append(o.tweak, func(c *Config) { c.PetalStep = Angle(step) })
	}
}

// WithTransitionHook registers fn to run after every state change. Hooks
// run on the goroutine calling Draw.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(o *options) {
		if fn != nil {
			o.hooks = append(o.hooks, fn)
		}
	}
}

// WithStateLabel draws the current state name at (10, 20) every frame on
// surfaces that can render text.
func WithStateLabel(face text.Face) Option {
	return func(o *options) {
		o.label = face
	}
}
