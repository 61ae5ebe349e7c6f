package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/propeltutoring/logo"
	"github.com/schollz/progressbar/v3"
)

// ErrNoFrames is returned when an export would produce no frames.
var ErrNoFrames = errors.New("export: no frames to render")

// SequenceOptions selects which frames of the animation are rendered.
type SequenceOptions struct {
	// Count is the number of frames simulated. Zero means the whole intro
	// plus two seconds of spin.
	Count int

	// Every keeps one frame out of Every. Zero or one keeps all of them.
	Every int

	// Progress, when set, receives a progress bar.
	Progress io.Writer

	// Sequencer options, for example a transition hook.
	Options []logo.Option
}

func (o SequenceOptions) count(cfg logo.Config) int {
	if o.Count > 0 {
		return o.Count
	}
	return cfg.IntroFrames() + 2*cfg.FrameRate
}

func (o SequenceOptions) every() int {
	return max(o.Every, 1)
}

// Kept returns how many frames are emitted for cfg.
func (o SequenceOptions) Kept(cfg logo.Config) int {
	n, k := o.count(cfg), o.every()
	return (n + k - 1) / k
}

// simulate runs the sequencer at the config frame rate and calls emit for
// every kept frame. It stops early when ctx is done.
func simulate(ctx context.Context, cfg logo.Config, opts SequenceOptions, description string,
	emit func(index int, dc *gg.Context) error) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	count, every := opts.count(cfg), opts.every()
	if count <= 0 {
		return ErrNoFrames
	}

	dc := gg.NewContext(cfg.Canvas.Width, cfg.Canvas.Height)
	defer func() { _ = dc.Close() }()
	seq := logo.NewSequencer(cfg, opts.Options...)
	defer func() { _ = seq.Close() }()
	clock := logo.NewFrameClock(cfg.FrameRate)

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(opts.Kept(cfg),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription(description),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer func() { _ = bar.Close() }()
	}

	kept := 0
	for i := range count {
		if err := ctx.Err(); err != nil {
			return err
		}
		seq.Draw(dc, clock.Elapsed())
		clock.Tick()
		if i%every != 0 {
			continue
		}
		if err := emit(kept, dc); err != nil {
			return err
		}
		kept++
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return nil
}

// Frames writes the animation as numbered PNG files (frame_00000.png, ...)
// into dir, creating it if needed, and returns the written paths.
func Frames(ctx context.Context, dir string, cfg logo.Config, opts SequenceOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: create %s: %w", dir, err)
	}
	paths := make([]string, 0, opts.Kept(cfg))
	err := simulate(ctx, cfg, opts, "frames", func(i int, dc *gg.Context) error {
		path := filepath.Join(dir, fmt.Sprintf("frame_%05d.png", i))
		if err := dc.SavePNG(path); err != nil {
			return fmt.Errorf("export: save %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return paths, err
	}
	logo.Logger().Info("exported frames", "dir", dir, "frames", len(paths))
	return paths, nil
}
