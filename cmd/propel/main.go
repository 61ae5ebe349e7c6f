// Command propel renders the tutoring logo animation.
//
//	propel still  [-o logo.png] [-density 3] [-opaque] [-caption text]
//	propel frames [-dir frames] [-count n] [-every n]
//	propel gif    [-o logo.gif] [-count n] [-every 2] [-scale 0.5]
//	propel term   [-sound]
//	propel window [-title propel] [-label]
//
// Every subcommand accepts -preset, -config and -v.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg/text"
	"github.com/propeltutoring/logo"
	"github.com/propeltutoring/logo/export"
	"github.com/propeltutoring/logo/integration/window"
	"github.com/propeltutoring/logo/internal/chime"
	"github.com/propeltutoring/logo/term"
	"golang.org/x/image/font/gofont/goregular"
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stderr)
	stop()
	switch {
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "propel: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: propel <command> [flags]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  still    render the static logo to PNG\n")
	fmt.Fprintf(w, "  frames   write the animation as numbered PNG frames\n")
	fmt.Fprintf(w, "  gif      write the animation as an animated GIF\n")
	fmt.Fprintf(w, "  term     play the animation in the terminal\n")
	fmt.Fprintf(w, "  window   play the animation in a GPU window\n\n")
	fmt.Fprintf(w, "Presets: %s\n", strings.Join(logo.PresetNames(), ", "))
}

type command func(ctx context.Context, cfg logo.Config, stderr io.Writer) error

func run(ctx context.Context, args []string, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}
	name, args := args[0], args[1:]

	fs := flag.NewFlagSet("propel "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	preset := fs.String("preset", "home", "base preset")
	configPath := fs.String("config", "", "YAML file overlaid on the preset")
	verbose := fs.Bool("v", false, "debug logging")

	var cmd command
	switch name {
	case "still":
		cmd = stillCommand(fs)
	case "frames":
		cmd = framesCommand(fs)
	case "gif":
		cmd = gifCommand(fs)
	case "term":
		cmd = termCommand(fs)
	case "window":
		cmd = windowCommand(fs)
	case "help", "-h", "-help", "--help":
		usage(stderr)
		return nil
	default:
		fmt.Fprintf(stderr, "propel: unknown command %q\n\n", name)
		usage(stderr)
		return errUsage
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logo.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer logo.SetLogger(nil)

	cfg, err := loadConfig(*preset, *configPath)
	if err != nil {
		return err
	}
	return cmd(ctx, cfg, stderr)
}

func loadConfig(preset, path string) (logo.Config, error) {
	cfg, err := logo.Preset(preset)
	if err != nil {
		return logo.Config{}, err
	}
	if path == "" {
		return cfg, nil
	}
	return logo.LoadConfig(path, cfg)
}

func stillCommand(fs *flag.FlagSet) command {
	out := fs.String("o", "logo.png", "output file")
	density := fs.Float64("density", 3, "pixel density")
	opaque := fs.Bool("opaque", false, "paint the background")
	caption := fs.String("caption", "", "caption under the logo")
	return func(_ context.Context, cfg logo.Config, _ io.Writer) error {
		return export.WriteStill(*out, cfg, export.StillOptions{
			Density: *density,
			Opaque:  *opaque,
			Caption: *caption,
		})
	}
}

func framesCommand(fs *flag.FlagSet) command {
	dir := fs.String("dir", "frames", "output directory")
	count := fs.Int("count", 0, "frames to simulate (0: intro plus two seconds)")
	every := fs.Int("every", 1, "keep every n-th frame")
	return func(ctx context.Context, cfg logo.Config, stderr io.Writer) error {
		_, err := export.Frames(ctx, *dir, cfg, export.SequenceOptions{
			Count:    *count,
			Every:    *every,
			Progress: stderr,
		})
		return err
	}
}

func gifCommand(fs *flag.FlagSet) command {
	out := fs.String("o", "logo.gif", "output file")
	count := fs.Int("count", 0, "frames to simulate (0: intro plus two seconds)")
	every := fs.Int("every", 2, "keep every n-th frame")
	scale := fs.Float64("scale", 0.5, "output scale")
	return func(ctx context.Context, cfg logo.Config, stderr io.Writer) error {
		return export.WriteGIF(ctx, *out, cfg, export.GIFOptions{
			SequenceOptions: export.SequenceOptions{
				Count:    *count,
				Every:    *every,
				Progress: stderr,
			},
			Scale: *scale,
		})
	}
}

func termCommand(fs *flag.FlagSet) command {
	sound := fs.Bool("sound", false, "chime on state changes")
	return func(ctx context.Context, cfg logo.Config, _ io.Writer) error {
		// The screen owns the terminal, so nothing may log to it.
		logo.SetLogger(nil)

		var opts term.Options
		if *sound {
			player, err := chime.New()
			if err != nil {
				fmt.Fprintf(os.Stderr, "propel: audio unavailable: %v\n", err)
			}
			defer player.Close()
			opts.Cue = player
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()

		host, err := term.New(screen, cfg, opts)
		if err != nil {
			return err
		}
		defer host.Close()

		if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

func windowCommand(fs *flag.FlagSet) command {
	title := fs.String("title", "propel", "window title")
	label := fs.Bool("label", false, "show the state name")
	return func(_ context.Context, cfg logo.Config, _ io.Writer) error {
		opts := window.Options{Title: *title}
		if *label {
			src, err := text.NewFontSource(goregular.TTF)
			if err != nil {
				return fmt.Errorf("load label font: %w", err)
			}
			defer src.Close()
			opts.Logo = append(opts.Logo, logo.WithStateLabel(src.Face(14)))
		}
		return window.Run(cfg, opts)
	}
}
