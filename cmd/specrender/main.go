// Command specrender replays spectrum display host events and writes the
// rendered frames.
//
// Usage:
//
//	specrender [flags] [events-file]
//
// Events are JSON objects, one "start" followed by "change" updates. With
// no file argument (or "-") events are read from stdin.
//
// Examples:
//
//	specrender -out spectrum.svg events.jsonl
//	specrender -format png -out spectrum.png events.jsonl
//	specrender -every -format png -out frames/ events.jsonl
//	specrender -config specrender.yaml
//	specrender -serve :8080
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cwbudde/spectrum-display/display"
	"github.com/cwbudde/spectrum-display/display/scene"
	"github.com/cwbudde/spectrum-display/internal/host"
	"github.com/cwbudde/spectrum-display/render/raster"
	"github.com/cwbudde/spectrum-display/render/svg"
)

// frameSurface is a display surface that can write its current frame.
type frameSurface interface {
	display.Surface
	writeFrame(w io.Writer) error
}

type svgFrames struct{ *svg.Surface }

func (s svgFrames) writeFrame(w io.Writer) error {
	_, err := s.WriteTo(w)
	return err
}

type pngFrames struct{ *raster.Surface }

func (s pngFrames) writeFrame(w io.Writer) error {
	return s.EncodePNG(w)
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	out := flag.String("out", "", "output file, or directory with -every")
	format := flag.String("format", "", "output format: svg or png")
	every := flag.Bool("every", false, "write one frame per event")
	bg := flag.String("bg", "", "PNG background color as #rrggbb")
	serve := flag.String("serve", "", "run the preview server on this address")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: specrender [flags] [events-file]\n\n")
		fmt.Fprintf(os.Stderr, "Replays spectrum display events and writes the rendered frames.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := host.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = host.LoadConfig(*configPath); err != nil {
			logger.Error("load config", "error", err)
			os.Exit(1)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output = *out
		case "format":
			cfg.Format = *format
		case "every":
			cfg.Every = *every
		case "bg":
			cfg.Background = *bg
		case "serve":
			cfg.Listen = *serve
		}
	})
	if flag.NArg() > 0 {
		cfg.Input = flag.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("specrender failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg host.Config, logger *slog.Logger) error {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	if cfg.Listen != "" {
		srv := host.NewServer(logger, raster.WithBackground(bg))
		logger.Info("preview server listening", "addr", cfg.Listen)
		if err := http.ListenAndServe(cfg.Listen, srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}

	in := io.Reader(os.Stdin)
	if cfg.Input != "" && cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("open events: %w", err)
		}
		defer f.Close()
		in = f
	}

	var surface frameSurface = svgFrames{svg.New()}
	if cfg.Format == host.FormatPNG {
		surface = pngFrames{raster.New(raster.WithBackground(bg))}
	}
	d := display.New(surface)

	var perEvent func(int, scene.Scene) error
	if cfg.Every {
		if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		perEvent = func(i int, _ scene.Scene) error {
			name := filepath.Join(cfg.Output, fmt.Sprintf("frame-%05d.%s", i, cfg.Format))
			return writeFile(name, surface)
		}
	}

	n, err := host.Replay(d, in, perEvent)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("no events in input")
	}
	logger.Debug("replayed events", "count", n, "frames", d.Frames())

	if cfg.Every {
		logger.Info("wrote frames", "count", n, "dir", cfg.Output)
		return nil
	}
	if err := writeFile(cfg.Output, surface); err != nil {
		return err
	}
	logger.Info("wrote frame", "path", cfg.Output, "events", n)
	return nil
}

func writeFile(name string, s frameSurface) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := s.writeFrame(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return f.Close()
}
