package host

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

var errBadColor = errors.New("background must be #rrggbb")

// Config controls the specrender command.
type Config struct {
	// Input is the event stream path; "-" or empty reads stdin.
	Input string `yaml:"input"`
	// Output is the frame path. With Every set it is a directory.
	Output string `yaml:"output"`
	// Format is svg or png.
	Format string `yaml:"format"`
	// Every writes one file per event instead of only the final frame.
	Every bool `yaml:"every"`
	// Background is the PNG background as #rrggbb.
	Background string `yaml:"background"`
	// Listen, when set, serves the preview server on this address.
	Listen string `yaml:"listen"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		Input:      "-",
		Output:     "spectrum.svg",
		Format:     FormatSVG,
		Background: "#000000",
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the format and background.
func (c Config) Validate() error {
	switch c.Format {
	case FormatSVG, FormatPNG:
	default:
		return fmt.Errorf("unsupported format: %q", c.Format)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses Background.
func (c Config) BackgroundColor() (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(c.Background), "#")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", errBadColor, c.Background)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", errBadColor, c.Background)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
