package raster

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type config struct {
	background color.Color
	face       font.Face
}

// Option configures a Surface.
type Option func(*config)

func defaultConfig() config {
	return config{
		background: color.RGBA{A: 255},
		face:       basicfont.Face7x13,
	}
}

// WithBackground sets the color used by Clear.
func WithBackground(c color.Color) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.background = c
		}
	}
}

// WithFace sets the label font face.
func WithFace(f font.Face) Option {
	return func(cfg *config) {
		if f != nil {
			cfg.face = f
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
