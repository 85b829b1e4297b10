// Package config loads SketchBoard settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"

	"SketchBoard/internal/state"
	"SketchBoard/internal/surface"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	appDir     = "sketchboard"
	configFile = "config.toml"
)

// Config is the on-disk configuration.
type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	Brush   Brush   `toml:"brush"`
	View    View    `toml:"view"`
	Export  Export  `toml:"export"`
	History History `toml:"history"`
}

type Canvas struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Density    float64 `toml:"density"`
	Background string  `toml:"background"`
	Surround   string  `toml:"surround"`
}

type Brush struct {
	Palette []string  `toml:"palette"`
	Sizes   []float64 `toml:"sizes"`
	Color   string    `toml:"color"`
	Size    float64   `toml:"size"`
}

type View struct {
	ZoomStep float64 `toml:"zoom_step"`
}

type Export struct {
	Margin   float64 `toml:"margin"`
	Filename string  `toml:"filename"`
}

type History struct {
	Limit int `toml:"limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:      600,
			Height:     600,
			Density:    1,
			Background: "#ffffff",
			Surround:   "#e5e7eb",
		},
		Brush: Brush{
			Palette: []string{
				"#000000", "#ef4444", "#f97316", "#eab308",
				"#22c55e", "#3b82f6", "#8b5cf6", "#ec4899",
				"#6b7280", "#ffffff",
			},
			Sizes: []float64{2, 4, 8, 12, 20, 32},
			Color: "#000000",
			Size:  4,
		},
		View:    View{ZoomStep: 0.1},
		Export:  Export{Margin: 20, Filename: "drawing.png"},
		History: History{Limit: state.DefaultHistoryLimit},
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, appDir, configFile)
}

// Load reads path on top of the defaults. An empty path means DefaultPath,
// which may be missing; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and colour strings.
func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Canvas.Density <= 0 {
		errs = append(errs, fmt.Errorf("canvas density %v must be positive", c.Canvas.Density))
	}
	for _, s := range []string{c.Canvas.Background, c.Canvas.Surround, c.Brush.Color} {
		if _, err := ParseColor(s); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Brush.Palette) == 0 {
		errs = append(errs, errors.New("brush palette is empty"))
	}
	for _, s := range c.Brush.Palette {
		if _, err := ParseColor(s); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Brush.Sizes) == 0 {
		errs = append(errs, errors.New("brush sizes are empty"))
	}
	for _, s := range c.Brush.Sizes {
		if s <= 0 {
			errs = append(errs, fmt.Errorf("brush size %v must be positive", s))
		}
	}
	if c.Brush.Size <= 0 {
		errs = append(errs, fmt.Errorf("brush size %v must be positive", c.Brush.Size))
	}
	if c.View.ZoomStep <= 0 || c.View.ZoomStep > state.MaxScale-state.MinScale {
		errs = append(errs, fmt.Errorf("zoom step %v out of range", c.View.ZoomStep))
	}
	if c.Export.Margin < 0 {
		errs = append(errs, fmt.Errorf("export margin %v must not be negative", c.Export.Margin))
	}
	// the margin must cover the widest brush radius
	if r := c.maxBrushSize() / 2; c.Export.Margin < r {
		errs = append(errs, fmt.Errorf("export margin %v is smaller than the largest brush radius %v", c.Export.Margin, r))
	}
	if c.Export.Filename == "" {
		errs = append(errs, errors.New("export filename is empty"))
	}
	if c.History.Limit < 2 {
		errs = append(errs, fmt.Errorf("history limit %d must be at least 2", c.History.Limit))
	}
	return errors.Join(errs...)
}

func (c Config) maxBrushSize() float64 {
	m := c.Brush.Size
	for _, s := range c.Brush.Sizes {
		m = max(m, s)
	}
	return m
}

// ParseColor parses a "#rrggbb" or "#rgb" string.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Palette returns the parsed brush palette.
func (c Config) Palette() ([]color.Color, error) {
	out := make([]color.Color, 0, len(c.Brush.Palette))
	for _, s := range c.Brush.Palette {
		col, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	return out, nil
}

// SurfaceOptions converts the configuration into drawing surface options.
func (c Config) SurfaceOptions() (surface.Options, error) {
	bg, err := ParseColor(c.Canvas.Background)
	if err != nil {
		return surface.Options{}, err
	}
	surround, err := ParseColor(c.Canvas.Surround)
	if err != nil {
		return surface.Options{}, err
	}
	brush, err := ParseColor(c.Brush.Color)
	if err != nil {
		return surface.Options{}, err
	}
	return surface.Options{
		Width:        c.Canvas.Width,
		Height:       c.Canvas.Height,
		Density:      c.Canvas.Density,
		Background:   bg,
		Surround:     surround,
		Color:        brush,
		BrushWidth:   c.Brush.Size,
		ZoomStep:     c.View.ZoomStep,
		ExportMargin: c.Export.Margin,
		HistoryLimit: c.History.Limit,
	}, nil
}
