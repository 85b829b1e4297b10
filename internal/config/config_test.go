package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())

	opts, err := Default().SurfaceOptions()
	require.NoError(t, err)
	assert.Equal(t, 600, opts.Width)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, opts.Background)
	assert.Equal(t, 20.0, opts.ExportMargin)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[canvas]
width = 300
density = 2.0

[brush]
palette = ["#000", "#ff0000"]
size = 8

[history]
limit = 10
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Canvas.Width)
	assert.Equal(t, 600, cfg.Canvas.Height)
	assert.Equal(t, 2.0, cfg.Canvas.Density)
	assert.Equal(t, 8.0, cfg.Brush.Size)
	assert.Equal(t, 10, cfg.History.Limit)

	palette, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, []color.Color{
		color.NRGBA{A: 255},
		color.NRGBA{R: 255, A: 255},
	}, palette)
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadMissingDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[brush]\ncolor = \"purple\"\nsizes = [0]\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purple")
	assert.Contains(t, err.Error(), "brush size 0")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }},
		{"negative density", func(c *Config) { c.Canvas.Density = -1 }},
		{"bad background", func(c *Config) { c.Canvas.Background = "white" }},
		{"empty palette", func(c *Config) { c.Brush.Palette = nil }},
		{"empty sizes", func(c *Config) { c.Brush.Sizes = nil }},
		{"zoom step too large", func(c *Config) { c.View.ZoomStep = 5 }},
		{"negative margin", func(c *Config) { c.Export.Margin = -1 }},
		{"margin below brush radius", func(c *Config) { c.Export.Margin = 15 }},
		{"current size wider than margin", func(c *Config) { c.Brush.Size = 48 }},
		{"no filename", func(c *Config) { c.Export.Filename = "" }},
		{"history too small", func(c *Config) { c.History.Limit = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#3b82f6")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}, c)

	_, err = ParseColor("3b82f6")
	assert.Error(t, err)
}
