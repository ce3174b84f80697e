package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/gfxbind/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gfxbind", cfg.Window.Title)
	assert.Equal(t, 480, cfg.Window.LogicalWidth)
	assert.Equal(t, geom.NewRect[float32](0, 0, 1, 1), cfg.Window.Viewport)
	assert.Equal(t, geom.NewRect[float32](40, 40, 160, 120), cfg.Regions["a"])
	assert.Equal(t, geom.NewRect[float32](0, 0, 64, 64), cfg.Regions["hotspot"])

	s, ok := cfg.Shader("outline")
	require.True(t, ok)
	assert.Equal(t, "outline.kage", s.Path)
	assert.Equal(t, []float32{1, 0.8, 0.2, 1}, s.Uniforms["OutlineColor"])
}

func TestLoadFromDiskAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: custom\n  width: 320\n  height: 200\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Window.Title)
	assert.Equal(t, 320, cfg.Window.LogicalWidth)
	assert.Equal(t, 200, cfg.Window.LogicalHeight)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.NotNil(t, cfg.Regions)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative_width", func(c *Config) { c.Window.Width = -1 }},
		{"negative_tps", func(c *Config) { c.Window.TPS = -5 }},
		{"flat_viewport", func(c *Config) { c.Window.Viewport = geom.NewRect[float32](0, 0, 1, 0) }},
		{"shader_without_path", func(c *Config) { c.Shaders = []ShaderSpec{{Name: "x"}} }},
		{"duplicate_shader", func(c *Config) {
			c.Shaders = []ShaderSpec{{Name: "x", Path: "a.kage"}, {Name: "x", Path: "b.kage"}}
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
