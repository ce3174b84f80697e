// Package config loads the YAML configuration for windows, shaders and named
// regions.
package config

import (
	"errors"
	"fmt"

	"github.com/milk9111/gfxbind/geom"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window  Window                    `yaml:"window"`
	Shaders []ShaderSpec              `yaml:"shaders"`
	Regions map[string]geom.FloatRect `yaml:"regions"`
}

type Window struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	LogicalWidth  int    `yaml:"logical_width"`
	LogicalHeight int    `yaml:"logical_height"`
	Resizable     bool   `yaml:"resizable"`
	VSync         bool   `yaml:"vsync"`
	TPS           int    `yaml:"tps"`
	// Viewport is the view's area of the window in [0, 1] ratios.
	Viewport geom.FloatRect `yaml:"viewport"`
}

// ShaderSpec names a Kage source file and its initial uniform values.
type ShaderSpec struct {
	Name     string               `yaml:"name"`
	Path     string               `yaml:"path"`
	Watch    bool                 `yaml:"watch"`
	Uniforms map[string][]float32 `yaml:"uniforms"`
}

// LoadSpec reads and decodes a YAML file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Read(filename)
	if err != nil {
		return zero, fmt.Errorf("config: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Load reads the configuration at path, applies defaults and validates it.
// An empty path loads the embedded default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultName
	}
	cfg, err := LoadSpec[Config](path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

func (c *Config) ApplyDefaults() {
	w := &c.Window
	if w.Title == "" {
		w.Title = "gfxbind"
	}
	if w.Width == 0 {
		w.Width = 960
	}
	if w.Height == 0 {
		w.Height = 640
	}
	if w.LogicalWidth == 0 {
		w.LogicalWidth = w.Width
	}
	if w.LogicalHeight == 0 {
		w.LogicalHeight = w.Height
	}
	if w.TPS == 0 {
		w.TPS = 60
	}
	if w.Viewport.IsZero() {
		w.Viewport = geom.NewRect[float32](0, 0, 1, 1)
	}
	if c.Regions == nil {
		c.Regions = map[string]geom.FloatRect{}
	}
}

func (c *Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, w.Width, w.Height)
	}
	if w.LogicalWidth <= 0 || w.LogicalHeight <= 0 {
		return fmt.Errorf("%w: logical size %dx%d", ErrInvalid, w.LogicalWidth, w.LogicalHeight)
	}
	if w.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalid, w.TPS)
	}
	vp := w.Viewport.Normalized()
	if vp.Width == 0 || vp.Height == 0 {
		return fmt.Errorf("%w: empty viewport %v", ErrInvalid, w.Viewport)
	}

	seen := make(map[string]bool, len(c.Shaders))
	for i, s := range c.Shaders {
		if s.Name == "" || s.Path == "" {
			return fmt.Errorf("%w: shader %d needs name and path", ErrInvalid, i)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate shader %q", ErrInvalid, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Shader returns the spec with the given name.
func (c *Config) Shader(name string) (ShaderSpec, bool) {
	for _, s := range c.Shaders {
		if s.Name == name {
			return s, true
		}
	}
	return ShaderSpec{}, false
}
