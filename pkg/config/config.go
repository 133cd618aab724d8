// Package config loads the viewer's startup settings from a YAML or TOML file.
// Settings are only read, never written back.
package config

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/go4d/pkg/animation"
	"github.com/philipparndt/go4d/pkg/polytope"
	"github.com/philipparndt/go4d/pkg/projection"
	"github.com/philipparndt/go4d/pkg/rotor"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Window is the initial window size in pixels
type Window struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Style holds draw colours as hex strings ("#rrggbb") or color names
type Style struct {
	Background   string  `yaml:"background" toml:"background"`
	Edge         string  `yaml:"edge" toml:"edge"`
	Vertex       string  `yaml:"vertex" toml:"vertex"`
	VertexRadius float64 `yaml:"vertex_radius" toml:"vertex_radius"`
}

// Config is the content of a settings file
type Config struct {
	Shape        string             `yaml:"shape" toml:"shape"`
	Zoom         float64            `yaml:"zoom" toml:"zoom"`
	FreeRotation bool               `yaml:"free_rotation" toml:"free_rotation"`
	Seed         uint64             `yaml:"seed" toml:"seed"`
	Rates        map[string]float64 `yaml:"rates,omitempty" toml:"rates,omitempty"`
	Window       Window             `yaml:"window" toml:"window"`
	Style        Style              `yaml:"style" toml:"style"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Shape:        strings.ToLower(polytope.Hypercube.String()),
		Zoom:         animation.DefaultZoom,
		FreeRotation: true,
		Window:       Window{Width: 800, Height: 600},
		Style: Style{
			Background:   "#000000",
			Edge:         "#ffffff",
			Vertex:       "#ffffff",
			VertexRadius: 3,
		},
	}
}

// FormatOf picks the decoder from a file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("unsupported config extension %q (use .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Load reads and validates a settings file. Keys missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates settings from raw bytes
func Parse(data []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("invalid toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("invalid toml: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown names, bad colours, non-positive window sizes and
// non-numeric zoom or rates, and clamps zoom and rates into range
func (c *Config) Validate() error {
	if _, err := polytope.ParseShape(c.Shape); err != nil {
		return err
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	seen := make(map[rotor.Plane]string, len(c.Rates))
	for name, rate := range c.Rates {
		plane, err := rotor.ParsePlane(name)
		if err != nil {
			return fmt.Errorf("rates: %w", err)
		}
		if other, ok := seen[plane]; ok {
			first, second := min(name, other), max(name, other)
			return fmt.Errorf("rates: %q and %q both set plane %s", first, second, plane)
		}
		seen[plane] = name
		if math.IsNaN(rate) {
			return fmt.Errorf("rates: %s is not a number", name)
		}
		c.Rates[name] = max(animation.MinRate, min(animation.MaxRate, rate))
	}

	if math.IsNaN(c.Zoom) {
		return fmt.Errorf("zoom is not a number")
	}
	if c.Zoom == 0 {
		c.Zoom = animation.DefaultZoom
	}
	c.Zoom = max(animation.MinZoom, min(animation.MaxZoom, c.Zoom))

	if _, err := c.Style.Palette(); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if c.Style.VertexRadius < 0 {
		c.Style.VertexRadius = 0
	}
	return nil
}

// ShapeID resolves the configured shape, falling back to the hypercube
func (c *Config) ShapeID() polytope.Shape {
	shape, err := polytope.ParseShape(c.Shape)
	if err != nil {
		return polytope.Hypercube
	}
	return shape
}

// PlaneRates returns the explicitly configured rates keyed by plane
func (c *Config) PlaneRates() map[rotor.Plane]float64 {
	rates := make(map[rotor.Plane]float64, len(c.Rates))
	for name, rate := range c.Rates {
		if plane, err := rotor.ParsePlane(name); err == nil {
			rates[plane] = rate
		}
	}
	return rates
}

// ApplyRates overrides the configured planes in rates and leaves the others
func (c *Config) ApplyRates(rates animation.Rates) animation.Rates {
	for plane, rate := range c.PlaneRates() {
		rates[plane] = rate
	}
	return rates
}

// Rand returns the random source for startup rates. A zero seed is time based.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Options builds the animation options. Planes without a configured rate get a
// random startup rate drawn from src.
func (c *Config) Options(src animation.Float64Source) animation.Options {
	return animation.Options{
		Shape:        c.ShapeID(),
		Zoom:         c.Zoom,
		Rates:        c.ApplyRates(animation.RandomRates(src)),
		FreeRotation: c.FreeRotation,
		Viewport: projection.Viewport{
			Width:  float64(c.Window.Width),
			Height: float64(c.Window.Height),
		},
	}
}

// Encode writes the settings in the given format
func (c *Config) Encode(w io.Writer, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		if err := toml.NewEncoder(w).Encode(c); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Summary is a one-line description for status output
func (c *Config) Summary() string {
	planes := make([]string, 0, len(c.Rates))
	for name, rate := range c.Rates {
		planes = append(planes, fmt.Sprintf("%s=%.3f", strings.ToUpper(name), rate))
	}
	sort.Strings(planes)

	rates := "random"
	if len(planes) > 0 {
		rates = strings.Join(planes, " ")
	}
	return fmt.Sprintf("shape=%s zoom=%.2f free=%t rates=%s window=%dx%d",
		c.ShapeID(), c.Zoom, c.FreeRotation, rates, c.Window.Width, c.Window.Height)
}
