// Package config loads editor settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dd0wney/harmonia/pkg/templates"
	"github.com/dd0wney/harmonia/pkg/validation"
	"github.com/dd0wney/harmonia/pkg/viewport"
	"gopkg.in/yaml.v3"
)

// Config holds all editor settings
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Viewport ViewportConfig `yaml:"viewport"`
	Grid     GridConfig     `yaml:"grid"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Seed     []SeedNode     `yaml:"seed" validate:"dive"`
}

// WindowConfig controls the shell
type WindowConfig struct {
	Title string `yaml:"title" validate:"required"`
}

// ViewportConfig controls pan and zoom
type ViewportConfig struct {
	ZoomSensitivity float64 `yaml:"zoom_sensitivity" validate:"finite"`
	// ScrollStep is the scroll delta reported for one wheel notch
	ScrollStep float64 `yaml:"scroll_step"`
	MinZoom    float64 `yaml:"min_zoom" validate:"gt=0,finite"`
	MaxZoom    float64 `yaml:"max_zoom" validate:"gt=0,finite"`
}

// GridConfig controls the background dot grid
type GridConfig struct {
	Spacing           float64 `yaml:"spacing" validate:"gt=0,finite"`
	MinVisibleSpacing float64 `yaml:"min_visible_spacing" validate:"gte=0,finite"`
	MaxCells          int     `yaml:"max_cells"`
}

// LoggingConfig controls the JSON log file
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// MetricsConfig controls the optional Prometheus endpoint
type MetricsConfig struct {
	// Addr is host:port to serve /metrics on; empty disables the endpoint
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// SeedNode is a node created at startup
type SeedNode struct {
	Template string  `yaml:"template" validate:"required"`
	X        float64 `yaml:"x" validate:"finite"`
	Y        float64 `yaml:"y" validate:"finite"`
}

// Bounds on the scroll-to-zoom sensitivity. Above the maximum a single
// wheel notch jumps across most of the zoom range.
const (
	minSensitivity = 1e-6
	maxSensitivity = 0.1
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{Title: "Harmonia DAW"},
		Viewport: ViewportConfig{
			ZoomSensitivity: viewport.DefaultSensitivity,
			ScrollStep:      50,
			MinZoom:         viewport.DefaultMinZoom,
			MaxZoom:         viewport.DefaultMaxZoom,
		},
		Grid: GridConfig{
			Spacing:           8,
			MinVisibleSpacing: 4,
			MaxCells:          100_000,
		},
		Logging: LoggingConfig{Level: "info", File: "harmonia.log"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and cross-field rules
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cv := validation.NewConfigValidator("Config").
		RangeFloat("Viewport.ZoomSensitivity", c.Viewport.ZoomSensitivity, minSensitivity, maxSensitivity).
		PositiveFloat("Viewport.ScrollStep", c.Viewport.ScrollStep).
		LessFloat("Viewport.MinZoom", c.Viewport.MinZoom, "Viewport.MaxZoom", c.Viewport.MaxZoom).
		Positive("Grid.MaxCells", c.Grid.MaxCells).
		OneOf("Logging.Level", c.Logging.Level, logLevels).
		Required("Logging.File", c.Logging.File)
	for i, seed := range c.Seed {
		cv.Custom(fmt.Sprintf("Seed[%d].Template", i), func() error {
			_, err := templates.Parse(seed.Template)
			return err
		})
	}
	if err := cv.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SeedTemplates resolves the seed list. Validate has already checked every
// template name.
func (c *Config) SeedTemplates() ([]templates.Template, error) {
	out := make([]templates.Template, 0, len(c.Seed))
	for _, seed := range c.Seed {
		t, err := templates.Parse(seed.Template)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
