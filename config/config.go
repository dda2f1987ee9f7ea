// Package config provides configuration loading and access for the visualizer.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable settings. Grid dimensions, cell size, history
// capacity and the auto-advance cadence are fixed and not part of it.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Seed      SeedConfig      `yaml:"seed"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Headless  HeadlessConfig  `yaml:"headless"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// SeedConfig holds random seeding parameters.
type SeedConfig struct {
	Density float64 `yaml:"density"` // Probability that a cell starts alive
}

// TelemetryConfig holds generation statistics settings.
type TelemetryConfig struct {
	WindowGenerations int  `yaml:"window_generations"` // Generations per stats row
	PerfWindowTicks   int  `yaml:"perf_window_ticks"`  // Updates per perf row
	BookmarkHistory   int  `yaml:"bookmark_history"`   // Windows averaged for boom detection
	LogStats          bool `yaml:"log_stats"`
}

// HeadlessConfig holds settings for runs without a window.
type HeadlessConfig struct {
	Generations int `yaml:"generations"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	if c.Seed.Density <= 0 || c.Seed.Density > 1 {
		errs = append(errs, fmt.Errorf("seed.density must be in (0, 1], got %g", c.Seed.Density))
	}
	if c.Telemetry.WindowGenerations <= 0 {
		errs = append(errs, fmt.Errorf("telemetry.window_generations must be positive, got %d", c.Telemetry.WindowGenerations))
	}
	if c.Telemetry.PerfWindowTicks <= 0 {
		errs = append(errs, fmt.Errorf("telemetry.perf_window_ticks must be positive, got %d", c.Telemetry.PerfWindowTicks))
	}
	if c.Telemetry.BookmarkHistory < 3 {
		errs = append(errs, fmt.Errorf("telemetry.bookmark_history must be at least 3, got %d", c.Telemetry.BookmarkHistory))
	}
	if c.Headless.Generations < 0 {
		errs = append(errs, fmt.Errorf("headless.generations must not be negative, got %d", c.Headless.Generations))
	}
	return errors.Join(errs...)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
