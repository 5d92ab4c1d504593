// Package config loads the optional tidal configuration file.
//
// Everything has a sensible default, so the tool runs with no file at all.
// The file never carries secret material, only display and cadence
// preferences.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/bashhack/tidal/internal/otp"
)

type Config struct {
	Watch   WatchConfig   `yaml:"watch"`
	Display DisplayConfig `yaml:"display"`
}

type WatchConfig struct {
	// Interval is the refresh cadence in watch mode. The derivation itself
	// is sub-millisecond, so the floor only guards against busy loops.
	Interval time.Duration `yaml:"-" validate:"omitempty,min=100ms,max=1m"`
}

type DisplayConfig struct {
	// Hidden lists granularity labels to omit from output.
	Hidden []string `yaml:"hidden" validate:"dive,oneof=monthly biweekly weekly daily hourly half-hourly minutely"`

	// Clip selects which granularity's code the clipboard flag copies.
	Clip string `yaml:"clip" validate:"omitempty,oneof=monthly biweekly weekly daily hourly half-hourly minutely"`
}

// UnmarshalYAML accepts human-friendly duration strings like "2s" for the
// interval, which yaml.v3 will not decode into time.Duration on its own.
func (w *WatchConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Interval string `yaml:"interval"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Interval == "" {
		return nil
	}

	d, err := time.ParseDuration(raw.Interval)
	if err != nil {
		return fmt.Errorf("watch.interval: %w", err)
	}
	w.Interval = d
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Watch:   WatchConfig{Interval: time.Second},
		Display: DisplayConfig{Clip: "minutely"},
	}
}

// Load reads, defaults and validates the configuration. An empty path starts
// from Default(). Environment overrides apply before validation on every
// path, so an override cannot smuggle in a value the file would be rejected
// for.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		var parsed Config
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		parsed.setDefaults()
		cfg = &parsed
	}

	cfg.applyEnvOverrides()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TIDAL_WATCH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Watch.Interval = d
		}
	}
}

func (c *Config) setDefaults() {
	if c.Watch.Interval == 0 {
		c.Watch.Interval = time.Second
	}
	if c.Display.Clip == "" {
		c.Display.Clip = "minutely"
	}
}

// HiddenGranularities resolves the hidden labels to a lookup set. Labels are
// validated at load time, so unknown ones cannot occur here.
func (c *Config) HiddenGranularities() map[otp.Granularity]bool {
	if len(c.Display.Hidden) == 0 {
		return nil
	}
	hidden := make(map[otp.Granularity]bool, len(c.Display.Hidden))
	for _, label := range c.Display.Hidden {
		if g, ok := otp.GranularityFromLabel(label); ok {
			hidden[g] = true
		}
	}
	return hidden
}

// ClipGranularity resolves the configured clipboard source.
func (c *Config) ClipGranularity() otp.Granularity {
	if g, ok := otp.GranularityFromLabel(c.Display.Clip); ok {
		return g
	}
	return otp.Minutely
}
