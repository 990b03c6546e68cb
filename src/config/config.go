package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "1s" or "400ms" parse.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the runtime configuration of the simulator. Every field has a
// working default; a missing config file is not an error.
type Config struct {
	Capacity int `yaml:"capacity"`

	Refresh struct {
		Period Duration `yaml:"period"`
	} `yaml:"refresh"`

	Sensor struct {
		DebounceWindow Duration `yaml:"debounce_window"`
	} `yaml:"sensor"`

	Log struct {
		// MaxEntries bounds the activity log; 0 keeps it unbounded.
		MaxEntries int    `yaml:"max_entries"`
		Dir        string `yaml:"dir"`
	} `yaml:"log"`

	Headless bool `yaml:"headless"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var cfg Config
	cfg.Capacity = 100
	cfg.Refresh.Period = Duration(time.Second)
	cfg.Sensor.DebounceWindow = Duration(400 * time.Millisecond)
	return cfg
}

// Load reads a YAML config from path on top of the defaults. An empty path
// or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if c.Refresh.Period < 0 {
		return fmt.Errorf("refresh period must not be negative, got %s", c.Refresh.Period.Std())
	}
	if c.Log.MaxEntries < 0 {
		return fmt.Errorf("log max_entries must not be negative, got %d", c.Log.MaxEntries)
	}
	return nil
}
