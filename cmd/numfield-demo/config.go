package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/numfield/numeric"
)

// ErrInvalidBounds reports a field whose min exceeds its max.
var ErrInvalidBounds = errors.New("min exceeds max")

// Config is the optional YAML description of the demo's fields.
type Config struct {
	Fields []FieldConfig `yaml:"fields"`
}

// FieldConfig describes one numeric field. Missing bounds are unbounded.
type FieldConfig struct {
	Name  string `yaml:"name"`
	Min   *int64 `yaml:"min,omitempty"`
	Max   *int64 `yaml:"max,omitempty"`
	Value int64  `yaml:"value,omitempty"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates YAML config data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Fields) == 0 {
		return errors.New("config declares no fields")
	}
	seen := make(map[string]bool, len(c.Fields))
	for i, f := range c.Fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return fmt.Errorf("field %d: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("field %q: duplicate name", name)
		}
		seen[name] = true
		if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
			return fmt.Errorf("field %q: %w (%d > %d)", name, ErrInvalidBounds, *f.Min, *f.Max)
		}
	}
	return nil
}

// NumericConfig converts f into a numeric.Config with default styling.
func (f FieldConfig) NumericConfig() numeric.Config {
	cfg := numeric.DefaultConfig()
	cfg.ID = strings.TrimSpace(f.Name)
	cfg.Prompt = cfg.ID + ": "
	cfg.Width = 24
	if f.Min != nil {
		cfg.Min = *f.Min
	}
	if f.Max != nil {
		cfg.Max = *f.Max
	}
	cfg.Value = f.Value
	return cfg
}
