// Package config loads optional scan defaults from a YAML file.
// Command-line flags always win over file values; the file only supplies
// defaults for flags the user left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danlonngren/log-parser/pkg/matcher"
)

type Config struct {
	IgnoreCase bool   `yaml:"ignore_case"`
	Regex      bool   `yaml:"regex"`
	Output     string `yaml:"output"`

	Prefilter PrefilterSection `yaml:"prefilter"`
}

// PrefilterSection tunes the literal prefilter. Pointer fields
// distinguish "unset" from an explicit zero.
type PrefilterSection struct {
	Enabled          *bool `yaml:"enabled"`
	MinPatternLength *int  `yaml:"min_pattern_length"`
	MaxPatterns      *int  `yaml:"max_patterns"`
}

// PrefilterConfig folds the section over the built-in defaults.
func (c *Config) PrefilterConfig() matcher.PrefilterConfig {
	cfg := matcher.DefaultPrefilterConfig()
	if c.Prefilter.Enabled != nil {
		cfg.Enabled = *c.Prefilter.Enabled
	}
	if c.Prefilter.MinPatternLength != nil {
		cfg.MinPatternLength = *c.Prefilter.MinPatternLength
	}
	if c.Prefilter.MaxPatterns != nil {
		cfg.MaxPatterns = c.Prefilter.MaxPatterns
	}
	return cfg
}

// Load reads the config file at path. An empty path returns the zero
// config: the file is strictly optional.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
