package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/playback"
	"github.com/san-kum/sortlab/internal/trace"
)

const (
	DefaultAlgorithm  = algorithms.NameBubble
	DefaultIntervalMS = 100
	DefaultTheme      = "cyberpunk"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Algorithm  string `yaml:"algorithm"`
	Size       int    `yaml:"size"`
	IntervalMS int    `yaml:"interval_ms"`
	Min        int    `yaml:"min"`
	Max        int    `yaml:"max"`
	// Seed 0 means a time-based seed.
	Seed  int64  `yaml:"seed"`
	Theme string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm:  string(DefaultAlgorithm),
		Size:       playback.DefaultArraySize,
		IntervalMS: DefaultIntervalMS,
		Min:        trace.DefaultMin,
		Max:        trace.DefaultMax,
		Theme:      DefaultTheme,
	}
}

// Load reads a YAML file over the defaults. Missing keys keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values that cannot be clamped into shape.
func (c *Config) Validate() error {
	if _, err := algorithms.ParseName(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Normalize clamps size and interval into the supported ranges, orders the
// value range and canonicalizes the algorithm name. It returns one line per
// adjustment so callers can log them.
func (c *Config) Normalize() []string {
	var notes []string

	if name, err := algorithms.ParseName(c.Algorithm); err == nil && string(name) != c.Algorithm {
		notes = append(notes, fmt.Sprintf("algorithm %q read as %q", c.Algorithm, name))
		c.Algorithm = string(name)
	}
	if n := playback.ClampArraySize(c.Size); n != c.Size {
		notes = append(notes, fmt.Sprintf("size %d clamped to %d", c.Size, n))
		c.Size = n
	}
	if d := playback.ClampInterval(c.Interval()); d != c.Interval() {
		notes = append(notes, fmt.Sprintf("interval %dms clamped to %dms", c.IntervalMS, d.Milliseconds()))
		c.IntervalMS = int(d.Milliseconds())
	}
	if c.Min > c.Max {
		notes = append(notes, fmt.Sprintf("value range [%d, %d] reversed", c.Min, c.Max))
		c.Min, c.Max = c.Max, c.Min
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	return notes
}

func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// AlgorithmName resolves Algorithm, falling back to the default.
func (c *Config) AlgorithmName() algorithms.Name {
	name, err := algorithms.ParseName(c.Algorithm)
	if err != nil {
		return DefaultAlgorithm
	}
	return name
}

// Merge copies the fields of p over c.
func (c *Config) Merge(p *Config) {
	if p.Algorithm != "" {
		c.Algorithm = p.Algorithm
	}
	if p.Size != 0 {
		c.Size = p.Size
	}
	if p.IntervalMS != 0 {
		c.IntervalMS = p.IntervalMS
	}
	if p.Min != 0 || p.Max != 0 {
		c.Min, c.Max = p.Min, p.Max
	}
	if p.Seed != 0 {
		c.Seed = p.Seed
	}
	if p.Theme != "" {
		c.Theme = p.Theme
	}
}
