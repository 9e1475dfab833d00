// Package config loads and validates a crawl experiment definition from a
// YAML file: the seed word and its definition, the context keywords that
// anchor relevance, and the runtime knobs for the build.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance.
var validate = validator.New()

// Duration wraps time.Duration so YAML values like "500ms" parse. Bare
// integers are taken as nanoseconds, matching time.Duration's native form.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		var ns int64
		if ierr := value.Decode(&ns); ierr != nil {
			return fmt.Errorf("config: invalid duration %q: %w", value.Value, err)
		}
		parsed = time.Duration(ns)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default runtime values applied when the file leaves a knob unset.
const (
	DefaultMaxHops   = 2
	DefaultThrottle  = 500 * time.Millisecond
	DefaultCachePath = "cache.json"
	DefaultLogLevel  = "info"
)

// Config is one experiment definition.
type Config struct {
	// Seed is the word the crawl starts from.
	Seed string `yaml:"seed" validate:"required"`
	// SeedPartOfSpeech and SeedDefinition describe the seed without a
	// dictionary lookup, so the crawl root is always well-defined.
	SeedPartOfSpeech string `yaml:"seed_part_of_speech" validate:"required"`
	SeedDefinition   string `yaml:"seed_definition" validate:"required"`

	// ContextKeywords anchor the relevance rules. Matching is done on the
	// normalized forms.
	ContextKeywords []string `yaml:"context_keywords" validate:"required,min=1,dive,required"`

	// MaxHops bounds how far the crawl expands from the seed.
	MaxHops int `yaml:"max_hops" validate:"min=0,max=10"`

	// Throttle is the minimum delay between live dictionary fetches.
	Throttle Duration `yaml:"throttle" validate:"min=0"`

	// CachePath is where dictionary responses persist between runs.
	CachePath string `yaml:"cache_path"`

	// GMLPath, when set, is where the built graph is exported.
	GMLPath string `yaml:"gml_path"`

	// WordSimPath, when set, points at a similarity dataset CSV to
	// validate the built graph against.
	WordSimPath string `yaml:"wordsim_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns a config with the runtime knobs at their defaults and the
// experiment fields empty.
func Default() *Config {
	return &Config{
		MaxHops:   DefaultMaxHops,
		Throttle:  Duration(DefaultThrottle),
		CachePath: DefaultCachePath,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads, defaults, normalizes, and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a config from raw YAML.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize lowercases the experiment vocabulary so it matches graph nodes
// and reapplies defaults for knobs the file cleared.
func (c *Config) normalize() {
	c.Seed = strings.ToLower(strings.TrimSpace(c.Seed))
	c.SeedPartOfSpeech = strings.ToLower(strings.TrimSpace(c.SeedPartOfSpeech))
	for i, kw := range c.ContextKeywords {
		c.ContextKeywords[i] = strings.ToLower(strings.TrimSpace(kw))
	}
	if c.CachePath == "" {
		c.CachePath = DefaultCachePath
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks the struct tags and reports the first failure in terms of
// the YAML field names.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config: nil config")
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("config: field %s failed %q validation (value %v)", e.Field(), e.Tag(), e.Value())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
