package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const validYAML = `
seed: State
seed_part_of_speech: noun
seed_definition: "the condition of a person or thing"
context_keywords:
  - Condition
  - mode
  - situation
max_hops: 2
throttle: 250ms
cache_path: /tmp/dict-cache.json
log_level: debug
`

func TestParseValid(t *testing.T) {
	cfg, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Seed != "state" {
		t.Errorf("Seed = %q, want lowercased %q", cfg.Seed, "state")
	}
	if cfg.ContextKeywords[0] != "condition" {
		t.Errorf("ContextKeywords[0] = %q, want lowercased", cfg.ContextKeywords[0])
	}
	if cfg.MaxHops != 2 {
		t.Errorf("MaxHops = %d, want 2", cfg.MaxHops)
	}
	if cfg.Throttle.Std() != 250*time.Millisecond {
		t.Errorf("Throttle = %v, want 250ms", cfg.Throttle.Std())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
seed: state
seed_part_of_speech: noun
seed_definition: a condition
context_keywords: [condition]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.MaxHops != DefaultMaxHops {
		t.Errorf("MaxHops = %d, want default %d", cfg.MaxHops, DefaultMaxHops)
	}
	if cfg.Throttle.Std() != DefaultThrottle {
		t.Errorf("Throttle = %v, want default %v", cfg.Throttle.Std(), DefaultThrottle)
	}
	if cfg.CachePath != DefaultCachePath {
		t.Errorf("CachePath = %q, want default %q", cfg.CachePath, DefaultCachePath)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestParseMissingSeed(t *testing.T) {
	_, err := Parse([]byte(`
seed_part_of_speech: noun
seed_definition: a condition
context_keywords: [condition]
`))
	if err == nil {
		t.Fatal("expected error for missing seed")
	}
	if !strings.Contains(err.Error(), "Seed") {
		t.Errorf("error %q does not name the failing field", err)
	}
}

func TestParseEmptyKeywords(t *testing.T) {
	_, err := Parse([]byte(`
seed: state
seed_part_of_speech: noun
seed_definition: a condition
context_keywords: []
`))
	if err == nil {
		t.Fatal("expected error for empty context_keywords")
	}
}

func TestParseBadLogLevel(t *testing.T) {
	_, err := Parse([]byte(`
seed: state
seed_part_of_speech: noun
seed_definition: a condition
context_keywords: [condition]
log_level: loud
`))
	if err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestParseHopsOutOfRange(t *testing.T) {
	_, err := Parse([]byte(`
seed: state
seed_part_of_speech: noun
seed_definition: a condition
context_keywords: [condition]
max_hops: 99
`))
	if err == nil {
		t.Fatal("expected error for max_hops above limit")
	}
}

func TestParseBadDuration(t *testing.T) {
	_, err := Parse([]byte(`
seed: state
seed_part_of_speech: noun
seed_definition: a condition
context_keywords: [condition]
throttle: soon
`))
	if err == nil {
		t.Fatal("expected error for unparseable throttle")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("seed: [unclosed")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != "state" {
		t.Errorf("Seed = %q, want state", cfg.Seed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
