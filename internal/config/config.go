package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (BRAIN_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: BRAIN_VAULT_PATH -> vault_path, etc.
	if err := k.Load(env.Provider("BRAIN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BRAIN_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values. It runs at
// load time, before any vault work begins.
func (c *Config) Validate() error {
	if c.VaultPath == "" {
		return fmt.Errorf("vault_path is required")
	}
	if c.ProvenanceDB == "" {
		return fmt.Errorf("provenance_db is required")
	}

	if c.Search.MinScore < 0 || c.Search.MinScore >= 1 {
		return fmt.Errorf("search.min_score must be in [0,1), got %v", c.Search.MinScore)
	}
	if c.Search.Limit < 0 {
		return fmt.Errorf("search.limit must be non-negative, got %d", c.Search.Limit)
	}

	if c.Dedupe.Threshold <= 0 || c.Dedupe.Threshold > 1 {
		return fmt.Errorf("dedupe.threshold must be in (0,1], got %v", c.Dedupe.Threshold)
	}

	if err := c.Score.Standalone.Validate(); err != nil {
		return fmt.Errorf("score.standalone: %w", err)
	}
	if err := c.Score.Corpus.Validate(); err != nil {
		return fmt.Errorf("score.corpus: %w", err)
	}

	if len(c.Import.Patterns) == 0 {
		return fmt.Errorf("import.patterns must not be empty")
	}

	return nil
}
