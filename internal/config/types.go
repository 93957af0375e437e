package config

import "github.com/DansiDanutz/MyWork-AI-sub002/internal/quality"

// Config is the top-level brain configuration, corresponding to .brain.yml.
type Config struct {
	VaultPath    string       `yaml:"vault_path" koanf:"vault_path"`
	ProvenanceDB string       `yaml:"provenance_db" koanf:"provenance_db"`
	Search       SearchConfig `yaml:"search" koanf:"search"`
	Dedupe       DedupeConfig `yaml:"dedupe" koanf:"dedupe"`
	Score        ScoreConfig  `yaml:"score" koanf:"score"`
	Import       ImportConfig `yaml:"import" koanf:"import"`
	Export       ExportConfig `yaml:"export" koanf:"export"`
}

// SearchConfig holds search defaults the CLI applies when flags are absent.
type SearchConfig struct {
	MinScore float64 `yaml:"min_score" koanf:"min_score"`
	Limit    int     `yaml:"limit" koanf:"limit"`
}

// DedupeConfig holds duplicate-detection defaults.
type DedupeConfig struct {
	Threshold float64 `yaml:"threshold" koanf:"threshold"`
}

// ScoreConfig holds the quality weight tables. Both must sum to 1.
type ScoreConfig struct {
	Standalone quality.Weights `yaml:"standalone" koanf:"standalone"`
	Corpus     quality.Weights `yaml:"corpus" koanf:"corpus"`
}

// ImportConfig controls vault imports.
type ImportConfig struct {
	Patterns []string `yaml:"patterns" koanf:"patterns"`
}

// ExportConfig controls the static HTML export.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	Title     string `yaml:"title" koanf:"title"`
}
