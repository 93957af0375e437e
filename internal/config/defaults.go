package config

import (
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/dupes"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/index"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/quality"
)

// DefaultImportPatterns are the vault-file globs merged by `brain import`.
var DefaultImportPatterns = []string{"**/*.json"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		VaultPath:    ".brain/vault.json",
		ProvenanceDB: ".brain/provenance.db",
		Search: SearchConfig{
			MinScore: index.DefaultMinScore,
			Limit:    10,
		},
		Dedupe: DedupeConfig{
			Threshold: dupes.DefaultThreshold,
		},
		Score: ScoreConfig{
			Standalone: quality.StandaloneWeights,
			Corpus:     quality.CorpusWeights,
		},
		Import: ImportConfig{
			Patterns: DefaultImportPatterns,
		},
		Export: ExportConfig{
			OutputDir: ".brain/export",
			Title:     "Brain Knowledge Base",
		},
	}
}
