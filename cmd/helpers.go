package cmd

import (
	"fmt"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/config"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/db"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/progress"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/provenance"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/quality"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/vault"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `brain init` to create a config file", err)
	}
	return cfg, nil
}

// openVault opens the configured vault file.
func openVault(cfg *config.Config) (*vault.Vault, error) {
	v, err := vault.Open(cfg.VaultPath)
	if err != nil {
		return nil, fmt.Errorf("opening vault %s: %w", cfg.VaultPath, err)
	}
	return v, nil
}

// openTracker opens the provenance database and wraps it in a tracker.
// The caller must Close the returned DB.
func openTracker(cfg *config.Config) (*provenance.Tracker, *db.DB, error) {
	database, err := db.Open(cfg.ProvenanceDB)
	if err != nil {
		return nil, nil, fmt.Errorf("opening provenance database: %w", err)
	}
	return provenance.NewTracker(provenance.NewStore(database)), database, nil
}

// newScorer builds a quality scorer from the configured weight tables.
func newScorer(cfg *config.Config) (*quality.Scorer, error) {
	scorer, err := quality.NewScorerWithWeights(cfg.Score.Standalone, cfg.Score.Corpus)
	if err != nil {
		return nil, fmt.Errorf("invalid score weights: %w", err)
	}
	return scorer, nil
}

// progressCallback adapts a progress.Reporter into the (done, total)
// callback shape the detector and scorer expect. Start fires on the first
// call so callers without work never render a bar.
func progressCallback(r progress.Reporter, label string) func(done, total int) {
	started := false
	return func(done, total int) {
		if !started {
			r.Start(label, total)
			started = true
		}
		r.Update(done)
		if done == total {
			r.Finish()
		}
	}
}
