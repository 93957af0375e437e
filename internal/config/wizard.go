package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .brain.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to brain! Let's set up your knowledge vault.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Vault file location.
	vaultPrompt := promptui.Prompt{
		Label:   "Vault file path",
		Default: cfg.VaultPath,
	}
	vaultPath, err := vaultPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("vault path: %w", err)
	}
	cfg.VaultPath = vaultPath

	// 2. Provenance database location.
	dbPrompt := promptui.Prompt{
		Label:   "Provenance database path",
		Default: cfg.ProvenanceDB,
	}
	dbPath, err := dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provenance db path: %w", err)
	}
	cfg.ProvenanceDB = dbPath

	// 3. Duplicate sensitivity.
	dupePrompt := promptui.Select{
		Label: "Duplicate detection sensitivity",
		Items: []string{
			"strict  — only near-identical entries (0.90)",
			"normal  — close rewordings (0.80)",
			"loose   — broadly similar entries (0.70)",
		},
	}
	dupeIdx, _, err := dupePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("dedupe sensitivity: %w", err)
	}
	cfg.Dedupe.Threshold = []float64{0.90, 0.80, 0.70}[dupeIdx]

	// 4. Search result limit.
	limitPrompt := promptui.Prompt{
		Label:   "Default search result limit",
		Default: strconv.Itoa(cfg.Search.Limit),
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n < 0 {
				return fmt.Errorf("must be a non-negative integer")
			}
			return nil
		},
	}
	limitStr, err := limitPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("search limit: %w", err)
	}
	cfg.Search.Limit, _ = strconv.Atoi(strings.TrimSpace(limitStr))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	// Save to .brain.yml.
	configPath := ".brain.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
