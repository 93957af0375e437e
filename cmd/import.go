package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import entries from JSON files in a directory tree",
	Long: `Walks the directory with the configured glob patterns (default **/*.json)
and merges any entry files found into the vault. Entries whose IDs
already exist are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringSlice("patterns", nil, "glob patterns to match (overrides config)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	patterns, _ := cmd.Flags().GetStringSlice("patterns")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := openVault(cfg)
	if err != nil {
		return err
	}

	if len(patterns) == 0 {
		patterns = cfg.Import.Patterns
	}

	added, err := v.Import(args[0], patterns)
	if err != nil {
		return fmt.Errorf("importing from %s: %w", args[0], err)
	}
	if added > 0 {
		if err := v.Save(); err != nil {
			return fmt.Errorf("saving vault: %w", err)
		}
	}
	fmt.Printf("Imported %d entries. Vault now holds %d.\n", added, v.Len())
	return nil
}
