package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/config"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/vault"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize brain configuration with an interactive wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard()
		if err != nil {
			return err
		}

		// Create an empty vault so the other commands have something to open.
		v, err := vault.Open(cfg.VaultPath)
		if err != nil {
			return fmt.Errorf("creating vault: %w", err)
		}
		if v.Len() == 0 {
			if err := v.Save(); err != nil {
				return fmt.Errorf("writing vault: %w", err)
			}
		}

		fmt.Println("Run `brain add` to capture your first entry.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
