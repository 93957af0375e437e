package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the vault as a static HTML knowledge base",
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir, _ := cmd.Flags().GetString("output")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		v, err := openVault(cfg)
		if err != nil {
			return err
		}

		if outputDir == "" {
			outputDir = cfg.Export.OutputDir
		}
		x := export.NewExporter(outputDir, cfg.Export.Title)
		path, err := x.Export(v.Entries())
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d entries to %s\n", v.Len(), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("output", "", "output directory (overrides config)")
	rootCmd.AddCommand(exportCmd)
}
