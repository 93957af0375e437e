package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "brain",
	Short: "Personal knowledge base with search, dedupe and quality scoring",
	Long: `Brain keeps a team's accumulated knowledge - lessons, snippets,
patterns, decisions - in a plain JSON vault and makes it usable:
TF-IDF search, fuzzy duplicate detection, multi-factor quality
scoring and a full provenance trail for every entry.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".brain.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
