package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/progress"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score every entry's quality and report the distribution",
	Long: `Computes a weighted quality score per entry from completeness, freshness,
usage, reliability and uniqueness within the corpus. Totals are cached
on the entries so list and export can show them.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().Float64("prune", 0, "also plan removal of entries scoring under this total")
	scoreCmd.Flags().Bool("apply", false, "apply the prune plan (requires --prune)")
	scoreCmd.Flags().Bool("json", false, "output the report as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	prune, _ := cmd.Flags().GetFloat64("prune")
	apply, _ := cmd.Flags().GetBool("apply")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if apply && prune <= 0 {
		return fmt.Errorf("--apply requires --prune")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := openVault(cfg)
	if err != nil {
		return err
	}
	scorer, err := newScorer(cfg)
	if err != nil {
		return err
	}
	if !jsonOutput {
		scorer.SetProgress(progressCallback(progress.NewReporter(), "Scoring entries"))
	}

	report := scorer.ReportAll(v.Entries())

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	for _, sc := range report.Scores {
		fmt.Printf("  %s  %5.1f  %s\n", sc.Grade, sc.Total, sc.Entry.ID)
	}
	fmt.Printf("\n%d entries, average %.1f\n", len(report.Scores), report.Average)
	fmt.Printf("A=%d B=%d C=%d D=%d F=%d\n",
		report.Distribution["A"], report.Distribution["B"],
		report.Distribution["C"], report.Distribution["D"],
		report.Distribution["F"])

	// Cache totals on the vault so other commands can read them.
	for _, sc := range report.Scores {
		v.SetQualityScore(sc.Entry.ID, sc.Total)
	}

	if prune > 0 {
		plan := scorer.Prune(v.Entries(), prune)
		if len(plan.Removals) == 0 {
			fmt.Printf("\nNo entries score under %.1f.\n", prune)
		} else {
			fmt.Printf("\n%d entries score under %.1f:\n", len(plan.Removals), prune)
			for _, sc := range plan.Removals {
				fmt.Printf("  %s  %5.1f  %s\n", sc.Grade, sc.Total, sc.Entry.ID)
			}
			if apply {
				removed := v.Remove(plan.RemoveIDs())
				fmt.Printf("Removed %d entries.\n", removed)
			} else {
				fmt.Println("Re-run with --apply to remove them.")
			}
		}
	}

	if err := v.Save(); err != nil {
		return fmt.Errorf("saving vault: %w", err)
	}
	return nil
}
