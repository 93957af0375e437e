package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/dupes"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/progress"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Find near-duplicate entries and optionally remove them",
	Long: `Compares every entry pair by content similarity. By default only reports
the duplicate pairs; with --apply, the lower-quality entry of each pair
is removed from the vault.`,
	RunE: runDedupe,
}

func init() {
	dedupeCmd.Flags().Float64("threshold", 0, "similarity threshold in (0,1] (0 uses config)")
	dedupeCmd.Flags().Bool("apply", false, "remove the lower-quality entry of each duplicate pair")
	dedupeCmd.Flags().Bool("json", false, "output the plan as JSON")
	rootCmd.AddCommand(dedupeCmd)
}

func runDedupe(cmd *cobra.Command, args []string) error {
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	apply, _ := cmd.Flags().GetBool("apply")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := openVault(cfg)
	if err != nil {
		return err
	}

	if threshold == 0 {
		threshold = cfg.Dedupe.Threshold
	}
	detector, err := dupes.NewDetector(threshold)
	if err != nil {
		return err
	}
	if !jsonOutput {
		detector.SetProgress(progressCallback(progress.NewReporter(), "Comparing entries"))
	}

	scorer, err := newScorer(cfg)
	if err != nil {
		return err
	}
	totals := scorer.Totals(v.Entries())
	plan := detector.Dedupe(v.Entries(), func(e entry.Entry) float64 {
		return totals[e.ID]
	})

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	if len(plan.Pairs) == 0 {
		fmt.Println("No duplicates found.")
		return nil
	}

	fmt.Printf("Found %d duplicate pair(s):\n", len(plan.Pairs))
	for _, p := range plan.Pairs {
		fmt.Printf("  [%.2f %s] %s <-> %s\n", p.Similarity, p.Kind, p.A.ID, p.B.ID)
	}

	if !apply {
		fmt.Printf("\n%d entries would be removed. Re-run with --apply to remove them.\n", len(plan.Removals))
		return nil
	}

	removed := v.Remove(plan.RemoveIDs())
	if err := v.Save(); err != nil {
		return fmt.Errorf("saving vault: %w", err)
	}
	fmt.Printf("\nRemoved %d entries. %d remain.\n", removed, v.Len())
	return nil
}
