package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/provenance"
)

var provenanceCmd = &cobra.Command{
	Use:   "provenance [entry-id]",
	Short: "Show an entry's event history, or a corpus-wide report",
	Long: `Without arguments, prints a corpus-wide report: how many entries carry
history, the most-accessed ones, and how many were never accessed.
With an entry ID, prints that entry's full event history oldest first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProvenance,
}

func init() {
	provenanceCmd.Flags().Int("top", 10, "number of most-accessed entries in the report")
	provenanceCmd.Flags().String("purge-before", "", "delete events older than this date (YYYY-MM-DD)")
	provenanceCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(provenanceCmd)
}

func runProvenance(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	topN, _ := cmd.Flags().GetInt("top")
	purgeBefore, _ := cmd.Flags().GetString("purge-before")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	tracker, database, err := openTracker(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	if purgeBefore != "" {
		before, err := time.Parse("2006-01-02", purgeBefore)
		if err != nil {
			return fmt.Errorf("parsing --purge-before: %w", err)
		}
		n, err := provenance.NewStore(database).DeleteBefore(ctx, before)
		if err != nil {
			return fmt.Errorf("purging events: %w", err)
		}
		fmt.Printf("Purged %d events older than %s.\n", n, purgeBefore)
		return nil
	}

	if len(args) == 1 {
		events, err := tracker.History(ctx, args[0])
		if err != nil {
			return fmt.Errorf("reading history: %w", err)
		}
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(events)
		}
		if len(events) == 0 {
			fmt.Printf("No events recorded for %s.\n", args[0])
			return nil
		}
		for _, e := range events {
			fmt.Printf("%s  %-9s %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.Actor)
			if e.Details != "" {
				fmt.Printf("  (%s)", e.Details)
			}
			fmt.Println()
		}
		return nil
	}

	report, err := tracker.Report(ctx, topN)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("%d entries tracked, %d never accessed.\n", report.TotalEntries, report.NeverAccessed)
	if len(report.TopAccessed) > 0 {
		fmt.Println("\nMost accessed:")
		for _, c := range report.TopAccessed {
			fmt.Printf("  %4d  %s\n", c.Accesses, c.EntryID)
		}
	}
	return nil
}
