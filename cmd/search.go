package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/index"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/provenance"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the vault by TF-IDF relevance",
	Long:  `Ranks vault entries against the query by cosine similarity over TF-IDF vectors. Filters narrow the candidates before scoring.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().Int("limit", 0, "maximum number of results (0 uses config)")
	searchCmd.Flags().String("type", "", "filter by entry type: lesson, pattern, antipattern, tip, insight, experiment, snippet, tutorial, solution, documentation")
	searchCmd.Flags().String("status", "", "filter by status")
	searchCmd.Flags().StringSlice("tags", nil, "require all listed tags")
	searchCmd.Flags().String("since", "", "only entries updated on or after this date (YYYY-MM-DD)")
	searchCmd.Flags().Float64("min-score", -1, "minimum relevance score (default from config)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	queryText := args[0]

	limit, _ := cmd.Flags().GetInt("limit")
	typeFilter, _ := cmd.Flags().GetString("type")
	statusFilter, _ := cmd.Flags().GetString("status")
	tags, _ := cmd.Flags().GetStringSlice("tags")
	since, _ := cmd.Flags().GetString("since")
	minScore, _ := cmd.Flags().GetFloat64("min-score")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := openVault(cfg)
	if err != nil {
		return err
	}

	if limit <= 0 {
		limit = cfg.Search.Limit
	}
	if minScore < 0 {
		minScore = cfg.Search.MinScore
	}

	filter := index.Filter{
		Type:   entry.Type(typeFilter),
		Status: entry.Status(statusFilter),
		Tags:   tags,
	}
	if typeFilter != "" && !entry.ValidType(filter.Type) {
		return fmt.Errorf("unknown entry type %q", typeFilter)
	}
	if statusFilter != "" && !entry.ValidStatus(filter.Status) {
		return fmt.Errorf("unknown status %q", statusFilter)
	}
	if since != "" {
		t, err := time.Parse("2006-01-02", since)
		if err != nil {
			return fmt.Errorf("parsing --since: %w", err)
		}
		filter.Since = t
	}

	idx := index.Build(v.Entries())
	results := idx.Search(queryText, filter, limit, minScore)

	// Record accesses for the hits so usage scoring reflects reality,
	// regardless of the output mode.
	if len(results) > 0 {
		tracker, database, err := openTracker(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		for _, r := range results {
			if err := tracker.Record(ctx, r.Entry.ID, provenance.ActionAccessed, "cli", "search: "+queryText); err != nil && verbose {
				fmt.Fprintf(os.Stderr, "warning: recording access for %s: %v\n", r.Entry.ID, err)
			}
			v.Touch(r.Entry.ID)
		}
		if err := v.Save(); err != nil {
			return fmt.Errorf("saving vault: %w", err)
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	for i, r := range results {
		fmt.Printf("%d. [%.3f] %s (%s)\n", i+1, r.Score, r.Entry.ID, r.Entry.Type)
		fmt.Printf("   %s\n", firstLine(r.Entry.Content))
		if len(r.Entry.Tags) > 0 {
			fmt.Printf("   tags: %s\n", strings.Join(r.Entry.Tags, ", "))
		}
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 100 {
		s = s[:100] + "..."
	}
	return s
}
