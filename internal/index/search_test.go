package index

import (
	"testing"
	"time"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	idx := Build(testCorpus())

	for _, q := range []string{"", "   ", "the a an", "! ? ."} {
		if results := idx.Search(q, Filter{}, 0, -1); len(results) != 0 {
			t.Errorf("Search(%q) returned %d results, want 0", q, len(results))
		}
	}
}

// Scenario: "async" matches only the async entry.
func TestSearchMatchesRelevantEntryOnly(t *testing.T) {
	idx := Build(testCorpus())

	results := idx.Search("async", Filter{}, 0, -1)
	if len(results) != 1 {
		t.Fatalf("Search(async) returned %d results, want 1", len(results))
	}
	if results[0].Entry.ID != "c" {
		t.Errorf("Search(async) matched %q, want %q", results[0].Entry.ID, "c")
	}
	if results[0].Score <= 0 {
		t.Errorf("Search(async) score = %v, want > 0", results[0].Score)
	}
}

func TestSearchOrderingAndMinScore(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", Content: "backup strategy for postgres backup jobs backup"},
		{ID: "b", Content: "backup once"},
		{ID: "c", Content: "unrelated kubernetes networking"},
	}
	idx := Build(entries)

	results := idx.Search("backup", Filter{}, 0, -1)
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not in descending order at %d", i)
		}
	}
	for _, r := range results {
		if r.Score < DefaultMinScore {
			t.Errorf("result %q below min score: %v", r.Entry.ID, r.Score)
		}
		if r.Entry.ID == "c" {
			t.Error("unrelated entry returned")
		}
	}
}

func TestSearchTopK(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", Content: "deploy checklist"},
		{ID: "b", Content: "deploy runbook"},
		{ID: "c", Content: "deploy rollback"},
	}
	idx := Build(entries)

	results := idx.Search("deploy", Filter{}, 2, -1)
	if len(results) != 2 {
		t.Fatalf("topK=2 returned %d results", len(results))
	}
}

func TestSearchStableTieBreak(t *testing.T) {
	// Identical content scores identically; corpus order must be preserved.
	entries := []entry.Entry{
		{ID: "first", Content: "cache invalidation tricks"},
		{ID: "second", Content: "cache invalidation tricks"},
	}
	idx := Build(entries)

	results := idx.Search("cache invalidation", Filter{}, 0, -1)
	if len(results) != 2 {
		t.Fatalf("returned %d results, want 2", len(results))
	}
	if results[0].Entry.ID != "first" || results[1].Entry.ID != "second" {
		t.Errorf("tie not broken by corpus order: %q, %q",
			results[0].Entry.ID, results[1].Entry.ID)
	}
}

func TestSearchFilters(t *testing.T) {
	now := time.Now()
	entries := []entry.Entry{
		{ID: "a", Type: entry.TypeLesson, Status: entry.StatusTested,
			Content: "deploy safely", Tags: []string{"ops"}, UpdatedAt: now},
		{ID: "b", Type: entry.TypeTip, Status: entry.StatusDraft,
			Content: "deploy quickly", Tags: []string{"speed"}, UpdatedAt: now.AddDate(-1, 0, 0)},
	}
	idx := Build(entries)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"by type", Filter{Type: entry.TypeLesson}, []string{"a"}},
		{"by status", Filter{Status: entry.StatusDraft}, []string{"b"}},
		{"by tag case-insensitive", Filter{Tags: []string{"OPS"}}, []string{"a"}},
		{"by date since", Filter{Since: now.AddDate(0, -1, 0)}, []string{"a"}},
		{"by date until", Filter{Until: now.AddDate(0, -1, 0)}, []string{"b"}},
		{"no match", Filter{Type: entry.TypeSnippet}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := idx.Search("deploy", tt.filter, 0, -1)
			if len(results) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(results), len(tt.want))
			}
			for i, id := range tt.want {
				if results[i].Entry.ID != id {
					t.Errorf("result %d = %q, want %q", i, results[i].Entry.ID, id)
				}
			}
		})
	}
}
