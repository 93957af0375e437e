package dupes

import (
	"errors"
	"testing"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

func mustDetector(t *testing.T, threshold float64) *Detector {
	t.Helper()
	d, err := NewDetector(threshold)
	if err != nil {
		t.Fatalf("NewDetector(%v): %v", threshold, err)
	}
	return d
}

func TestNewDetectorValidatesThreshold(t *testing.T) {
	for _, th := range []float64{0, -0.1, 1.01, 2} {
		if _, err := NewDetector(th); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("NewDetector(%v) err = %v, want ErrInvalidThreshold", th, err)
		}
	}
	if _, err := NewDetector(1); err != nil {
		t.Errorf("NewDetector(1) err = %v, want nil", err)
	}
}

// Scenario: case-insensitive exact content match is one pair at similarity 1.0.
func TestFindExactPair(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", Content: "Always backup before deploy"},
		{ID: "b", Content: "always backup before deploy"},
		{ID: "c", Content: "Use async IO for throughput"},
	}

	pairs := mustDetector(t, 0.85).Find(entries)
	if len(pairs) != 1 {
		t.Fatalf("Find returned %d pairs, want 1", len(pairs))
	}
	p := pairs[0]
	if p.A.ID != "a" || p.B.ID != "b" {
		t.Errorf("pair = (%q,%q), want (a,b)", p.A.ID, p.B.ID)
	}
	if p.Similarity != 1.0 {
		t.Errorf("similarity = %v, want 1.0", p.Similarity)
	}
	if p.Kind != KindExact {
		t.Errorf("kind = %q, want exact", p.Kind)
	}
}

func TestFindNeverPairsSelfOrRepeats(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", Content: "configure retries with backoff"},
		{ID: "b", Content: "configure retries with backoff"},
		{ID: "c", Content: "configure retries with a backoff"},
	}

	pairs := mustDetector(t, 0.5).Find(entries)
	seen := make(map[[2]string]bool)
	for _, p := range pairs {
		if p.A.ID == p.B.ID {
			t.Errorf("self pair reported for %q", p.A.ID)
		}
		key := [2]string{p.A.ID, p.B.ID}
		if p.B.ID < p.A.ID {
			key = [2]string{p.B.ID, p.A.ID}
		}
		if seen[key] {
			t.Errorf("pair %v reported twice", key)
		}
		seen[key] = true
	}
}

func TestFindSortsBySimilarityDescending(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", Content: "rotate credentials every quarter"},
		{ID: "b", Content: "rotate credentials every quarter"},
		{ID: "c", Content: "rotate credentials every two quarters"},
	}

	pairs := mustDetector(t, 0.5).Find(entries)
	for i := 1; i < len(pairs); i++ {
		if pairs[i].Similarity > pairs[i-1].Similarity {
			t.Errorf("pairs not sorted descending at %d", i)
		}
	}
}

// Scenario: empty-content entries never appear in any duplicate pair.
func TestFindSkipsEmptyContent(t *testing.T) {
	entries := []entry.Entry{
		{ID: "d", Content: ""},
		{ID: "e", Content: "   "},
		{ID: "f", Content: "real knowledge here"},
	}

	if pairs := mustDetector(t, 0.1).Find(entries); len(pairs) != 0 {
		t.Errorf("expected no pairs, got %d", len(pairs))
	}
}

func TestDedupeRemovesLowerScored(t *testing.T) {
	entries := []entry.Entry{
		{ID: "low", Content: "always backup before deploy"},
		{ID: "high", Content: "always backup before deploy"},
	}
	score := func(e entry.Entry) float64 {
		if e.ID == "high" {
			return 90
		}
		return 40
	}

	plan := mustDetector(t, 0.85).Dedupe(entries, score)
	if len(plan.Removals) != 1 {
		t.Fatalf("got %d removals, want 1", len(plan.Removals))
	}
	if plan.Removals[0].Remove.ID != "low" || plan.Removals[0].Keep.ID != "high" {
		t.Errorf("removal = keep %q / remove %q, want keep high / remove low",
			plan.Removals[0].Keep.ID, plan.Removals[0].Remove.ID)
	}
}

func TestDedupeTieKeepsFirstByCorpusOrder(t *testing.T) {
	entries := []entry.Entry{
		{ID: "first", Content: "identical advice"},
		{ID: "second", Content: "identical advice"},
	}
	flat := func(entry.Entry) float64 { return 50 }

	plan := mustDetector(t, 0.85).Dedupe(entries, flat)
	if len(plan.Removals) != 1 {
		t.Fatalf("got %d removals, want 1", len(plan.Removals))
	}
	if plan.Removals[0].Keep.ID != "first" {
		t.Errorf("tie kept %q, want first", plan.Removals[0].Keep.ID)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", Content: "always backup before deploy"},
		{ID: "b", Content: "always backup before deploy"},
		{ID: "c", Content: "always backup right before deploy"},
		{ID: "d", Content: "use async io for throughput"},
	}
	flat := func(entry.Entry) float64 { return 50 }

	d := mustDetector(t, 0.85)
	plan := d.Dedupe(entries, flat)
	if len(plan.Removals) == 0 {
		t.Fatal("expected at least one removal on first pass")
	}

	removed := make(map[string]bool)
	for _, id := range plan.RemoveIDs() {
		removed[id] = true
	}
	var survivors []entry.Entry
	for _, e := range entries {
		if !removed[e.ID] {
			survivors = append(survivors, e)
		}
	}

	second := d.Dedupe(survivors, flat)
	if len(second.Removals) != 0 {
		t.Errorf("second pass removed %d entries, want 0 (idempotence)", len(second.Removals))
	}
}

func TestDetectorProgressCallback(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", Content: "one"}, {ID: "b", Content: "two"}, {ID: "c", Content: "three"},
	}

	var calls, lastTotal int
	d := mustDetector(t, 0.9)
	d.SetProgress(func(done, total int) {
		calls++
		lastTotal = total
	})
	d.Find(entries)

	if calls != 3 || lastTotal != 3 {
		t.Errorf("progress calls = %d (total %d), want 3 of 3", calls, lastTotal)
	}
}
