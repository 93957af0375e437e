package index

import (
	"math"
	"reflect"
	"testing"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

func testCorpus() []entry.Entry {
	return []entry.Entry{
		{ID: "a", Type: entry.TypeLesson, Content: "Always backup before deploy"},
		{ID: "b", Type: entry.TypeLesson, Content: "always backup before deploy"},
		{ID: "c", Type: entry.TypeTip, Content: "Use async IO for throughput"},
	}
}

func TestBuildEmptyCorpus(t *testing.T) {
	idx := Build(nil)
	if idx.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", idx.Len())
	}
	if results := idx.Search("anything", Filter{}, 0, -1); len(results) != 0 {
		t.Errorf("expected no results from empty index, got %d", len(results))
	}
}

func TestIDFSmoothing(t *testing.T) {
	idx := Build(testCorpus())

	// A token present in no document still gets a finite IDF.
	if idf := idx.IDF("zzz"); math.IsInf(idf, 0) || math.IsNaN(idf) {
		t.Errorf("IDF(unknown) = %v, want finite", idf)
	}

	// Rarer tokens weigh more.
	if idx.IDF("async") <= idx.IDF("backup") {
		t.Errorf("IDF(async)=%v should exceed IDF(backup)=%v",
			idx.IDF("async"), idx.IDF("backup"))
	}
}

func TestZeroContentEntryGetsZeroVector(t *testing.T) {
	idx := Build([]entry.Entry{{ID: "d"}})
	if vec := idx.Vector(0); len(vec) != 0 {
		t.Errorf("Vector(0) = %v, want empty", vec)
	}
}

func TestCosineSymmetric(t *testing.T) {
	entries := testCorpus()
	idx := Build(entries)

	for i := range entries {
		for j := range entries {
			a := idx.Cosine(idx.Vector(i), j)
			b := idx.Cosine(idx.Vector(j), i)
			if math.Abs(a-b) > 1e-12 {
				t.Errorf("Cosine(%d,%d)=%v != Cosine(%d,%d)=%v", i, j, a, j, i, b)
			}
		}
	}
}

func TestCosineZeroNorm(t *testing.T) {
	idx := Build(testCorpus())
	if got := idx.Cosine(Vector{}, 0); got != 0 {
		t.Errorf("Cosine(zero vector) = %v, want 0", got)
	}
}

// Scenario: rebuilding the index from an unchanged snapshot is bit-identical.
func TestBuildDeterministic(t *testing.T) {
	entries := testCorpus()

	first := Build(entries)
	second := Build(entries)

	for i := range entries {
		if !reflect.DeepEqual(first.Vector(i), second.Vector(i)) {
			t.Errorf("entry %d: vectors differ between rebuilds", i)
		}
	}

	q1 := first.Search("backup deploy", Filter{}, 0, -1)
	q2 := second.Search("backup deploy", Filter{}, 0, -1)
	if !reflect.DeepEqual(q1, q2) {
		t.Error("rankings differ between identical rebuilds")
	}
}

func TestSharesToken(t *testing.T) {
	idx := Build(testCorpus())
	if !idx.SharesToken(0, 1) {
		t.Error("entries with identical content should share tokens")
	}
	if idx.SharesToken(0, 2) {
		t.Error("disjoint entries should not share tokens")
	}
}
