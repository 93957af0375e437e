package index

import (
	"sort"
	"time"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

// DefaultMinScore is the similarity floor below which results are dropped.
const DefaultMinScore = 0.05

// Filter narrows the candidate set before similarity scoring. Filters never
// change score values, only which entries are scored.
type Filter struct {
	Type   entry.Type
	Status entry.Status
	Tags   []string // entry must carry every listed tag (case-insensitive)
	Since  time.Time
	Until  time.Time
}

func (f Filter) matches(e *entry.Entry) bool {
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	for _, tag := range f.Tags {
		if !e.HasTag(tag) {
			return false
		}
	}
	if !f.Since.IsZero() && e.Freshness().Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && e.Freshness().After(f.Until) {
		return false
	}
	return true
}

// Result is one ranked search hit.
type Result struct {
	Entry entry.Entry `json:"entry"`
	Score float64     `json:"score"`
}

// Search ranks entries against the query by cosine similarity, descending.
// Equal scores preserve corpus order. A query that tokenizes to nothing
// returns no results, never the whole corpus. topK <= 0 means unlimited;
// minScore < 0 selects DefaultMinScore.
func (idx *Index) Search(query string, filter Filter, topK int, minScore float64) []Result {
	if minScore < 0 {
		minScore = DefaultMinScore
	}

	q := idx.QueryVector(query)
	if len(q) == 0 {
		return nil
	}

	var results []Result
	for i := 0; i < idx.Len(); i++ {
		e := idx.Entry(i)
		if !filter.matches(&e) {
			continue
		}
		score := idx.Cosine(q, i)
		if score == 0 || score < minScore {
			continue
		}
		results = append(results, Result{Entry: e, Score: score})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}
