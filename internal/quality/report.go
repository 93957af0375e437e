package quality

import (
	"sort"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

// Report aggregates a full-corpus scoring pass.
type Report struct {
	Scores       []Score        `json:"scores"`
	Average      float64        `json:"average"`
	Distribution map[string]int `json:"distribution"`
}

// ReportAll scores the snapshot and aggregates the grade distribution.
func (s *Scorer) ReportAll(entries []entry.Entry) Report {
	scores := s.ScoreAll(entries)

	dist := map[string]int{"A": 0, "B": 0, "C": 0, "D": 0, "F": 0}
	var sum float64
	for _, sc := range scores {
		dist[sc.Grade]++
		sum += sc.Total
	}

	var avg float64
	if len(scores) > 0 {
		avg = sum / float64(len(scores))
	}
	return Report{Scores: scores, Average: avg, Distribution: dist}
}

// PrunePlan lists entries scoring under a threshold. Applying the plan is the
// caller's job; a dry run surfaces the plan only.
type PrunePlan struct {
	Below    float64 `json:"below"`
	Removals []Score `json:"removals"`
}

// RemoveIDs returns the IDs of all entries marked for pruning.
func (p PrunePlan) RemoveIDs() []string {
	ids := make([]string, 0, len(p.Removals))
	for _, sc := range p.Removals {
		ids = append(ids, sc.Entry.ID)
	}
	return ids
}

// Prune plans removal of every entry whose corpus-aware total falls under
// the threshold.
func (s *Scorer) Prune(entries []entry.Entry, below float64) PrunePlan {
	plan := PrunePlan{Below: below}
	for _, sc := range s.ScoreAll(entries) {
		if sc.Total < below {
			plan.Removals = append(plan.Removals, sc)
		}
	}
	return plan
}

// sortScoresDesc orders scores descending by total, preserving corpus order
// for equal totals.
func sortScoresDesc(scores []Score) {
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].Total > scores[b].Total
	})
}
