// Package quality computes 0–100 quality scores for knowledge entries from
// completeness, freshness, usage, reliability, and corpus uniqueness.
package quality

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/dupes"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

// ErrInvalidWeights is returned when a weight table is rejected.
var ErrInvalidWeights = errors.New("invalid quality weights")

// Weights is a scoring weight table. Entries must be non-negative and sum to 1.
type Weights struct {
	Completeness float64 `yaml:"completeness" koanf:"completeness"`
	Freshness    float64 `yaml:"freshness" koanf:"freshness"`
	Usage        float64 `yaml:"usage" koanf:"usage"`
	Reliability  float64 `yaml:"reliability" koanf:"reliability"`
	Uniqueness   float64 `yaml:"uniqueness" koanf:"uniqueness"`
}

// StandaloneWeights scores a single entry without corpus context.
var StandaloneWeights = Weights{
	Completeness: 0.30,
	Freshness:    0.20,
	Usage:        0.25,
	Reliability:  0.25,
}

// CorpusWeights folds uniqueness in when a full snapshot is available.
var CorpusWeights = Weights{
	Completeness: 0.25,
	Freshness:    0.15,
	Usage:        0.20,
	Reliability:  0.20,
	Uniqueness:   0.20,
}

// Validate rejects negative weights and tables that do not sum to 1.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Completeness, w.Freshness, w.Usage, w.Reliability, w.Uniqueness} {
		if v < 0 {
			return fmt.Errorf("%w: negative weight %v", ErrInvalidWeights, v)
		}
	}
	sum := w.Completeness + w.Freshness + w.Usage + w.Reliability + w.Uniqueness
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("%w: weights sum to %v, want 1", ErrInvalidWeights, sum)
	}
	return nil
}

// Subscores holds the per-factor breakdown, each in [0,100]. Uniqueness is -1
// when not computed (standalone scoring without a corpus).
type Subscores struct {
	Completeness float64 `json:"completeness"`
	Freshness    float64 `json:"freshness"`
	Usage        float64 `json:"usage"`
	Reliability  float64 `json:"reliability"`
	Uniqueness   float64 `json:"uniqueness"`
}

// Score is one entry's scoring result.
type Score struct {
	Entry     entry.Entry `json:"entry"`
	Subscores Subscores   `json:"subscores"`
	Total     float64     `json:"total"`
	Grade     string      `json:"grade"`
}

// Grade maps a total score to its letter grade.
func Grade(total float64) string {
	switch {
	case total >= 80:
		return "A"
	case total >= 65:
		return "B"
	case total >= 50:
		return "C"
	case total >= 35:
		return "D"
	default:
		return "F"
	}
}

// reliabilityTable maps entry statuses to fixed reliability scores.
var reliabilityTable = map[entry.Status]float64{
	entry.StatusTested:       90,
	entry.StatusVerified:     90,
	entry.StatusActive:       70,
	entry.StatusReviewed:     70,
	entry.StatusExperimental: 50,
	entry.StatusDraft:        40,
	entry.StatusArchived:     20,
	entry.StatusDeprecated:   10,
}

// Completeness scores presence of content (+40), context (+30), tags (+20),
// and substantial content length (+10).
func Completeness(e *entry.Entry) float64 {
	var score float64
	if e.Content != "" {
		score += 40
	}
	if e.Context != "" {
		score += 30
	}
	if len(e.Tags) > 0 {
		score += 20
	}
	if len(e.Content) > 50 {
		score += 10
	}
	return score
}

// Freshness buckets the entry's age at the given reference time. An entry
// with no date at all scores the neutral 50.
func Freshness(e *entry.Entry, now time.Time) float64 {
	ts := e.Freshness()
	if ts.IsZero() {
		return 50
	}
	age := now.Sub(ts)
	switch {
	case age < 7*24*time.Hour:
		return 100
	case age < 30*24*time.Hour:
		return 80
	case age < 90*24*time.Hour:
		return 60
	case age < 365*24*time.Hour:
		return 40
	default:
		return 20
	}
}

// Usage buckets the entry's usage count.
func Usage(e *entry.Entry) float64 {
	switch {
	case e.UsageCount >= 10:
		return 100
	case e.UsageCount >= 5:
		return 80
	case e.UsageCount >= 2:
		return 60
	case e.UsageCount >= 1:
		return 40
	default:
		return 20
	}
}

// Reliability looks the status up in the fixed table; unknown or missing
// statuses score the neutral 50.
func Reliability(status entry.Status) float64 {
	if score, ok := reliabilityTable[status]; ok {
		return score
	}
	return 50
}

// Scorer computes quality scores. The zero value is not usable; construct
// with NewScorer.
type Scorer struct {
	standalone Weights
	corpus     Weights
	now        func() time.Time
	progress   func(done, total int)
}

// NewScorer returns a Scorer with the fixed default weight tables.
func NewScorer() *Scorer {
	s, _ := NewScorerWithWeights(StandaloneWeights, CorpusWeights)
	return s
}

// NewScorerWithWeights validates the supplied weight tables eagerly, before
// any corpus work begins.
func NewScorerWithWeights(standalone, corpus Weights) (*Scorer, error) {
	if err := standalone.Validate(); err != nil {
		return nil, fmt.Errorf("standalone weights: %w", err)
	}
	if err := corpus.Validate(); err != nil {
		return nil, fmt.Errorf("corpus weights: %w", err)
	}
	return &Scorer{
		standalone: standalone,
		corpus:     corpus,
		now:        time.Now,
	}, nil
}

// SetNow overrides the reference time used for freshness scoring.
func (s *Scorer) SetNow(now func() time.Time) { s.now = now }

// SetProgress installs a callback invoked once per scored entry during
// corpus passes.
func (s *Scorer) SetProgress(fn func(done, total int)) { s.progress = fn }

// Score computes a standalone score for one entry, without corpus uniqueness.
func (s *Scorer) Score(e entry.Entry) Score {
	sub := Subscores{
		Completeness: Completeness(&e),
		Freshness:    Freshness(&e, s.now()),
		Usage:        Usage(&e),
		Reliability:  Reliability(e.Status),
		Uniqueness:   -1,
	}
	w := s.standalone
	total := w.Completeness*sub.Completeness +
		w.Freshness*sub.Freshness +
		w.Usage*sub.Usage +
		w.Reliability*sub.Reliability
	return Score{Entry: e, Subscores: sub, Total: total, Grade: Grade(total)}
}

// ScoreAll scores every entry against the full snapshot, folding uniqueness
// in. Pairwise similarities are memoized across the pass, so the O(n²)
// comparison work happens once. Results are sorted descending by total;
// equal totals preserve corpus order.
func (s *Scorer) ScoreAll(entries []entry.Entry) []Score {
	cache := dupes.NewPairCache(entries)
	now := s.now()

	scores := make([]Score, len(entries))
	for i, e := range entries {
		if s.progress != nil {
			s.progress(i+1, len(entries))
		}
		sub := Subscores{
			Completeness: Completeness(&e),
			Freshness:    Freshness(&e, now),
			Usage:        Usage(&e),
			Reliability:  Reliability(e.Status),
			Uniqueness:   (1 - cache.MaxSimilarity(i)) * 100,
		}
		w := s.corpus
		total := w.Completeness*sub.Completeness +
			w.Freshness*sub.Freshness +
			w.Usage*sub.Usage +
			w.Reliability*sub.Reliability +
			w.Uniqueness*sub.Uniqueness
		scores[i] = Score{Entry: e, Subscores: sub, Total: total, Grade: Grade(total)}
	}

	sortScoresDesc(scores)
	return scores
}

// Totals maps entry IDs to their corpus-aware totals. Callers that arbitrate
// between entries (dedupe keeps the higher-scoring duplicate) look totals up
// by ID instead of re-scoring per comparison.
func (s *Scorer) Totals(entries []entry.Entry) map[string]float64 {
	totals := make(map[string]float64, len(entries))
	for _, sc := range s.ScoreAll(entries) {
		totals[sc.Entry.ID] = sc.Total
	}
	return totals
}
