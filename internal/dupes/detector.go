package dupes

import (
	"errors"
	"fmt"
	"sort"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

// DefaultThreshold is the similarity above which a pair counts as a duplicate.
const DefaultThreshold = 0.8

// ErrInvalidThreshold is returned when a similarity threshold falls outside (0,1].
var ErrInvalidThreshold = errors.New("similarity threshold must be in (0,1]")

// Kind distinguishes how a duplicate pair was matched.
type Kind string

const (
	KindExact Kind = "exact"
	KindFuzzy Kind = "fuzzy"
)

// Pair is one unordered duplicate pair; A always precedes B in corpus order.
type Pair struct {
	A          entry.Entry `json:"a"`
	B          entry.Entry `json:"b"`
	Similarity float64     `json:"similarity"`
	Kind       Kind        `json:"kind"`
}

// Detector finds near-duplicate entries above a configured threshold.
type Detector struct {
	threshold float64
	progress  func(done, total int)
}

// NewDetector validates the threshold eagerly, before any corpus work begins.
func NewDetector(threshold float64) (*Detector, error) {
	if threshold <= 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, threshold)
	}
	return &Detector{threshold: threshold}, nil
}

// SetProgress installs a callback invoked once per compared pair, letting the
// caller surface progress or interrupt between units of work.
func (d *Detector) SetProgress(fn func(done, total int)) {
	d.progress = fn
}

// Find returns every unordered pair {a,b}, a≠b, whose content similarity is
// at least the threshold, sorted descending by similarity. Each pair appears
// exactly once; entries with empty content never pair with anything.
func (d *Detector) Find(entries []entry.Entry) []Pair {
	cache := NewPairCache(entries)
	return d.find(entries, cache)
}

func (d *Detector) find(entries []entry.Entry, cache *PairCache) []Pair {
	n := len(entries)
	total := n * (n - 1) / 2

	var pairs []Pair
	done := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			done++
			if d.progress != nil {
				d.progress(done, total)
			}

			sim := cache.Similarity(i, j)
			if sim < d.threshold {
				continue
			}
			kind := KindFuzzy
			if cache.Exact(i, j) {
				kind = KindExact
			}
			pairs = append(pairs, Pair{
				A:          entries[i],
				B:          entries[j],
				Similarity: sim,
				Kind:       kind,
			})
		}
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Similarity > pairs[b].Similarity
	})
	return pairs
}

// Removal marks one entry of a duplicate pair for deletion.
type Removal struct {
	Keep       entry.Entry `json:"keep"`
	Remove     entry.Entry `json:"remove"`
	Similarity float64     `json:"similarity"`
	Kind       Kind        `json:"kind"`
}

// Plan is the outcome of one dedupe pass. With apply semantics, removing every
// Remove-marked entry leaves a corpus with no surviving pair above threshold,
// so an immediate re-run removes nothing further.
type Plan struct {
	Pairs    []Pair    `json:"pairs"`
	Removals []Removal `json:"removals"`
}

// RemoveIDs returns the IDs of all entries marked for removal.
func (p Plan) RemoveIDs() []string {
	ids := make([]string, 0, len(p.Removals))
	for _, r := range p.Removals {
		ids = append(ids, r.Remove.ID)
	}
	return ids
}

// Dedupe plans duplicate removal over one snapshot. For each duplicate pair
// the lower-scored entry (per the supplied quality score) is marked for
// removal; ties keep the entry seen first in corpus order. Applying the plan
// is the caller's job; passing apply=false to the CLI surfaces the plan only.
func (d *Detector) Dedupe(entries []entry.Entry, score func(entry.Entry) float64) Plan {
	cache := NewPairCache(entries)
	pairs := d.find(entries, cache)

	order := make(map[string]int, len(entries))
	for i, e := range entries {
		order[e.ID] = i
	}

	removed := make(map[string]bool)
	var removals []Removal
	for _, p := range pairs {
		if removed[p.A.ID] || removed[p.B.ID] {
			continue
		}

		keep, remove := p.A, p.B
		sa, sb := score(p.A), score(p.B)
		if sb > sa || (sb == sa && order[p.B.ID] < order[p.A.ID]) {
			keep, remove = p.B, p.A
		}

		removed[remove.ID] = true
		removals = append(removals, Removal{
			Keep:       keep,
			Remove:     remove,
			Similarity: p.Similarity,
			Kind:       p.Kind,
		})
	}

	return Plan{Pairs: pairs, Removals: removals}
}
