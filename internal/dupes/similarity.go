// Package dupes finds near-duplicate knowledge entries by content similarity
// and plans their removal. Comparison cost is O(n²) string matching, an
// acceptable limit for vaults of hundreds to a few thousand entries.
package dupes

import (
	"strings"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
	"github.com/DansiDanutz/MyWork-AI-sub002/internal/index"
)

// normalizeContent canonicalizes content for comparison: whitespace-trimmed
// and lowercased. Equality after normalization is an exact duplicate.
func normalizeContent(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Ratio returns a normalized sequence-similarity ratio in [0,1] between two
// strings: 2·LCS(a,b) / (len(a)+len(b)) over runes. Identical strings score
// 1.0; strings with no common subsequence score 0.
func Ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	ra, rb := []rune(a), []rune(b)

	// LCS length with a rolling row; O(len(a)·len(b)) time, O(min) space.
	if len(rb) < len(ra) {
		ra, rb = rb, ra
	}
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for j := 1; j <= len(rb); j++ {
		for i := 1; i <= len(ra); i++ {
			if ra[i-1] == rb[j-1] {
				curr[i] = prev[i-1] + 1
			} else if prev[i] >= curr[i-1] {
				curr[i] = prev[i]
			} else {
				curr[i] = curr[i-1]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(ra)]
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

// PairCache memoizes pairwise content similarity across one corpus pass so
// duplicate detection and uniqueness scoring never recompute a pair.
type PairCache struct {
	norm []string
	idx  *index.Index
	sims map[[2]int]float64
}

// NewPairCache prepares normalized contents and the token-overlap prefilter
// for the given snapshot.
func NewPairCache(entries []entry.Entry) *PairCache {
	c := &PairCache{
		norm: make([]string, len(entries)),
		idx:  index.Build(entries),
		sims: make(map[[2]int]float64),
	}
	for i, e := range entries {
		c.norm[i] = normalizeContent(e.Content)
	}
	return c
}

// Len returns the snapshot size.
func (c *PairCache) Len() int { return len(c.norm) }

// Exact reports whether entries i and j have identical normalized content.
func (c *PairCache) Exact(i, j int) bool {
	return c.norm[i] != "" && c.norm[i] == c.norm[j]
}

// Similarity returns the memoized similarity for the unordered pair {i,j}.
// An entry with empty content is similar to nothing, and i==j is undefined
// and returns 0 rather than being compared.
func (c *PairCache) Similarity(i, j int) float64 {
	if i == j {
		return 0
	}
	if j < i {
		i, j = j, i
	}
	if c.norm[i] == "" || c.norm[j] == "" {
		return 0
	}

	key := [2]int{i, j}
	if sim, ok := c.sims[key]; ok {
		return sim
	}

	var sim float64
	switch {
	case c.norm[i] == c.norm[j]:
		sim = 1
	case !c.idx.SharesToken(i, j):
		// No indexed token in common: cannot clear any useful threshold,
		// skip the full string comparison.
		sim = 0
	default:
		sim = Ratio(c.norm[i], c.norm[j])
	}

	c.sims[key] = sim
	return sim
}

// MaxSimilarity returns entry i's highest similarity to any other entry,
// or 0 for a singleton corpus.
func (c *PairCache) MaxSimilarity(i int) float64 {
	var max float64
	for j := 0; j < len(c.norm); j++ {
		if j == i {
			continue
		}
		if sim := c.Similarity(i, j); sim > max {
			max = sim
		}
	}
	return max
}
