// Package index builds TF-IDF term vectors over a knowledge vault snapshot and
// ranks entries against queries by cosine similarity. An Index is an immutable
// value constructed from an entry list; any change to the underlying entries
// requires a full rebuild.
package index

import (
	"math"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

// Vector is a sparse token -> weight map.
type Vector map[string]float64

// Norm returns the L2 norm of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// docVector pairs an entry's weight vector with its cached L2 norm so cosine
// computations never re-walk the map.
type docVector struct {
	vec  Vector
	norm float64
}

// Index holds TF-IDF vectors for one corpus snapshot.
type Index struct {
	entries []entry.Entry
	docs    []docVector
	df      map[string]int // document frequency per token
	tokens  []map[string]bool
}

// Build constructs an Index from an entry snapshot. An empty corpus yields an
// empty index; entries whose text produces no tokens get a zero vector and
// simply match nothing.
func Build(entries []entry.Entry) *Index {
	idx := &Index{
		entries: entries,
		docs:    make([]docVector, len(entries)),
		df:      make(map[string]int),
		tokens:  make([]map[string]bool, len(entries)),
	}

	counts := make([]map[string]int, len(entries))
	for i, e := range entries {
		counts[i] = termCounts(Tokenize(e.SearchText()))
		idx.tokens[i] = make(map[string]bool, len(counts[i]))
		for tok := range counts[i] {
			idx.df[tok]++
			idx.tokens[i][tok] = true
		}
	}

	for i := range entries {
		vec := make(Vector, len(counts[i]))
		for tok, count := range counts[i] {
			vec[tok] = logTF(count) * idx.IDF(tok)
		}
		idx.docs[i] = docVector{vec: vec, norm: vec.Norm()}
	}

	return idx
}

// Len returns the number of entries in the indexed snapshot.
func (idx *Index) Len() int { return len(idx.entries) }

// Entry returns the i-th entry of the snapshot, in corpus order.
func (idx *Index) Entry(i int) entry.Entry { return idx.entries[i] }

// IDF returns the smoothed inverse document frequency for a token:
// log(N/(1+df)) + 1. The +1 smoothing keeps the value finite for any corpus
// size, including N=0 and tokens seen in no document.
func (idx *Index) IDF(token string) float64 {
	n := float64(len(idx.entries))
	if n == 0 {
		return 0
	}
	return math.Log(n/(1+float64(idx.df[token]))) + 1
}

// Vector returns the i-th entry's weight vector. Callers must not mutate it.
func (idx *Index) Vector(i int) Vector { return idx.docs[i].vec }

// QueryVector computes the TF-IDF vector for a query against the corpus IDF
// table. A query with no surviving tokens yields a nil vector.
func (idx *Index) QueryVector(query string) Vector {
	counts := termCounts(Tokenize(query))
	if len(counts) == 0 {
		return nil
	}
	vec := make(Vector, len(counts))
	for tok, count := range counts {
		vec[tok] = logTF(count) * idx.IDF(tok)
	}
	return vec
}

// SharesToken reports whether two indexed entries have at least one token in
// common. Used as a cheap prefilter before full string-similarity comparison.
func (idx *Index) SharesToken(i, j int) bool {
	a, b := idx.tokens[i], idx.tokens[j]
	if len(b) < len(a) {
		a, b = b, a
	}
	for tok := range a {
		if b[tok] {
			return true
		}
	}
	return false
}

// Cosine returns the cosine similarity between a query vector and the i-th
// document vector: dot/(|q|·|d|), or 0 when either vector has zero norm.
func (idx *Index) Cosine(q Vector, i int) float64 {
	doc := idx.docs[i]
	qn := q.Norm()
	if qn == 0 || doc.norm == 0 {
		return 0
	}

	small, large := q, doc.vec
	if len(large) < len(small) {
		small, large = large, small
	}
	var dot float64
	for tok, w := range small {
		dot += w * large[tok]
	}
	return dot / (qn * doc.norm)
}

// logTF is the log-normalized term frequency: 1 + log(count) for count > 0.
func logTF(count int) float64 {
	return 1 + math.Log(float64(count))
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}
