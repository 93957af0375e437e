package index

import (
	"regexp"
	"strings"
)

// tokenRegex matches runs of lowercase ASCII alphanumerics. Non-ASCII letters
// do not form tokens; that is a documented limitation of the vault's search,
// not something this layer papers over.
var tokenRegex = regexp.MustCompile(`[a-z0-9]+`)

// stopWords are common low-information words excluded from indexing.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true,
	"this": true, "that": true, "these": true, "those": true,
	"it": true, "its": true, "as": true, "if": true, "then": true,
	"not": true, "no": true, "so": true, "than": true, "too": true,
	"can": true, "when": true, "where": true, "how": true, "what": true,
}

// Tokenize breaks text into normalized tokens: lowercased, split on anything
// outside [a-z0-9], stopwords removed, single-character tokens dropped.
// The same input always yields the same token sequence.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	raw := tokenRegex.FindAllString(strings.ToLower(text), -1)

	var tokens []string
	for _, tok := range raw {
		if len(tok) <= 1 || stopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
