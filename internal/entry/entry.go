package entry

import (
	"sort"
	"strings"
	"time"
)

// Type classifies what kind of knowledge an entry captures.
type Type string

const (
	TypeLesson        Type = "lesson"
	TypePattern       Type = "pattern"
	TypeAntipattern   Type = "antipattern"
	TypeTip           Type = "tip"
	TypeInsight       Type = "insight"
	TypeExperiment    Type = "experiment"
	TypeSnippet       Type = "snippet"
	TypeTutorial      Type = "tutorial"
	TypeSolution      Type = "solution"
	TypeDocumentation Type = "documentation"
)

// Status describes an entry's lifecycle state. The engine never transitions
// statuses; they are owned by the caller and only consulted for reliability scoring.
type Status string

const (
	StatusDraft        Status = "draft"
	StatusActive       Status = "active"
	StatusTested       Status = "tested"
	StatusVerified     Status = "verified"
	StatusReviewed     Status = "reviewed"
	StatusExperimental Status = "experimental"
	StatusDeprecated   Status = "deprecated"
	StatusArchived     Status = "archived"
)

// validTypes is the set of recognized entry type values.
var validTypes = map[Type]bool{
	TypeLesson: true, TypePattern: true, TypeAntipattern: true,
	TypeTip: true, TypeInsight: true, TypeExperiment: true,
	TypeSnippet: true, TypeTutorial: true, TypeSolution: true,
	TypeDocumentation: true,
}

// validStatuses is the set of recognized status values.
var validStatuses = map[Status]bool{
	StatusDraft: true, StatusActive: true, StatusTested: true,
	StatusVerified: true, StatusReviewed: true, StatusExperimental: true,
	StatusDeprecated: true, StatusArchived: true,
}

// ValidType reports whether t is a recognized entry type.
func ValidType(t Type) bool { return validTypes[t] }

// ValidStatus reports whether s is a recognized status.
func ValidStatus(s Status) bool { return validStatuses[s] }

// Entry is a single knowledge vault record. IDs are unique and stable for the
// entry's lifetime; uniqueness is enforced by the vault, not the engine.
type Entry struct {
	ID             string    `json:"id"`
	Type           Type      `json:"entry_type"`
	Content        string    `json:"content"`
	Context        string    `json:"context,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	Status         Status    `json:"status"`
	UsageCount     int       `json:"usage_count"`
	HelpfulVotes   int       `json:"helpful_votes"`
	UnhelpfulVotes int       `json:"unhelpful_votes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// QualityScore is a cached scorer output, recomputed from the current
	// corpus on every scoring pass. It is never authoritative input.
	QualityScore float64 `json:"quality_score"`
}

// NormalizeTags lowercases, trims, and de-duplicates a tag list, returning the
// result in sorted order. Tag equality throughout the engine is case-insensitive.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// HasTag reports whether the entry carries the given tag, case-insensitively.
func (e *Entry) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range e.Tags {
		if strings.ToLower(t) == tag {
			return true
		}
	}
	return false
}

// SearchText returns the concatenated text an entry is indexed under:
// content, context, entry type, and tags.
func (e *Entry) SearchText() string {
	parts := []string{e.Content, e.Context, string(e.Type)}
	parts = append(parts, e.Tags...)
	return strings.Join(parts, " ")
}

// Freshness returns the timestamp used for age-based scoring: UpdatedAt when
// set, otherwise CreatedAt. The zero time means the entry carries no date.
func (e *Entry) Freshness() time.Time {
	if !e.UpdatedAt.IsZero() {
		return e.UpdatedAt
	}
	return e.CreatedAt
}
