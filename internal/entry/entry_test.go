package entry

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"dedupes case-insensitively", []string{"Go", "go", "GO"}, []string{"go"}},
		{"trims and drops empties", []string{" deploy ", "", "  "}, []string{"deploy"}},
		{"sorts", []string{"zsh", "bash", "fish"}, []string{"bash", "fish", "zsh"}},
		{"nil stays nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTags(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHasTag(t *testing.T) {
	e := Entry{Tags: []string{"deploy", "ci"}}

	if !e.HasTag("Deploy") {
		t.Error("expected case-insensitive tag match")
	}
	if e.HasTag("testing") {
		t.Error("unexpected tag match")
	}
}

func TestSearchTextIncludesAllFields(t *testing.T) {
	e := Entry{
		Type:    TypeLesson,
		Content: "always backup",
		Context: "before deploys",
		Tags:    []string{"ops"},
	}

	got := e.SearchText()
	for _, want := range []string{"always backup", "before deploys", "lesson", "ops"} {
		if !strings.Contains(got, want) {
			t.Errorf("SearchText() = %q, missing %q", got, want)
		}
	}
}

func TestFreshnessPrefersUpdatedAt(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	e := Entry{CreatedAt: created, UpdatedAt: updated}
	if got := e.Freshness(); !got.Equal(updated) {
		t.Errorf("Freshness() = %v, want %v", got, updated)
	}

	e.UpdatedAt = time.Time{}
	if got := e.Freshness(); !got.Equal(created) {
		t.Errorf("Freshness() = %v, want %v", got, created)
	}
}

func TestValidTypeAndStatus(t *testing.T) {
	if !ValidType(TypeSnippet) || ValidType(Type("bogus")) {
		t.Error("ValidType misclassified")
	}
	if !ValidStatus(StatusTested) || ValidStatus(Status("bogus")) {
		t.Error("ValidStatus misclassified")
	}
}
