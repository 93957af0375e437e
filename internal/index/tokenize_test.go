package index

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases and splits", "Use Async IO", []string{"use", "async", "io"}},
		{"drops stopwords", "the quick fox is in a box", []string{"quick", "fox", "box"}},
		{"drops single chars", "a b c go x2", []string{"go", "x2"}},
		{"keeps digits", "retry 3 times port 8080", []string{"retry", "times", "port", "8080"}},
		{"punctuation is a boundary", "backup-before_deploy!", []string{"backup", "before", "deploy"}},
		{"non-ascii does not form tokens", "naïve café", []string{"na", "ve", "caf"}},
		{"empty", "", nil},
		{"only stopwords", "the a an", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	const text = "Deploy with care: Backup, verify, then deploy again."
	first := Tokenize(text)
	for i := 0; i < 10; i++ {
		if got := Tokenize(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Tokenize = %v, want %v", i, got, first)
		}
	}
}
