package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

func TestExportWritesIndex(t *testing.T) {
	dir := t.TempDir()
	x := NewExporter(dir, "Team Brain")

	entries := []entry.Entry{
		{ID: "a", Type: entry.TypeLesson, Content: "# Retry loops\n\nAlways cap retries.", Tags: []string{"reliability"}, Status: entry.StatusVerified},
		{ID: "b", Type: entry.TypeSnippet, Content: "```go\nfunc main() {}\n```", Status: entry.StatusDraft},
	}

	path, err := x.Export(entries)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if filepath.Base(path) != "index.html" {
		t.Errorf("Export() path = %q, want index.html", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	html := string(data)

	for _, want := range []string{
		"Team Brain",
		"Retry loops</h1>",
		"reliability",
		"2 entries",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("export missing %q", want)
		}
	}
}

func TestExportMarkdownContext(t *testing.T) {
	dir := t.TempDir()
	x := NewExporter(dir, "Brain")

	entries := []entry.Entry{
		{ID: "a", Type: entry.TypePattern, Content: "Use contexts.", Context: "Learned during the *gateway* rewrite."},
	}

	path, err := x.Export(entries)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(data), "<em>gateway</em>") {
		t.Errorf("context not rendered as markdown")
	}
}

func TestExportEmptyVault(t *testing.T) {
	dir := t.TempDir()
	x := NewExporter(dir, "Brain")

	path, err := x.Export(nil)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(data), "0 entries") {
		t.Errorf("empty export should report 0 entries")
	}
}
