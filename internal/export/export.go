// Package export renders the knowledge vault to a static HTML page. Entry
// content is treated as markdown; fenced code blocks in snippets get syntax
// highlighting.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/DansiDanutz/MyWork-AI-sub002/internal/entry"
)

// Exporter writes the vault as a browsable HTML knowledge base.
type Exporter struct {
	OutputDir string
	Title     string
}

// NewExporter creates an Exporter writing into outputDir.
func NewExporter(outputDir, title string) *Exporter {
	return &Exporter{OutputDir: outputDir, Title: title}
}

// section groups rendered entries of one type.
type section struct {
	Type    entry.Type
	Entries []renderedEntry
}

type renderedEntry struct {
	Entry   entry.Entry
	Content template.HTML
	Context template.HTML
}

// Export renders all entries to index.html under OutputDir and returns the
// written path.
func (x *Exporter) Export(entries []entry.Entry) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	byType := make(map[entry.Type][]renderedEntry)
	for _, e := range entries {
		var content, context bytes.Buffer
		if err := md.Convert([]byte(e.Content), &content); err != nil {
			return "", fmt.Errorf("rendering entry %s: %w", e.ID, err)
		}
		if e.Context != "" {
			if err := md.Convert([]byte(e.Context), &context); err != nil {
				return "", fmt.Errorf("rendering entry %s context: %w", e.ID, err)
			}
		}
		byType[e.Type] = append(byType[e.Type], renderedEntry{
			Entry:   e,
			Content: template.HTML(content.String()),
			Context: template.HTML(context.String()),
		})
	}

	var sections []section
	for typ, list := range byType {
		sections = append(sections, section{Type: typ, Entries: list})
	}
	sort.Slice(sections, func(a, b int) bool {
		return sections[a].Type < sections[b].Type
	})

	tmpl, err := template.New("vault").Parse(pageTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing export template: %w", err)
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, map[string]any{
		"Title":       x.Title,
		"Sections":    sections,
		"Total":       len(entries),
		"GeneratedAt": time.Now().Format("2006-01-02 15:04"),
	}); err != nil {
		return "", fmt.Errorf("executing export template: %w", err)
	}

	if err := os.MkdirAll(x.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(x.OutputDir, "index.html")
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}
