package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback during long corpus passes
// (duplicate detection, full-vault scoring).
type Reporter interface {
	Start(label string, total int)
	Update(current int)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive
// terminal, or a CIReporter if the CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// Silent is a no-op Reporter for quiet and JSON output modes.
type Silent struct{}

func (Silent) Start(string, int) {}
func (Silent) Update(int)        {}
func (Silent) Finish()           {}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(label string, total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int) {
	if r.bar != nil {
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	label string
	total int
	last  int
}

func (r *CIReporter) Start(label string, total int) {
	r.label = label
	r.total = total
	fmt.Fprintf(os.Stderr, "%s: %d units\n", label, total)
}

func (r *CIReporter) Update(current int) {
	// Log every 10% to keep CI output readable.
	if r.total == 0 {
		return
	}
	pct := current * 10 / r.total
	if pct > r.last {
		r.last = pct
		fmt.Fprintf(os.Stderr, "%s: %d/%d\n", r.label, current, r.total)
	}
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(os.Stderr, "%s: done\n", r.label)
}
