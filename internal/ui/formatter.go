package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"wavesplit/internal/domain"
)

// Formatter formats summaries and listings for the terminal
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// SetColor enables or disables colored output globally
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

const (
	rowBorderTop    = "┌────────────┬──────────┬────────────────┐"
	rowBorderMiddle = "├────────────┼──────────┼────────────────┤"
	rowBorderBottom = "└────────────┴──────────┴────────────────┘"
)

// PrintWaveSummary writes a table of waves with their suite counts and
// runtimes, followed by the makespan and how far it is from a perfect split.
func (f *Formatter) PrintWaveSummary(w io.Writer, plan *domain.Plan) {
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintln(w)
	cyan.Fprintf(w, "Wave plan (%s): %d suite(s) from %d report file(s)\n",
		plan.Meta.Strategy, plan.Meta.Suites, plan.Meta.ReportFiles)

	if len(plan.Waves) == 0 {
		color.New(color.FgYellow).Fprintln(w, "No waves were scheduled")
		return
	}

	fmt.Fprintln(w, rowBorderTop)
	fmt.Fprintf(w, "│ %-10s │ %8s │ %14s │\n", "Wave", "Suites", "Runtime (s)")
	fmt.Fprintln(w, rowBorderMiddle)
	for _, wave := range plan.Waves {
		fmt.Fprintf(w, "│ %-10s │ %8d │ ", wave.Label, len(wave.Suites))
		line := fmt.Sprintf("%14.2f", wave.Runtime)
		if wave.Runtime == plan.Meta.Makespan && plan.Meta.Makespan > 0 {
			red.Fprint(w, line)
		} else {
			green.Fprint(w, line)
		}
		fmt.Fprintln(w, " │")
	}
	fmt.Fprintln(w, rowBorderBottom)

	ideal := plan.Meta.TotalRuntime / float64(len(plan.Waves))
	fmt.Fprintf(w, "Makespan: %.2fs | Ideal: %.2fs", plan.Meta.Makespan, ideal)
	if ideal > 0 {
		fmt.Fprintf(w, " | Imbalance: %.1f%%", (plan.Meta.Makespan/ideal-1)*100)
	}
	fmt.Fprintln(w)

	if plan.Meta.FailedFiles > 0 {
		red.Fprintf(w, "✗ %d report file(s) could not be parsed\n", plan.Meta.FailedFiles)
	}
}

// PrintReportList writes the discovered report files as a tree rooted at dir
func (f *Formatter) PrintReportList(w io.Writer, dir string, reports []string) {
	color.New(color.FgGreen).Fprintf(w, "Found %d report file(s):\n", len(reports))

	cyan := color.New(color.FgCyan)
	for i, report := range reports {
		relPath, err := filepath.Rel(dir, report)
		if err != nil {
			relPath = report
		}

		if i == len(reports)-1 {
			cyan.Fprintf(w, "└── %s\n", relPath)
		} else {
			cyan.Fprintf(w, "├── %s\n", relPath)
		}
	}
}

// FormatSuiteLine renders one suite for listings, e.g. "X (5 tests, 100s)"
func FormatSuiteLine(s *domain.SuiteRecord) string {
	var b strings.Builder
	b.WriteString(s.Name)
	fmt.Fprintf(&b, " (%s tests, %ss)", s.Tests, s.RuntimeField())
	return b.String()
}
