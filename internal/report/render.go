package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/accrava/dartvet/internal/engine"
	"github.com/accrava/dartvet/internal/types"
)

// displayCap bounds how many findings print per severity group. Render
// policy only: every finding still counts toward the summary and the exit
// decision.
const displayCap = 5

var severityOrder = []types.Severity{types.SevHigh, types.SevMed, types.SevLow}

var sevStyles = map[types.Severity]lipgloss.Style{
	types.SevHigh: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	types.SevMed:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	types.SevLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

type PrintOptions struct {
	NoColor bool
}

// Print renders the session report: summary, severity groups in detection
// order, then the static recommendations block.
func Print(w io.Writer, s *engine.Session, opts PrintOptions) {
	fmt.Fprintf(w, "Files scanned: %d\n", len(s.FilesExamined))
	fmt.Fprintf(w, "Lines scanned: %d (%d code)\n", s.TotalLines, s.CodeLines)
	for _, re := range s.ReadErrors {
		fmt.Fprintf(w, "warning: could not read %s: %v\n", re.Path, re.Err)
	}
	fmt.Fprintf(w, "Findings: %d\n", len(s.Findings))
	if len(s.Findings) == 0 {
		fmt.Fprintln(w, "No issues found ✅")
		return
	}
	fmt.Fprintln(w)

	for _, sev := range severityOrder {
		var group []types.Finding
		for _, f := range s.Findings {
			if f.Severity == sev {
				group = append(group, f)
			}
		}
		if len(group) == 0 {
			continue
		}
		label := strings.ToUpper(string(sev))
		if !opts.NoColor {
			label = sevStyles[sev].Render(label)
		}
		fmt.Fprintf(w, "%s (%d):\n", label, len(group))
		shown := group
		if len(shown) > displayCap {
			shown = shown[:displayCap]
		}
		for i, f := range shown {
			fmt.Fprintf(w, "  %d. [%s] %s:%d\n", i+1, f.Category, f.Path, f.Line)
			fmt.Fprintf(w, "     %s\n", f.Message)
			fmt.Fprintf(w, "     > %s\n", f.Snippet)
		}
		if rest := len(group) - len(shown); rest > 0 {
			fmt.Fprintf(w, "  ... and %d more\n", rest)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Recommendations:")
	fmt.Fprintln(w, "  - await every Future, or mark it unawaited() on purpose")
	fmt.Fprintln(w, "  - wrap async bodies in try/catch")
	fmt.Fprintln(w, "  - replace force unwraps (!) with null checks or ?. chains")
	fmt.Fprintln(w, "  - initialize late fields where they are declared")
}
