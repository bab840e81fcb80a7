package logcheck

import (
	"fmt"
	"io"
	"strings"
)

const (
	itemCap  = 10
	perfCap  = 5
	traceCap = 3
)

var rule = strings.Repeat("-", 60)
var bar = strings.Repeat("=", 60)

// Print renders the log analysis report. Sections are capped for display;
// the counts block stays complete.
func Print(w io.Writer, r *Report) {
	fmt.Fprintf(w, "\n%s\nFLUTTER LOG ANALYSIS\n%s\n\n", bar, bar)

	errs := r.ByKind(KindError)
	warns := r.ByKind(KindWarning)
	secs := r.ByKind(KindSecurity)
	perfs := r.ByKind(KindPerformance)

	fmt.Fprintf(w, "Lines analyzed: %d\n", r.TotalLines)
	fmt.Fprintf(w, "Issues found:   %d\n", len(r.Issues))
	fmt.Fprintf(w, "  errors: %d  warnings: %d  security: %d  performance: %d\n\n",
		len(errs), len(warns), len(secs), len(perfs))

	if len(r.Counts) > 0 {
		fmt.Fprintf(w, "PATTERNS:\n%s\n", rule)
		for _, c := range r.SortedCounts() {
			fmt.Fprintf(w, "  %s: %d occurrence(s)\n", c.Name, c.Count)
		}
		fmt.Fprintln(w)
	}

	section(w, "ERRORS", errs, itemCap)
	section(w, "WARNINGS", warns, itemCap)
	section(w, "SECURITY", secs, itemCap)
	section(w, "PERFORMANCE", perfs, perfCap)

	if len(r.StackTraces) > 0 {
		fmt.Fprintf(w, "STACK TRACES:\n%s\n", rule)
		shown := r.StackTraces
		if len(shown) > traceCap {
			shown = shown[:traceCap]
		}
		for i, tr := range shown {
			fmt.Fprintf(w, "\nTrace %d:\n%s\n", i+1, clip(tr, 500))
		}
		if rest := len(r.StackTraces) - len(shown); rest > 0 {
			fmt.Fprintf(w, "\n... and %d more stack traces\n", rest)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s\nRECOMMENDATIONS:\n%s\n", bar, rule)
	if len(errs) > 0 {
		fmt.Fprintln(w, "  - address the errors above first; they crash sessions")
	}
	if len(secs) > 0 {
		fmt.Fprintln(w, "  - resolve security findings before release")
	}
	if len(perfs) > 0 {
		fmt.Fprintln(w, "  - investigate ANRs and skipped frames on low-end devices")
	}
	fmt.Fprintln(w, "  - run 'flutter doctor -v' to rule out environment drift")
	fmt.Fprintf(w, "%s\n", bar)
}

func section(w io.Writer, title string, issues []Issue, limit int) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n%s\n", title, rule)
	shown := issues
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for i, is := range shown {
		fmt.Fprintf(w, "  %d. [%s] line %d\n     %s\n", i+1, is.Name, is.Num, clip(is.Line, 80))
	}
	if rest := len(issues) - len(shown); rest > 0 {
		fmt.Fprintf(w, "  ... and %d more\n", rest)
	}
	fmt.Fprintln(w)
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
