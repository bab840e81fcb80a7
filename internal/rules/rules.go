package rules

import (
	"strings"

	"github.com/accrava/dartvet/internal/types"
)

// Categories form a closed set; the report groups on severity but prints
// the category label per finding.
const (
	CategoryIgnoredFuture = "Ignored Future"
	CategoryUnreachable   = "Unreachable Code"
	CategoryErrorHandling = "Error Handling"
	CategoryLogicError    = "Logic Error"
	CategoryNullSafety    = "Null Safety Issue"
	CategoryLateInit      = "Late Initialization"
)

// Line is what a rule sees: the current line plus enough file context for
// the lookahead rules. Rules never see findings from other rules.
type Line struct {
	Text  string   // raw line text
	Index int      // 0-based position in File
	File  []string // every line of the file
}

func (l Line) Trimmed() string { return strings.TrimSpace(l.Text) }

// NextNonBlank returns the first non-blank line after this one.
// ok is false at end of file.
func (l Line) NextNonBlank() (string, bool) {
	for i := l.Index + 1; i < len(l.File); i++ {
		if t := strings.TrimSpace(l.File[i]); t != "" {
			return t, true
		}
	}
	return "", false
}

// Rule is an independent line-local check. Match returns the finding
// message when the line violates the rule.
type Rule struct {
	ID       string
	Category string
	Severity types.Severity
	Doc      string
	Match    func(l Line) (string, bool)
}

// all fixes evaluation order, which in turn fixes within-line finding
// order in the report.
var all = []Rule{
	ignoredFuture,
	unreachableCode,
	missingErrorHandling,
	unawaitedFuture,
	referenceEquality,
	forceUnwrap,
	lateUninitialized,
	hardcodedCondition,
	assignmentInCondition,
}

// All returns the registry in evaluation order.
func All() []Rule {
	out := make([]Rule, len(all))
	copy(out, all)
	return out
}

// IDs returns every rule ID in evaluation order.
func IDs() []string {
	ids := make([]string, 0, len(all))
	for _, r := range all {
		ids = append(ids, r.ID)
	}
	return ids
}

// Active applies comma-separated enable/disable ID lists. An enable list
// wins over a disable list; unknown IDs are ignored.
func Active(enable, disable string) []Rule {
	if enable != "" {
		want := idSet(enable)
		var out []Rule
		for _, r := range all {
			if want[r.ID] {
				out = append(out, r)
			}
		}
		return out
	}
	if disable != "" {
		drop := idSet(disable)
		var out []Rule
		for _, r := range all {
			if !drop[r.ID] {
				out = append(out, r)
			}
		}
		return out
	}
	return All()
}

func idSet(csv string) map[string]bool {
	set := map[string]bool{}
	for _, id := range strings.Split(csv, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = true
		}
	}
	return set
}

// Scan applies every rule to every line of one file. Findings come back in
// line order, then rule order within a line.
func Scan(path string, lines []string, active []Rule) []types.Finding {
	var out []types.Finding
	for i, raw := range lines {
		ln := Line{Text: raw, Index: i, File: lines}
		for _, r := range active {
			msg, ok := r.Match(ln)
			if !ok {
				continue
			}
			out = append(out, types.Finding{
				Path:     path,
				Line:     i + 1,
				Rule:     r.ID,
				Category: r.Category,
				Severity: r.Severity,
				Message:  msg,
				Snippet:  ln.Trimmed(),
			})
		}
	}
	return out
}
