package logcheck

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strings"
)

// Kind buckets a matched log line for the report.
type Kind string

const (
	KindError       Kind = "error"
	KindWarning     Kind = "warning"
	KindSecurity    Kind = "security"
	KindPerformance Kind = "performance"
)

// Pattern pairs a case-insensitive regex with the label it reports under.
type Pattern struct {
	Name string
	Kind Kind
	Re   *regexp.Regexp
}

func pat(kind Kind, name, expr string) Pattern {
	return Pattern{Name: name, Kind: kind, Re: regexp.MustCompile(`(?i)` + expr)}
}

// patterns is the fixed rule table for Flutter/Android runtime logs.
var patterns = []Pattern{
	pat(KindError, "Null Pointer Exception", `NullPointerException|null pointer`),
	pat(KindError, "No Such Method Error", `NoSuchMethodError`),
	pat(KindError, "Type Cast Error", `ClassCastException`),
	pat(KindError, "Out of Memory", `OutOfMemoryError`),
	pat(KindError, "Stack Overflow", `StackOverflowError`),
	pat(KindError, "File I/O Error", `IOException|File not found`),
	pat(KindError, "Network Error", `NetworkError|Connection refused`),
	pat(KindError, "Timeout Error", `TimeoutException`),
	pat(KindError, "Format/JSON Parse Error", `FormatException|JSON parsing`),
	pat(KindError, "State Error", `StateError|Invalid state`),
	pat(KindError, "Async/Future Error", `(uncaught|unhandled).*(future|async|await)|future.*failed|MissingPluginException|stream.*closed`),
	pat(KindWarning, "Null Safety Issue", `null safety|nullable type|Unhandled Exception.*null`),
	pat(KindSecurity, "Credential Storage", `(password|secret|token|api.?key).*(stored|saved|hardcoded)`),
	pat(KindSecurity, "SSL Verification Disabled", `(ssl|certificate|tls).*verification.*(disabled|false)`),
	pat(KindSecurity, "Debug Enabled in Production", `debug.*(enabled|true).*production`),
	pat(KindSecurity, "Password in Logs", `log.*password|password.*log`),
	pat(KindPerformance, "Skipped Frames", `skipped \d+ frames|Choreographer`),
	pat(KindPerformance, "ANR", `ANR |not responding`),
	pat(KindPerformance, "Memory Pressure", `memory leak|high memory|GC overhead`),
	pat(KindPerformance, "Slow Operation", `slow (operation|query|frame)`),
}

// Dart and JVM stack-frame shapes.
var reFrame = regexp.MustCompile(`^\s*(at\s|#\d+\s)`)

// Issue is one pattern match on one log line.
type Issue struct {
	Kind Kind
	Name string
	Line string // trimmed matching line
	Num  int    // 1-based line number
}

// Report aggregates one analysis pass over a log stream.
type Report struct {
	Issues      []Issue
	Counts      map[string]int // occurrences per pattern name
	StackTraces []string
	TotalLines  int
}

// Failed reports whether the log warrants a non-zero exit: any error or
// security issue.
func (r *Report) Failed() bool {
	for _, i := range r.Issues {
		if i.Kind == KindError || i.Kind == KindSecurity {
			return true
		}
	}
	return false
}

// ByKind filters issues in detection order.
func (r *Report) ByKind(k Kind) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Kind == k {
			out = append(out, i)
		}
	}
	return out
}

// PatternCount is one row of the patterns table.
type PatternCount struct {
	Name  string
	Count int
}

// SortedCounts returns pattern tallies, most frequent first, name as
// tiebreak so output is deterministic.
func (r *Report) SortedCounts() []PatternCount {
	out := make([]PatternCount, 0, len(r.Counts))
	for name, n := range r.Counts {
		out = append(out, PatternCount{name, n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Analyze reads the whole log and applies every pattern to every line.
// Consecutive stack-frame lines collapse into one captured trace.
func Analyze(r io.Reader) (*Report, error) {
	rep := &Report{Counts: map[string]int{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var trace []string
	flush := func() {
		if len(trace) > 1 {
			rep.StackTraces = append(rep.StackTraces, strings.Join(trace, "\n"))
		}
		trace = nil
	}

	num := 0
	for sc.Scan() {
		num++
		rep.TotalLines++
		line := sc.Text()
		t := strings.TrimSpace(line)
		if t == "" {
			flush()
			continue
		}
		if reFrame.MatchString(line) {
			trace = append(trace, line)
		} else {
			flush()
		}
		for _, p := range patterns {
			if p.Re.MatchString(t) {
				rep.Issues = append(rep.Issues, Issue{Kind: p.Kind, Name: p.Name, Line: t, Num: num})
				rep.Counts[p.Name]++
			}
		}
	}
	flush()
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rep, nil
}
