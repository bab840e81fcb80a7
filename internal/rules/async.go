package rules

import (
	"regexp"
	"strings"

	"github.com/accrava/dartvet/internal/types"
)

// Invocation statement whose target name follows Dart async naming
// conventions. Purely name-based; see asyncResultSuppressed for the escape
// hatches.
var reAsyncNamedCall = regexp.MustCompile(`^(?:\w+(?:\.\w+)*\.)?(?:fetch|load|save|delete)\w*\(.*\);$`)

// Chained continuation call ending the statement, e.g. foo().then((_) {...});
var reThenChain = regexp.MustCompile(`\.then\s*\(.*\);$`)

// Call statement with an explicit Future-typed annotation on the same line.
var reFutureTypedCall = regexp.MustCompile(`Future\s*<[^>]*>.*\w+\s*\(.*\)\s*;`)

func asyncResultSuppressed(t string) bool {
	return strings.Contains(t, "await") || strings.Contains(t, "unawaited")
}

var ignoredFuture = Rule{
	ID:       "ignored_future",
	Category: CategoryIgnoredFuture,
	Severity: types.SevHigh,
	Doc:      "async-looking call whose result is neither awaited nor unawaited()",
	Match: func(l Line) (string, bool) {
		t := l.Trimmed()
		if asyncResultSuppressed(t) {
			return "", false
		}
		if reAsyncNamedCall.MatchString(t) || reThenChain.MatchString(t) {
			return "Future result is neither awaited nor wrapped in unawaited()", true
		}
		return "", false
	},
}

var missingErrorHandling = Rule{
	ID:       "missing_error_handling",
	Category: CategoryErrorHandling,
	Severity: types.SevHigh,
	Doc:      "async block opened without try/catch on its signature line",
	Match: func(l Line) (string, bool) {
		t := l.Trimmed()
		if !strings.Contains(t, "async {") {
			return "", false
		}
		if strings.Contains(t, "try") || strings.Contains(t, "catch") {
			return "", false
		}
		return "async block opened without error handling", true
	},
}

var unawaitedFuture = Rule{
	ID:       "unawaited_future",
	Category: CategoryIgnoredFuture,
	Severity: types.SevHigh,
	Doc:      "Future-typed call statement without an await",
	Match: func(l Line) (string, bool) {
		t := l.Trimmed()
		if asyncResultSuppressed(t) {
			return "", false
		}
		if reFutureTypedCall.MatchString(t) {
			return "Future-typed call is not awaited", true
		}
		return "", false
	},
}
