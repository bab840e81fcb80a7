package rules

import (
	"regexp"
	"strings"

	"github.com/accrava/dartvet/internal/types"
)

var reReturnThrow = regexp.MustCompile(`^(?:return(?:\s+[^;]*)?|throw\s+[^;]*);$`)

// Single = inside an if condition. The character class before = keeps
// compound operators (==, !=, <=, >=) from matching.
var reAssignInCond = regexp.MustCompile(`if\s*\(\s*[\w.\[\]'"]+\s*=\s*[^=]`)

var reThis = regexp.MustCompile(`\bthis\b`)

var unreachableCode = Rule{
	ID:       "unreachable_code",
	Category: CategoryUnreachable,
	Severity: types.SevMed,
	Doc:      "statement follows a return/throw in the same block",
	Match: func(l Line) (string, bool) {
		t := l.Trimmed()
		if !reReturnThrow.MatchString(t) {
			return "", false
		}
		next, ok := l.NextNonBlank()
		if !ok {
			// return/throw as the last line of the file: nothing left
			// to be unreachable.
			return "", false
		}
		if strings.HasPrefix(next, "}") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "*/") {
			return "", false
		}
		return "code after this return/throw is unreachable", true
	},
}

var referenceEquality = Rule{
	ID:       "reference_equality",
	Category: CategoryLogicError,
	Severity: types.SevMed,
	Doc:      "equality comparison involving 'this'",
	Match: func(l Line) (string, bool) {
		t := l.Trimmed()
		if strings.Contains(t, "==") && reThis.MatchString(t) {
			return "comparing against 'this' checks identity, not value", true
		}
		return "", false
	},
}

var hardcodedCondition = Rule{
	ID:       "hardcoded_condition",
	Category: CategoryLogicError,
	Severity: types.SevHigh,
	Doc:      "if condition is a literal true/false",
	Match: func(l Line) (string, bool) {
		t := l.Trimmed()
		if strings.Contains(t, "if (true") || strings.Contains(t, "if (false") {
			return "condition is hard-coded to a literal boolean", true
		}
		return "", false
	},
}

var assignmentInCondition = Rule{
	ID:       "assignment_in_condition",
	Category: CategoryLogicError,
	Severity: types.SevMed,
	Doc:      "single = inside an if condition",
	Match: func(l Line) (string, bool) {
		if reAssignInCond.MatchString(l.Trimmed()) {
			return "assignment inside condition; did you mean '=='?", true
		}
		return "", false
	},
}
