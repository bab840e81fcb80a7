package rules

import (
	"strings"

	"github.com/accrava/dartvet/internal/types"
)

var forceUnwrap = Rule{
	ID:       "force_unwrap",
	Category: CategoryNullSafety,
	Severity: types.SevMed,
	Doc:      "null assertion (!.) without a guard or null-aware access",
	Match: func(l Line) (string, bool) {
		t := l.Trimmed()
		if !strings.Contains(t, "!.") {
			return "", false
		}
		// A guard or a null-aware token on the same line is taken as
		// evidence the author thought about null here.
		if strings.Contains(t, "if (") || strings.Contains(t, "?") {
			return "", false
		}
		return "force unwrap without a null check", true
	},
}

var lateUninitialized = Rule{
	ID:       "late_uninitialized",
	Category: CategoryLateInit,
	Severity: types.SevMed,
	Doc:      "late declaration with no initializer",
	Match: func(l Line) (string, bool) {
		t := l.Trimmed()
		if !strings.HasPrefix(t, "late ") {
			return "", false
		}
		// Initialized declarations and lazy-getter bodies are fine.
		if strings.Contains(t, "=") || strings.Contains(t, "{") {
			return "", false
		}
		return "late variable declared without an initializer", true
	},
}
