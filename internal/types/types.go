package types

type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// Finding is one rule match on one line. Immutable after creation.
type Finding struct {
	Path     string   `json:"path"`
	Line     int      `json:"line"` // 1-based
	Rule     string   `json:"rule"`
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Snippet  string   `json:"snippet"` // offending line, whitespace-trimmed
}
