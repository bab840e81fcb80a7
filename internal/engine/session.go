package engine

import "github.com/accrava/dartvet/internal/types"

// ReadError records a file that was discovered but could not be read.
// Non-fatal: the scan continues without it.
type ReadError struct {
	Path string
	Err  error
}

// Session is the aggregate state of one scan run. Findings are append-only
// and keep detection order: file order, then line order, then rule order.
type Session struct {
	FilesExamined []string
	TotalLines    int
	CodeLines     int // non-blank, non-comment lines
	Findings      []types.Finding
	ReadErrors    []ReadError
}

// Clean reports a scan with no findings and no read errors.
func (s *Session) Clean() bool {
	return len(s.Findings) == 0 && len(s.ReadErrors) == 0
}
