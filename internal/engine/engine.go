package engine

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/accrava/dartvet/internal/git"
	"github.com/accrava/dartvet/internal/ignore"
	"github.com/accrava/dartvet/internal/rules"
)

type Config struct {
	Path         string // file or directory to scan
	BaseBranch   string // when set, keep only files changed vs this branch
	EnableRules  string // comma-separated rule IDs
	DisableRules string
	Log          *zap.SugaredLogger
}

// Scan resolves the input path, runs every active rule over every line of
// every file, and returns the completed session. A nil error with read
// errors inside the session means the scan finished but skipped files.
func Scan(cfg Config) (*Session, error) {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	ign, _ := ignore.Load(filepath.Join(rootDir(cfg.Path), ".dartvetignore"))
	files, err := Resolve(cfg.Path, ign)
	if err != nil {
		return nil, err
	}

	if cfg.BaseBranch != "" {
		changed, err := git.ChangedFiles(rootDir(cfg.Path), cfg.BaseBranch)
		if err != nil {
			return nil, err
		}
		files = filterChanged(files, changed)
		log.Debugw("restricted to changed files", "base", cfg.BaseBranch, "files", len(files))
	}

	active := rules.Active(cfg.EnableRules, cfg.DisableRules)
	log.Debugw("scanning", "files", len(files), "rules", len(active))

	s := &Session{}
	for _, p := range files {
		data, err := os.ReadFile(p)
		if err != nil {
			log.Warnw("skipping unreadable file", "path", p, "error", err)
			s.ReadErrors = append(s.ReadErrors, ReadError{Path: p, Err: err})
			continue
		}
		s.FilesExamined = append(s.FilesExamined, p)
		lines := splitLines(string(data))
		s.TotalLines += len(lines)
		s.CodeLines += countCode(lines)
		s.Findings = append(s.Findings, rules.Scan(p, lines, active)...)
	}
	return s, nil
}

// rootDir is where .dartvetignore and git commands are anchored: the path
// itself for directories, its parent for single files.
func rootDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func countCode(lines []string) int {
	n := 0
	for _, l := range lines {
		t := strings.TrimSpace(l)
		if t == "" || strings.HasPrefix(t, "//") || strings.HasPrefix(t, "/*") || strings.HasPrefix(t, "*") {
			continue
		}
		n++
	}
	return n
}

// filterChanged keeps resolved files that appear in the changed list.
// Changed paths come back repo-relative, resolved paths are relative to
// the scan root, so matching falls back to a suffix check.
func filterChanged(files, changed []string) []string {
	set := make(map[string]bool, len(changed))
	for _, c := range changed {
		set[filepath.Clean(c)] = true
	}
	var out []string
	for _, f := range files {
		cf := filepath.Clean(f)
		if set[cf] {
			out = append(out, f)
			continue
		}
		for c := range set {
			if strings.HasSuffix(cf, c) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
