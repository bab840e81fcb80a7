package ignore

import (
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Matcher holds .dartvetignore patterns (gitignore syntax).
type Matcher struct{ ps []gitignore.Pattern }

// Load reads patterns from path. A missing file yields an empty matcher.
func Load(path string) (Matcher, error) {
	var m Matcher
	data, err := os.ReadFile(path)
	if err != nil {
		return m, nil
	}
	var ps []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, nil))
	}
	m.ps = ps
	return m, nil
}

func (m Matcher) Match(p string) bool {
	for _, pat := range m.ps {
		if pat.Match(strings.Split(p, "/"), false) == gitignore.Exclude {
			return true
		}
	}
	return false
}
