package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/accrava/dartvet/internal/ignore"
)

// skipDirs are never descended into: generated output and tool caches.
var skipDirs = map[string]bool{
	".dart_tool":   true,
	".git":         true,
	"build":        true,
	"node_modules": true,
}

// Resolve turns the input path into the ordered list of Dart files to
// scan. A single .dart file resolves to itself; a directory is walked
// recursively in lexical order. Anything else is a configuration error.
func Resolve(path string, ign ignore.Matcher) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot scan %s: %w", path, err)
	}
	if !info.IsDir() {
		if !strings.HasSuffix(path, ".dart") {
			return nil, fmt.Errorf("cannot scan %s: not a directory or .dart file", path)
		}
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if skipDirs[name] || (strings.HasPrefix(name, ".") && p != path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(p, ".dart") {
			return nil
		}
		rel, _ := filepath.Rel(path, p)
		if ign.Match(rel) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot scan %s: %w", path, err)
	}
	return files, nil
}
