package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// gitOutput is swapped out in tests.
var gitOutput = func(root string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", append([]string{"-C", root}, args...)...)
	return cmd.Output()
}

// ChangedFiles lists Dart files that differ from base, repo-relative.
// Used to limit a scan to the files a branch actually touched.
func ChangedFiles(root, base string) ([]string, error) {
	out, err := gitOutput(root, "diff", "--name-only", base, "--", "*.dart")
	if err != nil {
		return nil, fmt.Errorf("git diff against %s: %w", base, err)
	}
	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	return files, nil
}
