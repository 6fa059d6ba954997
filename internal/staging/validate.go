package staging

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

type nameRule struct {
	check   func(string) bool
	message string
}

var stagingNameRules = []nameRule{
	{func(n string) bool { return n == "" }, "staging name must not be empty"},
	{func(n string) bool { return strings.ContainsAny(n, " \t") }, "staging name contains whitespace"},
	{func(n string) bool {
		return strings.ContainsFunc(n, func(r rune) bool { return r < 0x20 || r == 0x7f })
	}, "staging name contains control character"},
	{func(n string) bool { return strings.Contains(n, "..") }, "staging name contains '..'"},
	{func(n string) bool { return filepath.IsAbs(n) }, "staging name must be relative"},
	{func(n string) bool { return strings.HasPrefix(n, "-") }, "staging name must not start with '-'"},
	{func(n string) bool { return strings.HasSuffix(n, "/") }, "staging name must not end with '/'"},
}

// ValidateStagingName checks that a staging name is safe to resolve under
// the staging root and embed in a branch name.
func ValidateStagingName(name string) error {
	for _, r := range stagingNameRules {
		if r.check(name) {
			return fmt.Errorf("%s", r.message)
		}
	}
	return nil
}

// sanitizeBranchComponent maps a path or branch fragment to characters
// that are safe inside a git branch name. Letters, digits, and [._-]
// pass through; any other rune becomes '-'. An empty result falls back
// to "project".
func sanitizeBranchComponent(component string) string {
	var b strings.Builder
	for _, r := range component {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "project"
	}
	return out
}

// tempBranchName synthesizes a temporary remote branch name encoding the
// staging name, the base branch, and a timestamp for uniqueness across
// repeated runs.
func tempBranchName(prefix, stageRel, branch string, ts time.Time) string {
	return fmt.Sprintf("%s/%s-%s-%d",
		prefix, sanitizeBranchComponent(stageRel), sanitizeBranchComponent(branch), ts.Unix())
}
