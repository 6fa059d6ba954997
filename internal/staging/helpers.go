package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hmatsuda/stagesync/internal/git"
	"github.com/hmatsuda/stagesync/internal/store"
)

// resolveUnderRoot resolves candidate (absolute or relative to root) and
// ensures the result stays inside root.
func resolveUnderRoot(root, candidate, label string) (string, error) {
	var resolved string
	if filepath.IsAbs(candidate) {
		resolved = filepath.Clean(candidate)
	} else {
		resolved = filepath.Join(root, candidate)
	}
	rel, err := filepath.Rel(root, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &ValidationError{Path: resolved, Reason: fmt.Sprintf("%s is outside of %s", label, root)}
	}
	return resolved, nil
}

// requireGitRepo checks that path exists, is a directory, and contains a
// .git entry.
func requireGitRepo(path, label string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return &ValidationError{Path: path, Reason: fmt.Sprintf("%s does not exist", label)}
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if !info.IsDir() {
		return &ValidationError{Path: path, Reason: fmt.Sprintf("%s is not a directory", label)}
	}
	if _, err := os.Stat(filepath.Join(path, ".git")); os.IsNotExist(err) {
		return &ValidationError{Path: path, Reason: fmt.Sprintf("%s does not look like a git repository (missing .git)", label)}
	}
	return nil
}

// requireClean returns a ValidationError if the working tree at path has
// uncommitted changes, staged or unstaged. A non-empty hint names the
// flag that skips the check.
func (s *Service) requireClean(path, label, hint string) error {
	dirty, err := s.git.HasUncommittedChanges(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", label, err)
	}
	if dirty {
		reason := fmt.Sprintf("%s has uncommitted changes: commit or stash them", label)
		if hint != "" {
			reason += ", or re-run with " + hint
		}
		return &ValidationError{Path: path, Reason: reason}
	}
	return nil
}

// storeRecord builds the mapping record written after clone and sync-back.
func storeRecord(workName, workPath, stagingPath, baseBranch, stagingBranch, remote, lastTemp string) store.Record {
	return store.Record{
		WorkName:       workName,
		WorkPath:       workPath,
		StagingPath:    stagingPath,
		BaseBranch:     baseBranch,
		StagingBranch:  stagingBranch,
		Remote:         remote,
		LastTempBranch: lastTemp,
	}
}

// currentBranch returns the checked-out branch at path, rejecting a
// detached HEAD.
func (s *Service) currentBranch(path, label string) (string, error) {
	branch, err := s.git.CurrentBranch(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s branch: %w", label, err)
	}
	if branch == git.DetachedHead {
		return "", &ValidationError{Path: path, Reason: fmt.Sprintf("%s is in a detached HEAD state: check out a branch first", label)}
	}
	return branch, nil
}
