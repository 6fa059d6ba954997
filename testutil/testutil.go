package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RepoBuilder constructs temporary git repositories wired to a shared
// bare remote for testing.
type RepoBuilder struct {
	t        *testing.T
	dir      string
	remote   string
	branches []string
	push     bool
}

// NewRepo creates a RepoBuilder for the given test. The repository is
// placed in a fresh temp directory unless At is called.
func NewRepo(t *testing.T) *RepoBuilder {
	t.Helper()
	return &RepoBuilder{t: t}
}

// At places the repository at dir instead of a generated temp directory.
func (b *RepoBuilder) At(dir string) *RepoBuilder {
	b.dir = dir
	return b
}

// WithRemote sets the origin remote URL.
func (b *RepoBuilder) WithRemote(url string) *RepoBuilder {
	b.remote = url
	return b
}

// WithBranch adds a branch to be created.
func (b *RepoBuilder) WithBranch(name string) *RepoBuilder {
	b.branches = append(b.branches, name)
	return b
}

// PushToRemote makes Build push main (with upstream) to the remote.
func (b *RepoBuilder) PushToRemote() *RepoBuilder {
	b.push = true
	return b
}

// Build creates the repository and returns the root directory path.
func (b *RepoBuilder) Build() string {
	b.t.Helper()

	dir := b.dir
	if dir == "" {
		dir = b.t.TempDir()
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		b.t.Fatal(err)
	}

	Run(b.t, dir, "git", "init", "-b", "main")
	Run(b.t, dir, "git", "config", "user.email", "test@example.com")
	Run(b.t, dir, "git", "config", "user.name", "Test")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		b.t.Fatal(err)
	}
	Run(b.t, dir, "git", "add", ".")
	Run(b.t, dir, "git", "commit", "-m", "initial commit")

	if b.remote != "" {
		Run(b.t, dir, "git", "remote", "add", "origin", b.remote)
		if b.push {
			Run(b.t, dir, "git", "push", "-u", "origin", "main")
		}
	}

	created := make(map[string]bool)
	for _, branch := range b.branches {
		if !created[branch] {
			Run(b.t, dir, "git", "branch", branch)
			created[branch] = true
		}
	}

	return dir
}

// BareRemote creates a bare repository usable as a local remote URL.
func BareRemote(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	Run(t, dir, "git", "init", "--bare")
	return dir
}

// WorkRepo creates a work repository at workRoot/name with an initial
// commit pushed to the given remote. Returns the repository path.
func WorkRepo(t *testing.T, workRoot, name, remote string) string {
	t.Helper()
	return NewRepo(t).
		At(filepath.Join(workRoot, name)).
		WithRemote(remote).
		PushToRemote().
		Build()
}

// Commit writes a file and commits it in dir.
func Commit(t *testing.T, dir, file, content, message string) {
	t.Helper()
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	Run(t, dir, "git", "add", file)
	Run(t, dir, "git", "commit", "-m", message)
}

// RemoteBranches lists the branch names present on a remote repository.
func RemoteBranches(t *testing.T, remote string) []string {
	t.Helper()
	out := Output(t, remote, "git", "ls-remote", "--heads", remote)
	var branches []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		branches = append(branches, strings.TrimPrefix(fields[len(fields)-1], "refs/heads/"))
	}
	return branches
}

// Run executes a command in dir and fails the test on error.
func Run(t *testing.T, dir, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s %v: %s: %v", name, args, out, err)
	}
}

// Output executes a command in dir and returns its combined output,
// failing the test on error.
func Output(t *testing.T, dir, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s %v: %s: %v", name, args, out, err)
	}
	return string(out)
}
