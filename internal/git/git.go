package git

import (
	"fmt"
	"strings"
)

//go:generate moq -out git_mock.go . Client

// StatusReader abstracts read-only repository state checks.
type StatusReader interface {
	CurrentBranch(dir string) (string, error)
	HasUncommittedChanges(dir string) (bool, error)
	RemoteGetURL(dir, remote string) (string, error)
}

// BranchReader abstracts read-only branch lookups.
type BranchReader interface {
	BranchExists(dir, name string) (bool, error)
	LocalRefExists(dir, ref string) (bool, error)
	RemoteBranchExists(dir, remote, branch string) (bool, error)
}

// Syncer abstracts the branch-transfer operations between repositories
// sharing a remote.
type Syncer interface {
	Push(dir, remote, refspec string) error
	PushUpstream(dir, remote, branch string) error
	Fetch(dir, remote, branch string) error
	Checkout(dir, branch string) error
	CheckoutReset(dir, branch, startPoint string) error
	FastForward(dir, ref string) error
	HardReset(dir, ref string) error
	DeleteRemoteBranch(dir, remote, branch string) error
}

// Initializer abstracts repository creation for staging copies.
type Initializer interface {
	InitRepo(dir string) error
	AddRemote(dir, name, url string) error
}

// Client abstracts git operations for testing.
type Client interface {
	StatusReader
	BranchReader
	Syncer
	Initializer
}

// DetachedHead is the value CurrentBranch returns when the repository is
// in a detached HEAD state.
const DetachedHead = "HEAD"

// CommandError reports a git invocation that exited non-zero.
type CommandError struct {
	// Args are the git arguments, including the leading -C <dir>.
	Args []string
	// ExitCode is the subprocess exit code, or -1 if the process did not run.
	ExitCode int
	// Err wraps the underlying error; its message carries the trimmed stderr.
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }
