package git

import (
	"strings"

	"github.com/hmatsuda/stagesync/internal/exec"
)

var _ Client = (*client)(nil)

type client struct {
	exec exec.Executor
}

// NewClient creates a git Client backed by the given Executor.
func NewClient(exec exec.Executor) Client {
	return &client{exec: exec}
}

// run executes git with the given arguments in dir, wrapping any failure
// in a *CommandError.
func (c *client) run(dir string, args ...string) error {
	full := append([]string{"-C", dir}, args...)
	if err := c.exec.Run("git", full...); err != nil {
		return &CommandError{Args: full, ExitCode: exec.ExitCode(err), Err: err}
	}
	return nil
}

// output executes git with the given arguments in dir and returns its
// trimmed stdout, wrapping any failure in a *CommandError.
func (c *client) output(dir string, args ...string) (string, error) {
	full := append([]string{"-C", dir}, args...)
	out, err := c.exec.Output("git", full...)
	if err != nil {
		return "", &CommandError{Args: full, ExitCode: exec.ExitCode(err), Err: err}
	}
	return out, nil
}

func (c *client) CurrentBranch(dir string) (string, error) {
	out, err := c.output(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *client) HasUncommittedChanges(dir string) (bool, error) {
	out, err := c.output(dir, "status", "--porcelain", "--")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

func (c *client) RemoteGetURL(dir, remote string) (string, error) {
	return c.output(dir, "remote", "get-url", remote)
}

func (c *client) BranchExists(dir, name string) (bool, error) {
	out, err := c.output(dir, "branch", "--list", "--", name)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

func (c *client) LocalRefExists(dir, ref string) (bool, error) {
	err := c.run(dir, "rev-parse", "--verify", "--quiet", ref)
	if err == nil {
		return true, nil
	}
	// rev-parse --verify --quiet exits with 1 when the ref is missing.
	if exec.IsExitCode(err, 1) {
		return false, nil
	}
	return false, err
}

func (c *client) RemoteBranchExists(dir, remote, branch string) (bool, error) {
	out, err := c.output(dir, "ls-remote", "--heads", remote, branch)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

func (c *client) Push(dir, remote, refspec string) error {
	return c.run(dir, "push", remote, refspec)
}

func (c *client) PushUpstream(dir, remote, branch string) error {
	return c.run(dir, "push", "-u", remote, branch+":"+branch)
}

func (c *client) Fetch(dir, remote, branch string) error {
	return c.run(dir, "fetch", remote, branch)
}

func (c *client) Checkout(dir, branch string) error {
	return c.run(dir, "checkout", branch)
}

func (c *client) CheckoutReset(dir, branch, startPoint string) error {
	return c.run(dir, "checkout", "-B", branch, startPoint)
}

func (c *client) FastForward(dir, ref string) error {
	return c.run(dir, "merge", "--ff-only", ref)
}

func (c *client) HardReset(dir, ref string) error {
	return c.run(dir, "reset", "--hard", ref)
}

func (c *client) DeleteRemoteBranch(dir, remote, branch string) error {
	return c.run(dir, "push", remote, ":refs/heads/"+branch)
}

func (c *client) InitRepo(dir string) error {
	return c.run(dir, "init")
}

func (c *client) AddRemote(dir, name, url string) error {
	return c.run(dir, "remote", "add", name, url)
}
