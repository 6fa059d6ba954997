package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hmatsuda/stagesync/internal/config"
	"github.com/hmatsuda/stagesync/internal/git"
	"github.com/hmatsuda/stagesync/internal/workspace"
	"github.com/stretchr/testify/require"
)

// newTestDeps builds deps over the given client with fresh temp roots.
func newTestDeps(t *testing.T, g git.Client) *deps {
	t.Helper()
	workRoot := t.TempDir()
	stagingRoot := t.TempDir()
	return &deps{
		git: g,
		cfg: &config.Config{Remote: "origin", TempBranchPrefix: "staging-sync"},
		ws: &workspace.Workspace{
			WorkRoot:    workRoot,
			StagingRoot: stagingRoot,
			StorePath:   filepath.Join(stagingRoot, ".staging_sync.json"),
		},
	}
}

// appWithDeps creates an App that resolves to the given deps.
func appWithDeps(d *deps) *App {
	return &App{
		resolveDeps: func(f globalFlags) (*deps, error) { return d, nil },
	}
}

// appWithDepsError creates an App whose resolveDeps returns an error.
func appWithDepsError(err error) *App {
	return &App{
		resolveDeps: func(f globalFlags) (*deps, error) { return nil, err },
	}
}

// executeCommand runs the CLI command tree with the given args and returns the output.
func executeCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := app.BuildRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// fakeRepo creates a directory with a .git marker under root.
func fakeRepo(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	return dir
}

// cleanGitMock returns a ClientMock for a clean repository on main.
func cleanGitMock() *git.ClientMock {
	return &git.ClientMock{
		CurrentBranchFunc:         func(dir string) (string, error) { return "main", nil },
		HasUncommittedChangesFunc: func(dir string) (bool, error) { return false, nil },
		RemoteGetURLFunc: func(dir, remote string) (string, error) {
			return "git@github.com:org/backend.git", nil
		},
		RemoteBranchExistsFunc: func(dir, remote, branch string) (bool, error) {
			return branch == "main", nil
		},
		BranchExistsFunc:       func(dir, name string) (bool, error) { return name == "main", nil },
		LocalRefExistsFunc:     func(dir, ref string) (bool, error) { return true, nil },
		PushFunc:               func(dir, remote, refspec string) error { return nil },
		PushUpstreamFunc:       func(dir, remote, branch string) error { return nil },
		FetchFunc:              func(dir, remote, branch string) error { return nil },
		CheckoutFunc:           func(dir, branch string) error { return nil },
		CheckoutResetFunc:      func(dir, branch, startPoint string) error { return nil },
		FastForwardFunc:        func(dir, ref string) error { return nil },
		HardResetFunc:          func(dir, ref string) error { return nil },
		DeleteRemoteBranchFunc: func(dir, remote, branch string) error { return nil },
		InitRepoFunc:           func(dir string) error { return nil },
		AddRemoteFunc:          func(dir, name, url string) error { return nil },
	}
}
