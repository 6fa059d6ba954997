package staging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hmatsuda/stagesync/internal/git"
	"github.com/hmatsuda/stagesync/internal/store"
	"github.com/stretchr/testify/require"
)

const testRemoteURL = "git@github.com:org/backend.git"

// fixedTime is the clock used by tests that check synthesized branch names.
var fixedTime = time.Unix(1700000000, 0)

func fixedNow() time.Time { return fixedTime }

// testCP returns CommonParams rooted in fresh temp directories.
func testCP(t *testing.T) CommonParams {
	t.Helper()
	return CommonParams{
		WorkRoot:         t.TempDir(),
		StagingRoot:      t.TempDir(),
		Remote:           "origin",
		TempBranchPrefix: "staging-sync",
	}
}

// newTestSvc creates a Service over the given mock with a store in a
// temp directory and a fixed clock.
func newTestSvc(t *testing.T, g *git.ClientMock, cp CommonParams, opts ...Option) *Service {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), ".staging_sync.json"))
	allOpts := []Option{WithCommonParams(cp), WithNow(fixedNow)}
	allOpts = append(allOpts, opts...)
	return NewService(g, st, allOpts...)
}

// fakeRepo creates a directory with a .git marker under root.
func fakeRepo(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	return dir
}

// cleanGit returns a ClientMock for a clean repository on main with the
// shared test remote. Tests override individual funcs as needed.
func cleanGit() *git.ClientMock {
	return &git.ClientMock{
		CurrentBranchFunc:         func(dir string) (string, error) { return "main", nil },
		HasUncommittedChangesFunc: func(dir string) (bool, error) { return false, nil },
		RemoteGetURLFunc:          func(dir, remote string) (string, error) { return testRemoteURL, nil },
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

// seedRecord writes a mapping record into the service's store.
func seedRecord(t *testing.T, svc *Service, name string, rec store.Record) {
	t.Helper()
	m, err := svc.store.Load()
	require.NoError(t, err)
	m.Put(name, rec)
	require.NoError(t, svc.store.Save(m))
}

// loadRecord reads a mapping record back from the service's store.
func loadRecord(t *testing.T, svc *Service, name string) (store.Record, bool) {
	t.Helper()
	m, err := svc.store.Load()
	require.NoError(t, err)
	rec, ok := m.Get(name)
	return rec, ok
}
