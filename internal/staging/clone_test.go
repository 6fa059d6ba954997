package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone(t *testing.T) {
	t.Run("creates staging copy and record", func(t *testing.T) {
		cp := testCP(t)
		fakeRepo(t, cp.WorkRoot, "backend")
		g := cleanGit()

		svc := newTestSvc(t, g, cp)
		res, err := svc.Clone(CloneParams{Project: "backend"})
		require.NoError(t, err)

		wantTemp := "staging-sync/backend-main-1700000000"
		assert.Equal(t, "backend", res.StagingName)
		assert.Equal(t, filepath.Join(cp.StagingRoot, "backend"), res.StagingPath)
		assert.Equal(t, "main", res.BaseBranch)
		assert.Equal(t, wantTemp, res.TempBranch)
		assert.False(t, res.Replaced)

		// HEAD pushed to the temporary branch from the source repo
		pushes := g.PushCalls()
		require.Len(t, pushes, 1)
		assert.Equal(t, filepath.Join(cp.WorkRoot, "backend"), pushes[0].Dir)
		assert.Equal(t, "HEAD:refs/heads/"+wantTemp, pushes[0].Refspec)

		// staging repo initialized tracking the temp branch
		require.Len(t, g.InitRepoCalls(), 1)
		assert.Equal(t, res.StagingPath, g.InitRepoCalls()[0].Dir)
		require.Len(t, g.AddRemoteCalls(), 1)
		assert.Equal(t, testRemoteURL, g.AddRemoteCalls()[0].Url)
		require.Len(t, g.CheckoutResetCalls(), 1)
		assert.Equal(t, wantTemp, g.CheckoutResetCalls()[0].Branch)
		assert.Equal(t, "origin/"+wantTemp, g.CheckoutResetCalls()[0].StartPoint)

		rec, ok := loadRecord(t, svc, "backend")
		require.True(t, ok)
		assert.Equal(t, "backend", rec.WorkName)
		assert.Equal(t, filepath.Join(cp.WorkRoot, "backend"), rec.WorkPath)
		assert.Equal(t, "main", rec.BaseBranch)
		assert.Equal(t, wantTemp, rec.LastTempBranch)
		assert.Equal(t, testRemoteURL, rec.Remote)
	})

	t.Run("as-name overrides destination", func(t *testing.T) {
		cp := testCP(t)
		fakeRepo(t, cp.WorkRoot, "backend")
		g := cleanGit()

		svc := newTestSvc(t, g, cp)
		res, err := svc.Clone(CloneParams{Project: "backend", AsName: "backend-review"})
		require.NoError(t, err)
		assert.Equal(t, "backend-review", res.StagingName)
		assert.Equal(t, filepath.Join(cp.StagingRoot, "backend-review"), res.StagingPath)

		_, ok := loadRecord(t, svc, "backend-review")
		assert.True(t, ok)
	})

	t.Run("nested project name uses base name", func(t *testing.T) {
		cp := testCP(t)
		fakeRepo(t, cp.WorkRoot, "apps/backend")
		g := cleanGit()

		svc := newTestSvc(t, g, cp)
		res, err := svc.Clone(CloneParams{Project: "apps/backend"})
		require.NoError(t, err)
		assert.Equal(t, "backend", res.StagingName)

		rec, ok := loadRecord(t, svc, "backend")
		require.True(t, ok)
		assert.Equal(t, "apps/backend", rec.WorkName)
	})

	t.Run("dirty tree fails without mutation", func(t *testing.T) {
		cp := testCP(t)
		fakeRepo(t, cp.WorkRoot, "backend")
		g := cleanGit()
		g.HasUncommittedChangesFunc = func(dir string) (bool, error) { return true, nil }

		svc := newTestSvc(t, g, cp)
		_, err := svc.Clone(CloneParams{Project: "backend"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "uncommitted changes")
		assert.Empty(t, g.PushCalls())
		assert.Empty(t, g.PushUpstreamCalls())
		assert.NoDirExists(t, filepath.Join(cp.StagingRoot, "backend"))
	})

	t.Run("missing project fails", func(t *testing.T) {
		cp := testCP(t)
		svc := newTestSvc(t, cleanGit(), cp)
		_, err := svc.Clone(CloneParams{Project: "ghost"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "does not exist")
	})

	t.Run("project escaping work root fails", func(t *testing.T) {
		cp := testCP(t)
		svc := newTestSvc(t, cleanGit(), cp)
		_, err := svc.Clone(CloneParams{Project: "../outside"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("detached HEAD fails", func(t *testing.T) {
		cp := testCP(t)
		fakeRepo(t, cp.WorkRoot, "backend")
		g := cleanGit()
		g.CurrentBranchFunc = func(dir string) (string, error) { return "HEAD", nil }

		svc := newTestSvc(t, g, cp)
		_, err := svc.Clone(CloneParams{Project: "backend"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "detached HEAD")
	})

	t.Run("missing remote fails", func(t *testing.T) {
		cp := testCP(t)
		fakeRepo(t, cp.WorkRoot, "backend")
		g := cleanGit()
		g.RemoteGetURLFunc = func(dir, remote string) (string, error) {
			return "", fmt.Errorf("no such remote")
		}

		svc := newTestSvc(t, g, cp)
		_, err := svc.Clone(CloneParams{Project: "backend"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "remote named origin")
	})

	t.Run("existing staging directory without force fails untouched", func(t *testing.T) {
		cp := testCP(t)
		fakeRepo(t, cp.WorkRoot, "backend")
		existing := fakeRepo(t, cp.StagingRoot, "backend")
		marker := filepath.Join(existing, "keep.txt")
		require.NoError(t, os.WriteFile(marker, []byte("x"), 0644))

		svc := newTestSvc(t, cleanGit(), cp)
		_, err := svc.Clone(CloneParams{Project: "backend"})

		var existsErr *AlreadyExistsError
		require.ErrorAs(t, err, &existsErr)
		assert.Equal(t, existing, existsErr.Path)
		assert.FileExists(t, marker)
	})

	t.Run("force replaces existing staging directory", func(t *testing.T) {
		cp := testCP(t)
		fakeRepo(t, cp.WorkRoot, "backend")
		existing := fakeRepo(t, cp.StagingRoot, "backend")
		marker := filepath.Join(existing, "stale.txt")
		require.NoError(t, os.WriteFile(marker, []byte("x"), 0644))

		svc := newTestSvc(t, cleanGit(), cp)
		res, err := svc.Clone(CloneParams{Project: "backend", Force: true})
		require.NoError(t, err)
		assert.True(t, res.Replaced)
		assert.NoFileExists(t, marker)
	})

	t.Run("explicit temp branch collision fails", func(t *testing.T) {
		cp := testCP(t)
		fakeRepo(t, cp.WorkRoot, "backend")
		g := cleanGit()
		g.RemoteBranchExistsFunc = func(dir, remote, branch string) (bool, error) { return true, nil }

		svc := newTestSvc(t, g, cp)
		_, err := svc.Clone(CloneParams{Project: "backend", TempBranch: "taken"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "already exists on origin")
	})

	t.Run("pushes branch upstream when missing on remote", func(t *testing.T) {
		cp := testCP(t)
		fakeRepo(t, cp.WorkRoot, "backend")
		g := cleanGit()
		g.RemoteBranchExistsFunc = func(dir, remote, branch string) (bool, error) { return false, nil }

		svc := newTestSvc(t, g, cp)
		_, err := svc.Clone(CloneParams{Project: "backend"})
		require.NoError(t, err)

		ups := g.PushUpstreamCalls()
		require.Len(t, ups, 1)
		assert.Equal(t, "main", ups[0].Branch)
	})
}
