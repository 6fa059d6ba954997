package staging

import (
	"fmt"
	"testing"

	"github.com/hmatsuda/stagesync/internal/git"
	"github.com/hmatsuda/stagesync/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedBackend creates staging and work repos plus a mapping record, and
// returns the configured service with its mock.
func seedBackend(t *testing.T, cp CommonParams, g *git.ClientMock) (*Service, string, string) {
	t.Helper()
	stagePath := fakeRepo(t, cp.StagingRoot, "backend")
	workPath := fakeRepo(t, cp.WorkRoot, "backend")
	svc := newTestSvc(t, g, cp)
	seedRecord(t, svc, "backend", store.Record{
		WorkName:       "backend",
		WorkPath:       workPath,
		StagingPath:    stagePath,
		BaseBranch:     "main",
		Remote:         testRemoteURL,
		LastTempBranch: "staging-sync/backend-main-1690000000",
	})
	return svc, stagePath, workPath
}

func TestSyncBack(t *testing.T) {
	t.Run("fast-forwards work branch and updates record", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		svc, stagePath, workPath := seedBackend(t, cp, g)

		res, err := svc.SyncBack(SyncBackParams{StagingName: "backend"})
		require.NoError(t, err)

		recordedTemp := "staging-sync/backend-main-1690000000"
		assert.Equal(t, "main", res.TargetBranch)
		assert.Equal(t, recordedTemp, res.TempBranch)
		assert.False(t, res.HardReset)
		assert.True(t, res.TempBranchDeleted)

		pushes := g.PushCalls()
		require.Len(t, pushes, 2)
		assert.Equal(t, stagePath, pushes[0].Dir)
		assert.Equal(t, "HEAD:refs/heads/"+recordedTemp, pushes[0].Refspec)
		assert.Equal(t, workPath, pushes[1].Dir)
		assert.Equal(t, "main", pushes[1].Refspec)

		ffs := g.FastForwardCalls()
		require.Len(t, ffs, 1)
		assert.Equal(t, "origin/"+recordedTemp, ffs[0].Ref)
		assert.Empty(t, g.HardResetCalls())

		dels := g.DeleteRemoteBranchCalls()
		require.Len(t, dels, 1)
		assert.Equal(t, workPath, dels[0].Dir)
		assert.Equal(t, recordedTemp, dels[0].Branch)

		rec, ok := loadRecord(t, svc, "backend")
		require.True(t, ok)
		assert.Equal(t, "main", rec.BaseBranch)
		assert.Equal(t, recordedTemp, rec.LastTempBranch)
	})

	t.Run("diverged branch fails with NonFastForwardError and still cleans up", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		g.FastForwardFunc = func(dir, ref string) error {
			return fmt.Errorf("fatal: not possible to fast-forward, aborting")
		}
		svc, _, _ := seedBackend(t, cp, g)

		_, err := svc.SyncBack(SyncBackParams{StagingName: "backend"})

		var ffErr *NonFastForwardError
		require.ErrorAs(t, err, &ffErr)
		assert.Equal(t, "main", ffErr.Branch)

		// cleanup-always: the temporary branch is deleted on the failure path
		require.Len(t, g.DeleteRemoteBranchCalls(), 1)
		// the work branch was not pushed back
		require.Len(t, g.PushCalls(), 1)

		// record keeps its previous temp branch
		rec, _ := loadRecord(t, svc, "backend")
		assert.Equal(t, "staging-sync/backend-main-1690000000", rec.LastTempBranch)
	})

	t.Run("force hard-resets instead of fast-forwarding", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		svc, _, _ := seedBackend(t, cp, g)

		res, err := svc.SyncBack(SyncBackParams{StagingName: "backend", Force: true})
		require.NoError(t, err)
		assert.True(t, res.HardReset)

		require.Len(t, g.HardResetCalls(), 1)
		assert.Equal(t, "origin/staging-sync/backend-main-1690000000", g.HardResetCalls()[0].Ref)
		assert.Empty(t, g.FastForwardCalls())
	})

	t.Run("branch mismatch without auto-checkout fails after cleanup", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		calls := 0
		g.CurrentBranchFunc = func(dir string) (string, error) {
			calls++
			if calls == 1 {
				return "main", nil // staging repo
			}
			return "develop", nil // work repo
		}
		svc, _, _ := seedBackend(t, cp, g)

		_, err := svc.SyncBack(SyncBackParams{StagingName: "backend"})

		var mismatch *BranchMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "develop", mismatch.Current)
		assert.Equal(t, "main", mismatch.Target)
		assert.Empty(t, g.CheckoutCalls())
		require.Len(t, g.DeleteRemoteBranchCalls(), 1)
	})

	t.Run("auto-checkout switches the work branch", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		calls := 0
		g.CurrentBranchFunc = func(dir string) (string, error) {
			calls++
			if calls == 1 {
				return "main", nil
			}
			return "develop", nil
		}
		svc, _, workPath := seedBackend(t, cp, g)

		_, err := svc.SyncBack(SyncBackParams{StagingName: "backend", AutoCheckout: true})
		require.NoError(t, err)

		cos := g.CheckoutCalls()
		require.Len(t, cos, 1)
		assert.Equal(t, workPath, cos[0].Dir)
		assert.Equal(t, "main", cos[0].Branch)
	})

	t.Run("dirty staging tree blocks sync", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		g.HasUncommittedChangesFunc = func(dir string) (bool, error) { return true, nil }
		svc, _, _ := seedBackend(t, cp, g)

		_, err := svc.SyncBack(SyncBackParams{StagingName: "backend"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "--allow-dirty-stage")
		assert.Empty(t, g.PushCalls())
	})

	t.Run("allow-dirty flags skip the clean checks", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		g.HasUncommittedChangesFunc = func(dir string) (bool, error) { return true, nil }
		svc, _, _ := seedBackend(t, cp, g)

		_, err := svc.SyncBack(SyncBackParams{
			StagingName:     "backend",
			AllowDirtyStage: true,
			AllowDirtyWork:  true,
		})
		require.NoError(t, err)
	})

	t.Run("remote URL mismatch fails before any push", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		calls := 0
		g.RemoteGetURLFunc = func(dir, remote string) (string, error) {
			calls++
			if calls == 1 {
				return "git@github.com:org/backend.git", nil
			}
			return "git@github.com:org/other.git", nil
		}
		svc, _, _ := seedBackend(t, cp, g)

		_, err := svc.SyncBack(SyncBackParams{StagingName: "backend"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "does not match")
		assert.Empty(t, g.PushCalls())
	})

	t.Run("explicit temp branch wins over recorded one", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		g.RemoteBranchExistsFunc = func(dir, remote, branch string) (bool, error) { return false, nil }
		svc, _, _ := seedBackend(t, cp, g)

		res, err := svc.SyncBack(SyncBackParams{StagingName: "backend", TempBranch: "my-temp"})
		require.NoError(t, err)
		assert.Equal(t, "my-temp", res.TempBranch)
		assert.Equal(t, "HEAD:refs/heads/my-temp", g.PushCalls()[0].Refspec)
	})

	t.Run("explicit temp branch collision fails", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		g.RemoteBranchExistsFunc = func(dir, remote, branch string) (bool, error) { return true, nil }
		svc, _, _ := seedBackend(t, cp, g)

		_, err := svc.SyncBack(SyncBackParams{StagingName: "backend", TempBranch: "taken"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "already exists")
	})

	t.Run("synthesizes temp branch without a record", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		g.RemoteBranchExistsFunc = func(dir, remote, branch string) (bool, error) { return false, nil }
		fakeRepo(t, cp.StagingRoot, "backend")
		fakeRepo(t, cp.WorkRoot, "backend")
		svc := newTestSvc(t, g, cp)

		res, err := svc.SyncBack(SyncBackParams{StagingName: "backend"})
		require.NoError(t, err)
		assert.Equal(t, "staging-sync/backend-main-1700000000", res.TempBranch)
		// without a record the target falls back to the staging branch
		assert.Equal(t, "main", res.TargetBranch)

		rec, ok := loadRecord(t, svc, "backend")
		require.True(t, ok)
		assert.Equal(t, "main", rec.BaseBranch)
	})

	t.Run("creates missing local target branch from remote", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		g.LocalRefExistsFunc = func(dir, ref string) (bool, error) { return false, nil }
		svc, _, workPath := seedBackend(t, cp, g)

		_, err := svc.SyncBack(SyncBackParams{StagingName: "backend"})
		require.NoError(t, err)

		// temp branch fetch plus target branch fetch
		require.Len(t, g.FetchCalls(), 2)
		assert.Equal(t, "main", g.FetchCalls()[1].Branch)
		crs := g.CheckoutResetCalls()
		require.Len(t, crs, 1)
		assert.Equal(t, workPath, crs[0].Dir)
		assert.Equal(t, "origin/main", crs[0].StartPoint)
	})

	t.Run("explicit branch overrides recorded base", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		g.BranchExistsFunc = func(dir, name string) (bool, error) { return true, nil }
		svc, _, _ := seedBackend(t, cp, g)

		res, err := svc.SyncBack(SyncBackParams{StagingName: "backend", Branch: "release", AutoCheckout: true})
		require.NoError(t, err)
		assert.Equal(t, "release", res.TargetBranch)

		rec, _ := loadRecord(t, svc, "backend")
		assert.Equal(t, "release", rec.BaseBranch)
	})

	t.Run("missing staging directory fails", func(t *testing.T) {
		cp := testCP(t)
		svc := newTestSvc(t, cleanGit(), cp)

		_, err := svc.SyncBack(SyncBackParams{StagingName: "ghost"})

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Error(), "does not exist")
	})

	t.Run("work-name override resolves under work root", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		fakeRepo(t, cp.StagingRoot, "backend-review")
		workPath := fakeRepo(t, cp.WorkRoot, "apps/backend")
		svc := newTestSvc(t, g, cp)

		res, err := svc.SyncBack(SyncBackParams{StagingName: "backend-review", WorkName: "apps/backend"})
		require.NoError(t, err)
		assert.Equal(t, workPath, res.WorkPath)

		rec, _ := loadRecord(t, svc, "backend-review")
		assert.Equal(t, "apps/backend", rec.WorkName)
		assert.Equal(t, workPath, rec.WorkPath)
	})

	t.Run("cleanup failure is reported as warning not error", func(t *testing.T) {
		cp := testCP(t)
		g := cleanGit()
		g.DeleteRemoteBranchFunc = func(dir, remote, branch string) error {
			return fmt.Errorf("remote hung up")
		}
		var warned []string
		svc, _, _ := seedBackend(t, cp, g)
		svc.logger = warnRecorder{&warned}

		res, err := svc.SyncBack(SyncBackParams{StagingName: "backend"})
		require.NoError(t, err)
		assert.False(t, res.TempBranchDeleted)
		assert.NotEmpty(t, warned)
	})
}

// warnRecorder captures warning messages for assertions.
type warnRecorder struct {
	msgs *[]string
}

func (w warnRecorder) Warn(msg string, args ...any) {
	*w.msgs = append(*w.msgs, msg)
}
