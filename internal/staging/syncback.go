package staging

import (
	"fmt"
	"path/filepath"

	"github.com/hmatsuda/stagesync/internal/store"
)

// SyncBackParams holds parameters for the SyncBack operation.
type SyncBackParams struct {
	StagingName     string
	WorkName        string // override for the work project name
	Branch          string // target work branch; defaults to the recorded base branch
	TempBranch      string // explicit temporary branch name
	Force           bool   // hard-reset the work branch instead of fast-forwarding
	AutoCheckout    bool   // switch the work repo to the target branch if needed
	AllowDirtyStage bool
	AllowDirtyWork  bool
}

// SyncBack pushes the staging HEAD through a temporary remote branch into
// the work repository's target branch and pushes the result back to the
// shared remote. Once the temporary branch has been created its deletion
// is guaranteed, regardless of downstream failure.
func (s *Service) SyncBack(p SyncBackParams) (*SyncResult, error) {
	if err := ValidateStagingName(p.StagingName); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid staging name: %v", err)}
	}

	stagePath, err := resolveUnderRoot(s.cp.StagingRoot, p.StagingName, "staging path")
	if err != nil {
		return nil, err
	}
	if err := requireGitRepo(stagePath, "staging project"); err != nil {
		return nil, err
	}

	mappings, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	entry, hasEntry := mappings.Get(p.StagingName)

	workPath, workLabel, err := s.resolveWorkPath(p, entry, hasEntry)
	if err != nil {
		return nil, err
	}
	if err := requireGitRepo(workPath, "work project"); err != nil {
		return nil, err
	}

	if !p.AllowDirtyStage {
		if err := s.requireClean(stagePath, "staging project", "--allow-dirty-stage"); err != nil {
			return nil, err
		}
	}
	if !p.AllowDirtyWork {
		if err := s.requireClean(workPath, "work project", "--allow-dirty-work"); err != nil {
			return nil, err
		}
	}

	stagingBranch, err := s.currentBranch(stagePath, "staging project")
	if err != nil {
		return nil, err
	}

	targetBranch := p.Branch
	if targetBranch == "" && hasEntry {
		targetBranch = entry.BaseBranch
	}
	if targetBranch == "" {
		targetBranch = stagingBranch
	}

	if p.Branch != "" && p.Branch != stagingBranch {
		exists, err := s.git.BranchExists(stagePath, p.Branch)
		if err != nil {
			return nil, fmt.Errorf("checking staging branch: %w", err)
		}
		if !exists {
			s.logger.Warn("staging repository has no local branch with the requested name, proceeding with the current HEAD",
				"branch", p.Branch)
		}
	}

	stagingURL, err := s.git.RemoteGetURL(stagePath, s.cp.Remote)
	if err != nil {
		return nil, &ValidationError{Path: stagePath, Reason: fmt.Sprintf("repository does not have a remote named %s", s.cp.Remote)}
	}
	workURL, err := s.git.RemoteGetURL(workPath, s.cp.Remote)
	if err != nil {
		return nil, &ValidationError{Path: workPath, Reason: fmt.Sprintf("repository does not have a remote named %s", s.cp.Remote)}
	}
	if workURL != stagingURL {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("work repository remote URL does not match staging remote URL (work: %s, staging: %s)", workURL, stagingURL),
		}
	}

	tempBranch, err := s.resolveTempBranch(p, entry, hasEntry, stagePath, stagingBranch)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{
		StagingName:  p.StagingName,
		WorkPath:     workPath,
		TargetBranch: targetBranch,
		TempBranch:   tempBranch,
		HardReset:    p.Force,
	}

	if err := s.transfer(p, stagePath, workPath, workLabel, stagingBranch, targetBranch, tempBranch, result); err != nil {
		return nil, err
	}

	mappings.Put(p.StagingName, storeRecord(workLabel, workPath, stagePath, targetBranch, stagingBranch, stagingURL, tempBranch))
	if err := s.store.Save(mappings); err != nil {
		return nil, err
	}

	s.printf("Sync complete. Work project %s now contains %s/%s from staging.", workPath, s.cp.Remote, targetBranch)
	return result, nil
}

// resolveWorkPath determines the work repository for a sync: an explicit
// --work-name override wins, then the recorded path, then the staging
// name resolved under the work root.
func (s *Service) resolveWorkPath(p SyncBackParams, entry store.Record, hasEntry bool) (path, label string, err error) {
	switch {
	case p.WorkName != "":
		path, err = resolveUnderRoot(s.cp.WorkRoot, p.WorkName, "work path")
		if err != nil {
			return "", "", err
		}
		return path, p.WorkName, nil
	case hasEntry:
		label = entry.WorkName
		if label == "" {
			label = filepath.Base(entry.WorkPath)
		}
		return entry.WorkPath, label, nil
	default:
		name := filepath.Base(p.StagingName)
		path, err = resolveUnderRoot(s.cp.WorkRoot, name, "work path")
		if err != nil {
			return "", "", err
		}
		return path, name, nil
	}
}

// resolveTempBranch picks the temporary branch for a sync: the explicit
// --temp-branch argument, then the recorded one, else a synthesized name.
// An explicitly requested name that already exists on the remote is an
// error; a synthesized collision gets a fresh name.
func (s *Service) resolveTempBranch(p SyncBackParams, entry store.Record, hasEntry bool, stagePath, stagingBranch string) (string, error) {
	recorded := ""
	if hasEntry {
		recorded = entry.LastTempBranch
	}

	tempBranch := p.TempBranch
	if tempBranch == "" {
		tempBranch = recorded
	}
	if tempBranch == "" {
		tempBranch = tempBranchName(s.cp.TempBranchPrefix, p.StagingName, stagingBranch, s.now())
	}

	if recorded != "" && p.TempBranch == "" {
		return tempBranch, nil
	}

	exists, err := s.git.RemoteBranchExists(stagePath, s.cp.Remote, tempBranch)
	if err != nil {
		return "", fmt.Errorf("checking temporary branch: %w", err)
	}
	if exists {
		if p.TempBranch != "" {
			return "", &ValidationError{
				Reason: fmt.Sprintf("temporary branch %s already exists on %s: provide --temp-branch with a different name or delete it manually", tempBranch, s.cp.Remote),
			}
		}
		tempBranch = tempBranchName(s.cp.TempBranchPrefix, p.StagingName, stagingBranch, s.now())
	}
	return tempBranch, nil
}

// transfer performs the remote round trip. The temporary branch is the
// scoped resource: once the initial push succeeds, its deletion runs on
// every exit path.
func (s *Service) transfer(p SyncBackParams, stagePath, workPath, workLabel, stagingBranch, targetBranch, tempBranch string, result *SyncResult) error {
	s.printf("Pushing staging HEAD (%s) to temporary remote branch %s", stagingBranch, tempBranch)
	if err := s.git.Push(stagePath, s.cp.Remote, "HEAD:refs/heads/"+tempBranch); err != nil {
		return fmt.Errorf("pushing temporary branch: %w", err)
	}

	defer func() {
		s.printf("Removing temporary remote branch %s", tempBranch)
		if err := s.git.DeleteRemoteBranch(workPath, s.cp.Remote, tempBranch); err != nil {
			s.bestEffort("DeleteRemoteBranch", err)
			return
		}
		result.TempBranchDeleted = true
	}()

	s.printf("Fetching %s into work repository %s", tempBranch, workPath)
	if err := s.git.Fetch(workPath, s.cp.Remote, tempBranch); err != nil {
		return fmt.Errorf("fetching temporary branch: %w", err)
	}

	hasLocal, err := s.git.LocalRefExists(workPath, "refs/heads/"+targetBranch)
	if err != nil {
		return fmt.Errorf("checking work branch: %w", err)
	}
	if !hasLocal {
		s.printf("Creating local branch %s from %s/%s", targetBranch, s.cp.Remote, targetBranch)
		if err := s.git.Fetch(workPath, s.cp.Remote, targetBranch); err != nil {
			return fmt.Errorf("fetching %s: %w", targetBranch, err)
		}
		if err := s.git.CheckoutReset(workPath, targetBranch, s.cp.Remote+"/"+targetBranch); err != nil {
			return fmt.Errorf("creating %s: %w", targetBranch, err)
		}
	}

	currentBranch, err := s.currentBranch(workPath, "work project "+workLabel)
	if err != nil {
		return err
	}
	if currentBranch != targetBranch {
		if !p.AutoCheckout {
			return &BranchMismatchError{Current: currentBranch, Target: targetBranch}
		}
		s.printf("Checking out branch %s in work repository", targetBranch)
		if err := s.git.Checkout(workPath, targetBranch); err != nil {
			return fmt.Errorf("checking out %s: %w", targetBranch, err)
		}
	}

	remoteTemp := s.cp.Remote + "/" + tempBranch
	if p.Force {
		s.printf("Hard resetting work branch %s to %s", targetBranch, remoteTemp)
		if err := s.git.HardReset(workPath, remoteTemp); err != nil {
			return fmt.Errorf("resetting %s: %w", targetBranch, err)
		}
	} else {
		if err := s.git.FastForward(workPath, remoteTemp); err != nil {
			return &NonFastForwardError{Branch: targetBranch, Err: err}
		}
	}

	s.printf("Pushing updated branch %s back to %s", targetBranch, s.cp.Remote)
	if err := s.git.Push(workPath, s.cp.Remote, targetBranch); err != nil {
		return fmt.Errorf("pushing %s: %w", targetBranch, err)
	}
	return nil
}
