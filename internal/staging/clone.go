package staging

import (
	"fmt"
	"os"
	"path/filepath"
)

// CloneParams holds parameters for the Clone operation.
type CloneParams struct {
	Project    string // path of the source repository, relative to the work root
	AsName     string // staging directory name; defaults to the project base name
	TempBranch string // explicit temporary branch name; defaults to a synthesized one
	Force      bool   // replace an existing staging directory
}

// Clone prepares a staging copy of a work repository. The source HEAD is
// pushed to a fresh temporary branch on the shared remote, a new staging
// repository is initialized tracking that branch, and the mapping record
// is written. Validation failures happen before any remote or filesystem
// mutation.
func (s *Service) Clone(p CloneParams) (*CloneResult, error) {
	if err := ValidateStagingName(p.Project); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid project name: %v", err)}
	}
	if p.AsName != "" {
		if err := ValidateStagingName(p.AsName); err != nil {
			return nil, &ValidationError{Reason: fmt.Sprintf("invalid --as-name: %v", err)}
		}
	}

	if _, err := os.Stat(s.cp.WorkRoot); os.IsNotExist(err) {
		return nil, &ValidationError{Path: s.cp.WorkRoot, Reason: "work root does not exist"}
	}

	source, err := resolveUnderRoot(s.cp.WorkRoot, p.Project, "project path")
	if err != nil {
		return nil, err
	}
	if err := requireGitRepo(source, "source project"); err != nil {
		return nil, err
	}

	branch, err := s.currentBranch(source, "source project")
	if err != nil {
		return nil, err
	}
	if err := s.requireClean(source, "source project", ""); err != nil {
		return nil, err
	}

	remoteURL, err := s.git.RemoteGetURL(source, s.cp.Remote)
	if err != nil {
		return nil, &ValidationError{
			Path:   source,
			Reason: fmt.Sprintf("repository does not have a remote named %s", s.cp.Remote),
		}
	}

	targetName := p.AsName
	if targetName == "" {
		targetName = filepath.Base(p.Project)
	}
	target, err := resolveUnderRoot(s.cp.StagingRoot, targetName, "staging target")
	if err != nil {
		return nil, err
	}

	replaced := false
	if _, err := os.Stat(target); err == nil {
		if !p.Force {
			return nil, &AlreadyExistsError{Path: target}
		}
		if target == source {
			return nil, &ValidationError{Path: target, Reason: "refusing to remove the source project"}
		}
		replaced = true
	}

	stageRel, err := filepath.Rel(s.cp.StagingRoot, target)
	if err != nil {
		return nil, fmt.Errorf("resolving staging name: %w", err)
	}

	tempBranch := p.TempBranch
	if tempBranch == "" {
		tempBranch = tempBranchName(s.cp.TempBranchPrefix, stageRel, branch, s.now())
	}
	exists, err := s.git.RemoteBranchExists(source, s.cp.Remote, tempBranch)
	if err != nil {
		return nil, fmt.Errorf("checking temporary branch: %w", err)
	}
	if exists {
		return nil, &ValidationError{
			Reason: fmt.Sprintf("temporary branch %s already exists on %s: provide --temp-branch with a different name or delete it manually", tempBranch, s.cp.Remote),
		}
	}

	// Validation done; mutations start here.
	if ok, err := s.git.RemoteBranchExists(source, s.cp.Remote, branch); err != nil {
		return nil, fmt.Errorf("checking remote branch: %w", err)
	} else if !ok {
		s.printf("Remote branch %s not found on %s. Pushing current branch before cloning.", branch, s.cp.Remote)
		if err := s.git.PushUpstream(source, s.cp.Remote, branch); err != nil {
			return nil, fmt.Errorf("pushing %s to %s: %w", branch, s.cp.Remote, err)
		}
	}

	if replaced {
		if err := os.RemoveAll(target); err != nil {
			return nil, fmt.Errorf("removing %s: %w", target, err)
		}
	}

	s.printf("Creating temporary remote branch %s from %s in source project %s.", tempBranch, branch, source)
	if err := s.git.Push(source, s.cp.Remote, "HEAD:refs/heads/"+tempBranch); err != nil {
		return nil, fmt.Errorf("pushing temporary branch: %w", err)
	}

	s.printf("Initializing staging repository at %s from remote branch %s (based on %s).", target, tempBranch, branch)
	if err := s.initStagingRepo(target, remoteURL, tempBranch); err != nil {
		return nil, err
	}

	mappings, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	mappings.Put(stageRel, storeRecord(p.Project, source, target, branch, tempBranch, remoteURL, tempBranch))
	if err := s.store.Save(mappings); err != nil {
		return nil, err
	}

	s.printf("Staging repository ready. Local branch %s tracks %s/%s (branched from %s).", tempBranch, s.cp.Remote, tempBranch, branch)
	return &CloneResult{
		StagingName: stageRel,
		StagingPath: target,
		WorkPath:    source,
		BaseBranch:  branch,
		TempBranch:  tempBranch,
		Remote:      remoteURL,
		Replaced:    replaced,
	}, nil
}

// initStagingRepo creates the staging directory as a fresh repository
// tracking the temporary branch on the shared remote.
func (s *Service) initStagingRepo(target, remoteURL, branch string) error {
	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	if err := s.git.InitRepo(target); err != nil {
		return fmt.Errorf("initializing staging repository: %w", err)
	}
	if err := s.git.AddRemote(target, s.cp.Remote, remoteURL); err != nil {
		return fmt.Errorf("adding remote: %w", err)
	}
	if err := s.git.Fetch(target, s.cp.Remote, branch); err != nil {
		return fmt.Errorf("fetching %s: %w", branch, err)
	}
	if err := s.git.CheckoutReset(target, branch, s.cp.Remote+"/"+branch); err != nil {
		return fmt.Errorf("checking out %s: %w", branch, err)
	}
	return nil
}
