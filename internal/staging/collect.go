package staging

import (
	"os"
	"path/filepath"
)

// classifyRecord checks both sides of a mapping on the filesystem.
// A missing staging directory means the record is orphaned; a missing
// work repository means sync-back cannot run until it is restored.
func classifyRecord(stagingPath, workPath string) Status {
	if !dirExists(stagingPath) {
		return StatusStagingMissing
	}
	// .git may be a directory or a gitfile, so a bare existence check is enough.
	if !pathExists(filepath.Join(workPath, ".git")) {
		return StatusWorkMissing
	}
	return StatusOK
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CollectState reads the mapping store and returns one State per record,
// sorted by staging name. The store is never mutated.
func (s *Service) CollectState() ([]State, error) {
	mappings, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	var states []State
	for _, name := range mappings.Names() {
		rec, _ := mappings.Get(name)
		states = append(states, State{
			Name:           name,
			WorkName:       rec.WorkName,
			WorkPath:       rec.WorkPath,
			StagingPath:    rec.StagingPath,
			BaseBranch:     rec.BaseBranch,
			Remote:         rec.Remote,
			LastTempBranch: rec.LastTempBranch,
			Status:         classifyRecord(rec.StagingPath, rec.WorkPath),
		})
	}
	return states, nil
}
