// Package workspace resolves the directory layout a command operates on:
// the work root holding canonical repositories, the staging root holding
// throwaway copies, and the location of the mapping store.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hmatsuda/stagesync/internal/config"
)

// Workspace holds the resolved directory layout.
type Workspace struct {
	// WorkRoot is the absolute work root, or "" when not configured.
	WorkRoot string
	// StagingRoot is the absolute staging root.
	StagingRoot string
	// StorePath is the absolute path of the mapping store file.
	StorePath string
}

// Params are the raw inputs to Resolve, typically flag values layered
// over config values.
type Params struct {
	WorkRoot    string
	StagingRoot string
	ConfigPath  string
}

// Resolve turns raw path inputs into an absolute Workspace.
// The staging root defaults to the current working directory; the store
// path defaults to <staging-root>/.staging_sync.json. The work root is
// left empty when unset since not every command needs one.
func Resolve(p Params) (*Workspace, error) {
	stagingRoot := p.StagingRoot
	if stagingRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving staging root: %w", err)
		}
		stagingRoot = cwd
	}
	stagingRoot, err := absPath(stagingRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving staging root: %w", err)
	}

	workRoot := p.WorkRoot
	if workRoot != "" {
		workRoot, err = absPath(workRoot)
		if err != nil {
			return nil, fmt.Errorf("resolving work root: %w", err)
		}
	}

	storePath := p.ConfigPath
	if storePath == "" {
		storePath = filepath.Join(stagingRoot, config.DefaultStoreName)
	} else {
		storePath, err = absPath(storePath)
		if err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}
	}

	return &Workspace{
		WorkRoot:    workRoot,
		StagingRoot: stagingRoot,
		StorePath:   storePath,
	}, nil
}

// RequireWorkRoot returns the work root or an error telling the user how
// to configure one.
func (w *Workspace) RequireWorkRoot() (string, error) {
	if w.WorkRoot == "" {
		return "", fmt.Errorf("work root not configured: provide --work-root, set work_root in .stagesync.yaml, or set STAGESYNC_WORK_ROOT")
	}
	return w.WorkRoot, nil
}

// absPath expands a leading ~ and makes the path absolute and clean.
func absPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
