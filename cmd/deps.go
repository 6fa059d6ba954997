package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hmatsuda/stagesync/internal/config"
	stagesyncexec "github.com/hmatsuda/stagesync/internal/exec"
	"github.com/hmatsuda/stagesync/internal/git"
	"github.com/hmatsuda/stagesync/internal/staging"
	"github.com/hmatsuda/stagesync/internal/store"
	"github.com/hmatsuda/stagesync/internal/workspace"
	"github.com/spf13/cobra"
)

// configFileName is the per-staging-root configuration file.
const configFileName = ".stagesync.yaml"

// globalFlags holds the persistent flag values layered over the config file.
type globalFlags struct {
	workRoot    string
	stagingRoot string
	configPath  string
}

// App holds the dependency resolution function and builds the CLI command tree.
type App struct {
	resolveDeps func(f globalFlags) (*deps, error)
	flags       globalFlags
	verbose     bool
}

// NewApp creates an App with the default dependency resolver.
func NewApp() *App {
	return &App{resolveDeps: defaultResolveDeps}
}

type deps struct {
	git git.Client
	cfg *config.Config
	ws  *workspace.Workspace
}

func defaultResolveDeps(f globalFlags) (*deps, error) {
	return resolveDepsWithExec(stagesyncexec.NewDefaultExecutor(), f)
}

func resolveDepsWithExec(e stagesyncexec.Executor, f globalFlags) (*deps, error) {
	if err := e.LookPath("git"); err != nil {
		return nil, fmt.Errorf("required command 'git' not found")
	}
	g := git.NewClient(e)

	// The config file lives in the staging root, which the config file
	// itself therefore cannot relocate.
	cfgDir := f.stagingRoot
	if cfgDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		cfgDir = cwd
	}
	cfg, err := config.Load(filepath.Join(cfgDir, configFileName))
	if err != nil {
		return nil, err
	}

	ws, err := workspace.Resolve(workspace.Params{
		WorkRoot:    firstNonEmpty(f.workRoot, cfg.WorkRoot),
		StagingRoot: firstNonEmpty(f.stagingRoot, cfg.StagingRoot),
		ConfigPath:  firstNonEmpty(f.configPath, cfg.ConfigPath),
	})
	if err != nil {
		return nil, err
	}

	return &deps{git: g, cfg: cfg, ws: ws}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// withService resolves dependencies and calls fn with the constructed
// Service. requireWork enforces a configured work root before running fn.
func (a *App) withService(cmd *cobra.Command, requireWork bool, fn func(svc *staging.Service) error) error {
	d, err := a.resolveDeps(a.flags)
	if err != nil {
		return err
	}
	if requireWork {
		if _, err := d.ws.RequireWorkRoot(); err != nil {
			return err
		}
	}
	return fn(d.service(a.serviceOpts(cmd)...))
}

func (a *App) serviceOpts(cmd *cobra.Command) []staging.Option {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return []staging.Option{
		staging.WithOutput(cmd.OutOrStdout()),
		staging.WithLogger(logger),
	}
}

func (d *deps) service(opts ...staging.Option) *staging.Service {
	allOpts := []staging.Option{
		staging.WithCommonParams(staging.CommonParams{
			WorkRoot:         d.ws.WorkRoot,
			StagingRoot:      d.ws.StagingRoot,
			Remote:           d.cfg.Remote,
			TempBranchPrefix: d.cfg.TempBranchPrefix,
		}),
	}
	allOpts = append(allOpts, opts...)
	return staging.NewService(d.git, store.New(d.ws.StorePath), allOpts...)
}
