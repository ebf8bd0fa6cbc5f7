// Package orchestrator implements the factoryai workflows: syncing the
// component submodules, reporting their state and launching them.
package orchestrator

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ruslanmv/factoryai/internal/component"
	"github.com/ruslanmv/factoryai/internal/config"
	"github.com/ruslanmv/factoryai/internal/errdefs"
	"github.com/ruslanmv/factoryai/internal/fsutil"
	"github.com/ruslanmv/factoryai/internal/git"
	"github.com/ruslanmv/factoryai/internal/logging"
	"github.com/ruslanmv/factoryai/internal/runner"
	"github.com/ruslanmv/factoryai/internal/version"
)

// Orchestrator composes the configuration with a command runner. It holds
// no state of its own between calls; every operation reads the
// configuration afresh.
type Orchestrator struct {
	cfg         *config.Configuration
	runner      runner.Runner
	git         git.Inspector
	logger      logging.Logger
	interpreter []string
	version     string
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithRunner sets the command runner. Defaults to an os/exec runner on the
// process's standard streams.
func WithRunner(r runner.Runner) Option {
	return func(o *Orchestrator) { o.runner = r }
}

// WithLogger sets the logger.
func WithLogger(logger logging.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithGit replaces the git inspector built on top of the runner.
func WithGit(inspector git.Inspector) Option {
	return func(o *Orchestrator) { o.git = inspector }
}

// WithInterpreter sets the argv that precedes a component's entry point.
func WithInterpreter(argv []string) Option {
	return func(o *Orchestrator) { o.interpreter = append([]string(nil), argv...) }
}

// WithVersion sets the version reported by Describe.
func WithVersion(v string) Option {
	return func(o *Orchestrator) { o.version = v }
}

// New creates an orchestrator for cfg.
func New(cfg *config.Configuration, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg:     cfg,
		logger:  logging.Nop(),
		version: version.Current(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.runner == nil {
		o.runner = runner.NewExec(runner.WithLogger(o.logger))
	}
	if o.git == nil {
		o.git = git.NewInspector(o.runner)
	}
	if len(o.interpreter) == 0 {
		o.interpreter = []string{"python3"}
	}
	o.logger.Debug("Orchestrator initialized", "root", cfg.RootDir())
	return o
}

// Sync initializes and updates every submodule under the root directory.
// Nothing on disk is touched unless git is installed and the root is a
// git working tree.
func (o *Orchestrator) Sync(ctx context.Context, force bool) error {
	o.logger.Info("Syncing submodules", "force", force)

	if !o.git.IsInstalled(ctx) {
		return errdefs.New(errdefs.CodeGitNotInstalled, "Git is not installed").
			WithDetails("Please install Git to use FactoryAI.")
	}
	if !o.git.IsRepository(o.cfg.RootDir()) {
		return errdefs.New(errdefs.CodeNotGitRepository, "Not a git repository: %s", o.cfg.RootDir()).
			WithDetails("Please clone the FactoryAI repository properly.")
	}

	if err := o.sync(ctx, force); err != nil {
		if errdefs.IsFactoryError(err) {
			return err
		}
		return errdefs.Wrap(errdefs.CodeSyncFailed, err, "Failed to sync submodules: %v", err)
	}

	o.logger.Info("Submodules synced successfully")
	return nil
}

func (o *Orchestrator) sync(ctx context.Context, force bool) error {
	if err := fsutil.EnsureDirectory(filepath.Dir(o.cfg.SubmodulesDir()), true); err != nil {
		return err
	}

	args := []string{"git", "submodule", "update", "--init", "--recursive"}
	if force {
		args = append(args, "--force")
	}
	result, err := o.runner.Execute(ctx, runner.Command{
		Args:    args,
		Dir:     o.cfg.RootDir(),
		Capture: true,
		Check:   true,
	})
	if err != nil {
		return err
	}
	if out := strings.TrimSpace(result.Stdout); out != "" {
		o.logger.Debug(out)
	}
	return nil
}

// CheckComponentAvailable reports whether the component is configured and
// its directory exists.
func (o *Orchestrator) CheckComponentAvailable(id string) bool {
	return o.cfg.IsAvailable(id)
}

// Component returns the launchable component for id.
func (o *Orchestrator) Component(id string) (component.Component, error) {
	dir, err := o.cfg.ResolvePath(id)
	if err != nil {
		return nil, err
	}
	return component.NewScript(id, dir, o.runner,
		component.WithInterpreter(o.interpreter),
		component.WithLogger(o.logger),
	), nil
}

// Run launches a component with args appended to its entry point and
// returns 0 when it exits cleanly. A non-zero exit is reported as an
// ExecutionFailed error carrying the exit code.
func (o *Orchestrator) Run(ctx context.Context, id string, args []string, interactive bool) (int, error) {
	if !o.cfg.IsAvailable(id) {
		return 0, errdefs.SubmoduleNotFound(id)
	}
	descriptor, err := o.cfg.Descriptor(id)
	if err != nil {
		return 0, err
	}
	if !descriptor.Enabled {
		return 0, errdefs.ComponentDisabled(id)
	}

	comp, err := o.Component(id)
	if err != nil {
		return 0, err
	}
	code, err := comp.Invoke(ctx, args, interactive)
	if err != nil {
		o.logger.Error("Component failed", "component", id, "error", err)
		return code, err
	}

	o.logger.Info("Component completed successfully", "component", id)
	return 0, nil
}
