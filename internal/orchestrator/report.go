package orchestrator

import (
	"context"

	"github.com/ruslanmv/factoryai/internal/platform"
)

// Error strings reported by Validate.
const (
	ErrTextGitNotInstalled = "Git is not installed"
	ErrTextNotGitRepo      = "Not a git repository"
	ErrTextNoComponents    = "No components are initialized. Run 'factoryai sync' or 'make sync'."
)

// ComponentStatus is the derived state of one component.
type ComponentStatus struct {
	ID        string `json:"id"        yaml:"id"`
	Name      string `json:"name"      yaml:"name"`
	Enabled   bool   `json:"enabled"   yaml:"enabled"`
	Available bool   `json:"available" yaml:"available"`
	Path      string `json:"path"      yaml:"path"`
	URL       string `json:"url"       yaml:"url"`
	Revision  string `json:"revision,omitempty" yaml:"revision,omitempty"`
}

// ValidationReport aggregates the environment checks.
type ValidationReport struct {
	Valid                 bool                       `json:"valid"                  yaml:"valid"`
	GitInstalled          bool                       `json:"git_installed"          yaml:"git_installed"`
	GitVersion            string                     `json:"git_version,omitempty"  yaml:"git_version,omitempty"`
	IsGitRepo             bool                       `json:"is_git_repo"            yaml:"is_git_repo"`
	SubmodulesInitialized bool                       `json:"submodules_initialized" yaml:"submodules_initialized"`
	Components            map[string]ComponentStatus `json:"components"             yaml:"components"`
	Errors                []string                   `json:"errors"                 yaml:"errors"`
}

// Info describes the installation.
type Info struct {
	Version       string                     `json:"version"        yaml:"version"`
	Platform      string                     `json:"platform"       yaml:"platform"`
	RootDir       string                     `json:"root_dir"       yaml:"root_dir"`
	SubmodulesDir string                     `json:"submodules_dir" yaml:"submodules_dir"`
	LogLevel      string                     `json:"log_level"      yaml:"log_level"`
	Components    map[string]ComponentStatus `json:"components"     yaml:"components"`
}

// Status computes the state of every configured component. Components whose
// directory cannot be read are reported unavailable.
func (o *Orchestrator) Status() map[string]ComponentStatus {
	statuses := make(map[string]ComponentStatus)
	for id, d := range o.cfg.Components() {
		s := ComponentStatus{
			ID:        id,
			Name:      d.Name,
			Enabled:   d.Enabled,
			Available: o.cfg.IsAvailable(id),
			Path:      d.Path,
			URL:       d.URL,
		}
		if dir, err := o.cfg.ResolvePath(id); err == nil {
			s.Path = dir
			if s.Available {
				s.Revision = o.git.Revision(dir)
			}
		}
		statuses[id] = s
	}
	return statuses
}

// Validate checks that git is usable, the root is a working tree and at
// least one enabled component is present. Valid only reflects the git
// checks; a missing component is reported in Errors alone. It never
// modifies the configuration.
func (o *Orchestrator) Validate(ctx context.Context) ValidationReport {
	report := ValidationReport{
		Valid:      true,
		Components: o.Status(),
		Errors:     []string{},
	}

	report.GitInstalled = o.git.IsInstalled(ctx)
	if report.GitInstalled {
		report.GitVersion = o.git.InstalledVersion(ctx)
	} else {
		report.Valid = false
		report.Errors = append(report.Errors, ErrTextGitNotInstalled)
	}

	report.IsGitRepo = o.git.IsRepository(o.cfg.RootDir())
	if !report.IsGitRepo {
		report.Valid = false
		report.Errors = append(report.Errors, ErrTextNotGitRepo)
	}

	for _, s := range report.Components {
		if s.Enabled && s.Available {
			report.SubmodulesInitialized = true
			break
		}
	}
	if !report.SubmodulesInitialized {
		report.Errors = append(report.Errors, ErrTextNoComponents)
	}

	o.logger.Debug("Validation finished", "valid", report.Valid, "errors", len(report.Errors))
	return report
}

// Describe returns version and layout information together with the
// component status.
func (o *Orchestrator) Describe() Info {
	return Info{
		Version:       o.version,
		Platform:      platform.String(),
		RootDir:       o.cfg.RootDir(),
		SubmodulesDir: o.cfg.SubmodulesDir(),
		LogLevel:      o.cfg.LogLevel(),
		Components:    o.Status(),
	}
}
