// Package git probes the local git installation and repository checkouts.
package git

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/ruslanmv/factoryai/internal/constants"
	"github.com/ruslanmv/factoryai/internal/fsutil"
	"github.com/ruslanmv/factoryai/internal/runner"
)

// Matches the version token of `git --version`, e.g. "git version 2.39.3 (Apple Git-145)".
var versionRegex = regexp.MustCompile(`git version (\S+)`)

// DefaultInspector implements Inspector with the git executable for
// installation probes and go-git for reading checkouts.
type DefaultInspector struct {
	runner runner.Runner
}

// NewInspector creates an inspector that runs git through r.
func NewInspector(r runner.Runner) *DefaultInspector {
	return &DefaultInspector{runner: r}
}

func (d *DefaultInspector) IsInstalled(ctx context.Context) bool {
	_, err := d.versionOutput(ctx)
	return err == nil
}

func (d *DefaultInspector) InstalledVersion(ctx context.Context) string {
	out, err := d.versionOutput(ctx)
	if err != nil {
		return ""
	}
	return ParseVersionOutput(out)
}

func (d *DefaultInspector) versionOutput(ctx context.Context) (string, error) {
	result, err := d.runner.Execute(ctx, runner.Command{
		Args:    []string{"git", "--version"},
		Capture: true,
		Check:   true,
	})
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}

func (d *DefaultInspector) IsRepository(root string) bool {
	return fsutil.Exists(filepath.Join(root, constants.GitDirName))
}

func (d *DefaultInspector) Revision(dir string) string {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	return head.Hash().String()
}

// ParseVersionOutput extracts the version from `git --version` output.
func ParseVersionOutput(out string) string {
	m := versionRegex.FindStringSubmatch(strings.TrimSpace(out))
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
