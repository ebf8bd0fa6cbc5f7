package git

import "context"

// Inspector answers the git questions the orchestrator asks before it
// touches submodules.
type Inspector interface {
	// IsInstalled reports whether a git executable responds to --version.
	IsInstalled(ctx context.Context) bool

	// InstalledVersion returns the version reported by the git executable,
	// e.g. "2.43.0". Empty when git is missing or the output is unrecognized.
	InstalledVersion(ctx context.Context) string

	// IsRepository reports whether root contains a .git entry. A .git file
	// (worktree or submodule checkout) counts as well as a directory.
	IsRepository(root string) bool

	// Revision returns the HEAD commit hash of the checkout at dir, or an
	// empty string when it cannot be read.
	Revision(dir string) string
}
