package runner

import (
	"context"
	"strings"
)

// Command describes a single process invocation.
type Command struct {
	// Args is the argv; Args[0] is looked up on PATH.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Capture collects stdout/stderr into the Result. When false the child
	// inherits the runner's standard streams and the Result fields stay empty.
	Capture bool

	// Check turns a non-zero exit code into a CommandFailed error.
	Check bool
}

// String returns the command line as a single space-joined string.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// Result is the outcome of a command that ran to completion.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes external processes.
type Runner interface {
	// Execute runs the command synchronously and blocks until the child exits.
	// A missing executable fails with CommandNotFound; a non-zero exit with
	// Check set fails with CommandFailed.
	Execute(ctx context.Context, cmd Command) (*Result, error)
}
