// Package runner executes external commands and normalizes their outcome
// into a Result or an errdefs error.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/ruslanmv/factoryai/internal/errdefs"
	"github.com/ruslanmv/factoryai/internal/logging"
)

// Exec implements Runner with os/exec.
type Exec struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger logging.Logger
}

// Option customizes an Exec runner.
type Option func(*Exec)

// WithStreams sets the streams inherited by non-capturing commands.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Exec) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(logger logging.Logger) Option {
	return func(e *Exec) { e.logger = logger }
}

// NewExec creates a runner bound to the process's standard streams.
func NewExec(opts ...Option) *Exec {
	e := &Exec{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Exec) Execute(ctx context.Context, command Command) (*Result, error) {
	if len(command.Args) == 0 {
		return nil, errdefs.CommandNotFound("", nil)
	}
	e.logger.Debug("Running command", "command", command.String(), "dir", command.Dir)

	name := command.Args[0]
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, errdefs.CommandNotFound(name, err)
	}

	cmd := exec.CommandContext(ctx, path, command.Args[1:]...)
	cmd.Args[0] = name
	cmd.Dir = command.Dir

	var stdout, stderr bytes.Buffer
	if command.Capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdin = e.stdin
		cmd.Stdout = e.stdout
		cmd.Stderr = e.stderr
	}

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			exitCode = exitErr.ExitCode()
		case errors.Is(err, exec.ErrNotFound):
			return nil, errdefs.CommandNotFound(name, err)
		default:
			return nil, errdefs.Wrap(errdefs.CodeCommandFailed, err, "Failed to run command: %v", err).
				WithDetails("Command: %s", command.String())
		}
	}

	result := &Result{ExitCode: exitCode}
	if command.Capture {
		result.Stdout = stdout.String()
		result.Stderr = stderr.String()
	}

	if command.Check && exitCode != 0 {
		return result, errdefs.CommandFailed(exitCode, command.String(), result.Stderr)
	}
	return result, nil
}
