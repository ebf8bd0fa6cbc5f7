package errdefs

import "fmt"

// UnknownComponent is returned by lookups of an id missing from the configuration.
func UnknownComponent(id string) *Error {
	return New(CodeUnknownComponent, "Component '%s' not found in configuration.", id).WithComponent(id)
}

// SubmoduleNotFound is returned when a component directory is absent or not initialized.
func SubmoduleNotFound(id string) *Error {
	return New(CodeSubmoduleNotFound, "Submodule '%s' not found or not initialized.", id).
		WithComponent(id).
		WithDetails("Run 'factoryai sync' or 'make sync' to initialize submodules.")
}

func componentError(code Code, id, reason string) *Error {
	return New(code, "Component '%s' failed: %s", id, reason).WithComponent(id)
}

// ComponentDisabled is returned when a disabled component is invoked.
func ComponentDisabled(id string) *Error {
	return componentError(CodeComponentDisabled, id, "Component is not enabled")
}

// NoEntryPoint is returned when neither entry-point script exists in dir.
func NoEntryPoint(id, dir string) *Error {
	return componentError(CodeNoEntryPoint, id, fmt.Sprintf("No main entry point found at %s", dir))
}

// ExitedNonZero reports a component child process that exited with a non-zero code.
func ExitedNonZero(id string, exitCode int) *Error {
	e := componentError(CodeExecutionFailed, id, fmt.Sprintf("Component exited with code %d", exitCode))
	e.ExitCode = exitCode
	return e
}

// ExecutionError wraps any other failure raised while running a component.
func ExecutionError(id string, cause error) *Error {
	e := componentError(CodeExecutionFailed, id, cause.Error())
	e.Cause = cause
	return e
}

// CommandNotFound is returned when an executable cannot be located.
func CommandNotFound(name string, cause error) *Error {
	return Wrap(CodeCommandNotFound, cause, "Command not found: %s", name).
		WithDetails("Please ensure the command is installed and in your PATH.")
}

// CommandFailed is returned for a checked command that exited non-zero.
func CommandFailed(exitCode int, cmdline, stderr string) *Error {
	e := New(CodeCommandFailed, "Command failed with exit code %d", exitCode).
		WithDetails("Command: %s\nStderr: %s", cmdline, stderr)
	e.ExitCode = exitCode
	return e
}
