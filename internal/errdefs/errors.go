// Package errdefs defines the error taxonomy shared by every factoryai package.
//
// All failures are a single *Error type. Kind names the broad class a caller
// reports on (configuration, missing submodule, component, validation), Code
// names the precise condition and is what errors.Is matches against.
package errdefs

import (
	"errors"
	"fmt"
)

// Kind is the error class.
type Kind string

const (
	KindBase              Kind = "factoryai"
	KindConfiguration     Kind = "configuration"
	KindSubmoduleNotFound Kind = "submodule_not_found"
	KindComponent         Kind = "component"
	KindValidation        Kind = "validation"
)

// Code identifies a specific failure within a Kind.
type Code string

const (
	CodeUnknownComponent     Code = "UNKNOWN_COMPONENT"
	CodeInvalidConfiguration Code = "INVALID_CONFIGURATION"
	CodeConfigNotFound       Code = "CONFIG_NOT_FOUND"
	CodeConfigIO             Code = "CONFIG_IO"

	CodeSubmoduleNotFound Code = "SUBMODULE_NOT_FOUND"

	CodeComponentDisabled Code = "COMPONENT_DISABLED"
	CodeNoEntryPoint      Code = "NO_ENTRY_POINT"
	CodeExecutionFailed   Code = "EXECUTION_FAILED"

	CodeInvalidVersion   Code = "INVALID_VERSION"
	CodeInvalidPath      Code = "INVALID_PATH"
	CodePermissionDenied Code = "PERMISSION_DENIED"

	CodeCommandNotFound  Code = "COMMAND_NOT_FOUND"
	CodeCommandFailed    Code = "COMMAND_FAILED"
	CodeGitNotInstalled  Code = "GIT_NOT_INSTALLED"
	CodeNotGitRepository Code = "NOT_GIT_REPOSITORY"
	CodeSyncFailed       Code = "SYNC_FAILED"
	CodeDirectory        Code = "DIRECTORY"
)

var codeKinds = map[Code]Kind{
	CodeUnknownComponent:     KindConfiguration,
	CodeInvalidConfiguration: KindConfiguration,
	CodeConfigNotFound:       KindConfiguration,
	CodeConfigIO:             KindConfiguration,
	CodeSubmoduleNotFound:    KindSubmoduleNotFound,
	CodeComponentDisabled:    KindComponent,
	CodeNoEntryPoint:         KindComponent,
	CodeExecutionFailed:      KindComponent,
	CodeInvalidVersion:       KindValidation,
	CodeInvalidPath:          KindValidation,
	CodePermissionDenied:     KindValidation,
}

// KindOf returns the class a code belongs to. Infrastructure codes map to KindBase.
func KindOf(code Code) Kind {
	if k, ok := codeKinds[code]; ok {
		return k
	}
	return KindBase
}

// Sentinels for errors.Is. They carry only a code.
var (
	ErrUnknownComponent     = &Error{Code: CodeUnknownComponent}
	ErrInvalidConfiguration = &Error{Code: CodeInvalidConfiguration}
	ErrConfigNotFound       = &Error{Code: CodeConfigNotFound}
	ErrConfigIO             = &Error{Code: CodeConfigIO}
	ErrSubmoduleNotFound    = &Error{Code: CodeSubmoduleNotFound}
	ErrComponentDisabled    = &Error{Code: CodeComponentDisabled}
	ErrNoEntryPoint         = &Error{Code: CodeNoEntryPoint}
	ErrExecutionFailed      = &Error{Code: CodeExecutionFailed}
	ErrInvalidVersion       = &Error{Code: CodeInvalidVersion}
	ErrInvalidPath          = &Error{Code: CodeInvalidPath}
	ErrPermissionDenied     = &Error{Code: CodePermissionDenied}
	ErrCommandNotFound      = &Error{Code: CodeCommandNotFound}
	ErrCommandFailed        = &Error{Code: CodeCommandFailed}
	ErrGitNotInstalled      = &Error{Code: CodeGitNotInstalled}
	ErrNotGitRepository     = &Error{Code: CodeNotGitRepository}
	ErrSyncFailed           = &Error{Code: CodeSyncFailed}
	ErrDirectory            = &Error{Code: CodeDirectory}
)

// Error is the single error type of the taxonomy.
type Error struct {
	Kind      Kind
	Code      Code
	Message   string
	Details   string // remediation hint or extra context, printed separately by the CLI
	Component string
	ExitCode  int
	Cause     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// New builds an error whose Kind is derived from code.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Kind:    KindOf(code),
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap builds an error with an underlying cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	e := New(code, format, args...)
	e.Cause = cause
	return e
}

// WithDetails sets the details text and returns the error for chaining.
func (e *Error) WithDetails(format string, args ...any) *Error {
	e.Details = fmt.Sprintf(format, args...)
	return e
}

// WithComponent tags the error with a component id.
func (e *Error) WithComponent(id string) *Error {
	e.Component = id
	return e
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of the given class.
// KindBase matches every taxonomy error.
func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	if !ok {
		return false
	}
	return kind == KindBase || e.Kind == kind
}

// IsFactoryError reports whether err belongs to the taxonomy at all.
func IsFactoryError(err error) bool {
	return IsKind(err, KindBase)
}
