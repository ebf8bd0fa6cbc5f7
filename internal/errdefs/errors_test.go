package errdefs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	t.Run("Should match sentinel by code", func(t *testing.T) {
		err := ComponentDisabled("factory-debug")
		assert.ErrorIs(t, err, ErrComponentDisabled)
		assert.NotErrorIs(t, err, ErrNoEntryPoint)
	})

	t.Run("Should match through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", NoEntryPoint("factory-app-ai", "/tmp/x"))
		assert.ErrorIs(t, err, ErrNoEntryPoint)
	})

	t.Run("Should not match plain errors", func(t *testing.T) {
		assert.NotErrorIs(t, errors.New("boom"), ErrExecutionFailed)
	})
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		code Code
		kind Kind
	}{
		{CodeUnknownComponent, KindConfiguration},
		{CodeConfigNotFound, KindConfiguration},
		{CodeSubmoduleNotFound, KindSubmoduleNotFound},
		{CodeComponentDisabled, KindComponent},
		{CodeExecutionFailed, KindComponent},
		{CodeInvalidVersion, KindValidation},
		{CodeCommandNotFound, KindBase},
		{CodeGitNotInstalled, KindBase},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.kind, KindOf(tc.code), "code %s", tc.code)
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", SubmoduleNotFound("factory-feature"))

	assert.True(t, IsKind(err, KindSubmoduleNotFound))
	assert.True(t, IsKind(err, KindBase))
	assert.False(t, IsKind(err, KindComponent))
	assert.True(t, IsFactoryError(err))
	assert.False(t, IsFactoryError(errors.New("plain")))
}

func TestConstructors(t *testing.T) {
	t.Run("Should carry exit code and component for non-zero exit", func(t *testing.T) {
		err := ExitedNonZero("factory-app-ai", 3)
		assert.Equal(t, "Component 'factory-app-ai' failed: Component exited with code 3", err.Error())
		assert.Equal(t, 3, err.ExitCode)
		assert.Equal(t, "factory-app-ai", err.Component)
		assert.Equal(t, KindComponent, err.Kind)
	})

	t.Run("Should preserve the original message when wrapping", func(t *testing.T) {
		cause := errors.New("fork/exec: permission denied")
		err := ExecutionError("factory-feature", cause)
		assert.Contains(t, err.Error(), "fork/exec: permission denied")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Should include command line and stderr in details", func(t *testing.T) {
		err := CommandFailed(128, "git submodule update", "fatal: not a repo")
		assert.Equal(t, "Command failed with exit code 128", err.Error())
		assert.Contains(t, err.Details, "git submodule update")
		assert.Contains(t, err.Details, "fatal: not a repo")
	})

	t.Run("Should extract the taxonomy error from a chain", func(t *testing.T) {
		e, ok := As(fmt.Errorf("x: %w", CommandNotFound("git", nil)))
		require.True(t, ok)
		assert.Equal(t, CodeCommandNotFound, e.Code)
		assert.NotEmpty(t, e.Details)
	})
}
