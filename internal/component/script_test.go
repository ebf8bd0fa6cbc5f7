package component

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruslanmv/factoryai/internal/errdefs"
	"github.com/ruslanmv/factoryai/internal/logging"
	"github.com/ruslanmv/factoryai/internal/runner"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestScript_EntryPoint(t *testing.T) {
	t.Run("Should prefer main.py over app.py", func(t *testing.T) {
		dir := t.TempDir()
		main := writeScript(t, dir, "main.py", "")
		writeScript(t, dir, "app.py", "")

		got, err := NewScript("factory-app-ai", dir, runner.NewRecorder()).EntryPoint()
		require.NoError(t, err)
		assert.Equal(t, main, got)
	})

	t.Run("Should fall back to app.py", func(t *testing.T) {
		dir := t.TempDir()
		app := writeScript(t, dir, "app.py", "")

		got, err := NewScript("factory-app-ai", dir, runner.NewRecorder()).EntryPoint()
		require.NoError(t, err)
		assert.Equal(t, app, got)
	})

	t.Run("Should fail with NoEntryPoint naming the directory", func(t *testing.T) {
		dir := t.TempDir()

		_, err := NewScript("factory-app-ai", dir, runner.NewRecorder()).EntryPoint()
		require.Error(t, err)
		assert.ErrorIs(t, err, errdefs.ErrNoEntryPoint)
		assert.True(t, errdefs.IsKind(err, errdefs.KindComponent))
		assert.Contains(t, err.Error(), dir)
		assert.Contains(t, err.Error(), "factory-app-ai")
	})
}

func TestScript_Invoke(t *testing.T) {
	t.Run("Should run interpreter, script and args in the component directory", func(t *testing.T) {
		dir := t.TempDir()
		main := writeScript(t, dir, "main.py", "")
		rec := runner.NewRecorder()
		s := NewScript("factory-app-ai", dir, rec, WithInterpreter([]string{"python3", "-u"}))

		code, err := s.Invoke(t.Context(), []string{"--port", "8080"}, true)
		require.NoError(t, err)
		assert.Equal(t, 0, code)

		require.Len(t, rec.Commands, 1)
		cmd := rec.Commands[0]
		assert.Equal(t, []string{"python3", "-u", main, "--port", "8080"}, cmd.Args)
		assert.Equal(t, dir, cmd.Dir)
		assert.False(t, cmd.Capture)
		assert.False(t, cmd.Check)
	})

	t.Run("Should capture and log output when non-interactive", func(t *testing.T) {
		dir := t.TempDir()
		main := writeScript(t, dir, "main.py", "")
		rec := runner.NewRecorder().On("python3 "+main, runner.Response{
			Result: runner.Result{Stdout: "serving\n", Stderr: "deprecated\n"},
		})
		var buf bytes.Buffer
		logger, _, err := logging.New(logging.Config{Level: "DEBUG", Output: &buf})
		require.NoError(t, err)

		code, err := NewScript("factory-app-ai", dir, rec, WithLogger(logger)).Invoke(t.Context(), nil, false)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.True(t, rec.Commands[0].Capture)
		assert.Contains(t, buf.String(), "INFO")
		assert.Contains(t, buf.String(), "serving")
		assert.Contains(t, buf.String(), "ERRO")
		assert.Contains(t, buf.String(), "deprecated")
	})

	t.Run("Should fail with ExecutionFailed carrying the exit code", func(t *testing.T) {
		dir := t.TempDir()
		main := writeScript(t, dir, "main.py", "")
		rec := runner.NewRecorder().On("python3 "+main, runner.Response{Result: runner.Result{ExitCode: 2}})

		code, err := NewScript("factory-app-ai", dir, rec).Invoke(t.Context(), nil, true)
		require.Error(t, err)
		assert.Equal(t, 2, code)
		assert.ErrorIs(t, err, errdefs.ErrExecutionFailed)
		e, ok := errdefs.As(err)
		require.True(t, ok)
		assert.Equal(t, 2, e.ExitCode)
		assert.Equal(t, "factory-app-ai", e.Component)
		assert.Contains(t, e.Message, "exited with code 2")
	})

	t.Run("Should preserve the message of other failures", func(t *testing.T) {
		dir := t.TempDir()
		writeScript(t, dir, "main.py", "")
		rec := runner.NewRecorder().Missing("python3")

		_, err := NewScript("factory-app-ai", dir, rec).Invoke(t.Context(), nil, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, errdefs.ErrExecutionFailed)
		assert.Contains(t, err.Error(), "Command not found: python3")
		assert.True(t, errors.Is(err, errdefs.ErrCommandNotFound))
	})

	t.Run("Should not spawn anything when the directory is missing", func(t *testing.T) {
		rec := runner.NewRecorder()
		missing := filepath.Join(t.TempDir(), "Factory-App-AI")

		_, err := NewScript("factory-app-ai", missing, rec).Invoke(t.Context(), nil, true)
		assert.ErrorIs(t, err, errdefs.ErrSubmoduleNotFound)
		assert.Empty(t, rec.Commands)
	})

	t.Run("Should not spawn anything without an entry point", func(t *testing.T) {
		rec := runner.NewRecorder()

		_, err := NewScript("factory-app-ai", t.TempDir(), rec).Invoke(t.Context(), nil, true)
		assert.ErrorIs(t, err, errdefs.ErrNoEntryPoint)
		assert.Empty(t, rec.Commands)
	})

	t.Run("Should run a real script end to end", func(t *testing.T) {
		dir := t.TempDir()
		writeScript(t, dir, "main.py", "test \"$1\" = ok\n")
		s := NewScript("factory-app-ai", dir, runner.NewExec(), WithInterpreter([]string{"sh"}))

		code, err := s.Invoke(t.Context(), []string{"ok"}, false)
		require.NoError(t, err)
		assert.Equal(t, 0, code)

		code, err = s.Invoke(t.Context(), []string{"nope"}, false)
		assert.ErrorIs(t, err, errdefs.ErrExecutionFailed)
		assert.Equal(t, 1, code)
	})
}

func TestDefaultInterpreter(t *testing.T) {
	t.Run("Should split the override like a shell", func(t *testing.T) {
		t.Setenv("FACTORYAI_PYTHON", `python3 -X "utf8=1"`)

		argv, err := DefaultInterpreter()
		require.NoError(t, err)
		assert.Equal(t, []string{"python3", "-X", "utf8=1"}, argv)
	})

	t.Run("Should reject an unterminated quote", func(t *testing.T) {
		t.Setenv("FACTORYAI_PYTHON", `python3 "-u`)

		_, err := DefaultInterpreter()
		assert.ErrorIs(t, err, errdefs.ErrInvalidConfiguration)
	})

	t.Run("Should fall back to a python name", func(t *testing.T) {
		t.Setenv("FACTORYAI_PYTHON", "")

		argv, err := DefaultInterpreter()
		require.NoError(t, err)
		require.Len(t, argv, 1)
		assert.Contains(t, argv[0], "py")
	})
}
