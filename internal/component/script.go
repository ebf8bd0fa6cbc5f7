package component

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/shlex"

	"github.com/ruslanmv/factoryai/internal/constants"
	"github.com/ruslanmv/factoryai/internal/errdefs"
	"github.com/ruslanmv/factoryai/internal/fsutil"
	"github.com/ruslanmv/factoryai/internal/logging"
	"github.com/ruslanmv/factoryai/internal/platform"
	"github.com/ruslanmv/factoryai/internal/runner"
)

var entryPoints = []string{constants.PrimaryEntryPoint, constants.FallbackEntryPoint}

// Script is a component whose entry point is an interpreted script.
type Script struct {
	id          string
	dir         string
	interpreter []string
	runner      runner.Runner
	logger      logging.Logger
}

// Option customizes a Script.
type Option func(*Script)

// WithInterpreter sets the interpreter argv placed before the script path.
func WithInterpreter(argv []string) Option {
	return func(s *Script) {
		if len(argv) > 0 {
			s.interpreter = append([]string(nil), argv...)
		}
	}
}

// WithLogger sets the logger receiving captured output.
func WithLogger(logger logging.Logger) Option {
	return func(s *Script) { s.logger = logger }
}

// NewScript creates a component rooted at dir that runs through r.
func NewScript(id, dir string, r runner.Runner, opts ...Option) *Script {
	s := &Script{
		id:          id,
		dir:         dir,
		interpreter: []string{"python3"},
		runner:      r,
		logger:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Script) ID() string {
	return s.id
}

func (s *Script) ValidatePresence() error {
	if !fsutil.IsDir(s.dir) {
		return errdefs.SubmoduleNotFound(s.id)
	}
	return nil
}

func (s *Script) EntryPoint() (string, error) {
	for _, name := range entryPoints {
		candidate := filepath.Join(s.dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errdefs.NoEntryPoint(s.id, s.dir)
}

func (s *Script) Invoke(ctx context.Context, args []string, interactive bool) (int, error) {
	if err := s.ValidatePresence(); err != nil {
		return 0, err
	}
	script, err := s.EntryPoint()
	if err != nil {
		return 0, err
	}

	argv := make([]string, 0, len(s.interpreter)+1+len(args))
	argv = append(argv, s.interpreter...)
	argv = append(argv, script)
	argv = append(argv, args...)

	s.logger.Info("Running component", "component", s.id, "entry_point", script, "interactive", interactive)

	result, err := s.runner.Execute(ctx, runner.Command{
		Args:    argv,
		Dir:     s.dir,
		Capture: !interactive,
	})
	if err != nil {
		return 0, errdefs.ExecutionError(s.id, err)
	}

	if !interactive {
		if out := strings.TrimRight(result.Stdout, "\n"); out != "" {
			s.logger.Info("Component output", "component", s.id, "output", out)
		}
		if out := strings.TrimRight(result.Stderr, "\n"); out != "" {
			s.logger.Error("Component errors", "component", s.id, "output", out)
		}
	}

	if result.ExitCode != 0 {
		return result.ExitCode, errdefs.ExitedNonZero(s.id, result.ExitCode)
	}
	return 0, nil
}

// DefaultInterpreter returns the interpreter argv used to launch scripts.
// FACTORYAI_PYTHON wins when set and is split like a shell command line;
// otherwise the first Python found on PATH is used.
func DefaultInterpreter() ([]string, error) {
	if raw := strings.TrimSpace(os.Getenv(constants.EnvPython)); raw != "" {
		parts, err := shlex.Split(raw)
		if err != nil {
			return nil, errdefs.Wrap(errdefs.CodeInvalidConfiguration, err,
				"Invalid %s value %q: %v", constants.EnvPython, raw, err)
		}
		if len(parts) == 0 {
			return nil, errdefs.New(errdefs.CodeInvalidConfiguration, "Invalid %s value %q", constants.EnvPython, raw)
		}
		return parts, nil
	}

	candidates := platform.PythonCandidates()
	for _, name := range candidates {
		if _, err := exec.LookPath(name); err == nil {
			return []string{name}, nil
		}
	}
	return []string{candidates[0]}, nil
}
