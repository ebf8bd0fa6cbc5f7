package runner

import (
	"context"
	"strings"
	"sync"

	"github.com/ruslanmv/factoryai/internal/errdefs"
)

// Response is a scripted outcome for Recorder.
type Response struct {
	Result Result
	Err    error
}

// Recorder is a Runner that records commands and replays scripted responses
// keyed by command line. Unscripted commands succeed with exit code 0.
type Recorder struct {
	mu        sync.Mutex
	Commands  []Command
	responses map[string]Response
	missing   map[string]bool
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		responses: make(map[string]Response),
		missing:   make(map[string]bool),
	}
}

// On scripts the response for an exact command line.
func (r *Recorder) On(cmdline string, resp Response) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[cmdline] = resp
	return r
}

// Missing makes every command whose executable is name fail with CommandNotFound.
func (r *Recorder) Missing(name string) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.missing[name] = true
	return r
}

func (r *Recorder) Execute(_ context.Context, cmd Command) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Commands = append(r.Commands, cmd)
	if len(cmd.Args) == 0 {
		return nil, errdefs.CommandNotFound("", nil)
	}
	if r.missing[cmd.Args[0]] {
		return nil, errdefs.CommandNotFound(cmd.Args[0], nil)
	}

	resp, ok := r.responses[cmd.String()]
	if !ok {
		return &Result{}, nil
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	result := resp.Result
	if !cmd.Capture {
		result.Stdout, result.Stderr = "", ""
	}
	if cmd.Check && result.ExitCode != 0 {
		return &result, errdefs.CommandFailed(result.ExitCode, cmd.String(), result.Stderr)
	}
	return &result, nil
}

// Ran reports whether a command line starting with prefix was executed.
func (r *Recorder) Ran(prefix string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Commands {
		if strings.HasPrefix(c.String(), prefix) {
			return true
		}
	}
	return false
}
