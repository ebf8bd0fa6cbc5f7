// Package logging builds the structured logger handed to the orchestrator.
// There is no package-level logger; the entry point creates one and injects it.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/ruslanmv/factoryai/internal/constants"
)

// Logger is the structured logging interface used across factoryai.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

type loggerImpl struct {
	charmLogger *charmlog.Logger
}

func (l *loggerImpl) Debug(msg string, keyvals ...any) { l.charmLogger.Debug(msg, keyvals...) }
func (l *loggerImpl) Info(msg string, keyvals ...any)  { l.charmLogger.Info(msg, keyvals...) }
func (l *loggerImpl) Warn(msg string, keyvals ...any)  { l.charmLogger.Warn(msg, keyvals...) }
func (l *loggerImpl) Error(msg string, keyvals ...any) { l.charmLogger.Error(msg, keyvals...) }

// Config controls logger construction.
type Config struct {
	Level  string
	Output io.Writer // defaults to os.Stderr
	File   string    // optional; appended to alongside Output
	JSON   bool
}

// ParseLevel maps a configuration level string to a charm log level.
// Matching is case-insensitive; unknown names fall back to info.
func ParseLevel(level string) charmlog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return charmlog.DebugLevel
	case "INFO":
		return charmlog.InfoLevel
	case "WARN", "WARNING":
		return charmlog.WarnLevel
	case "ERROR":
		return charmlog.ErrorLevel
	case "CRITICAL", "FATAL":
		return charmlog.FatalLevel
	default:
		return charmlog.InfoLevel
	}
}

// New builds a logger. The returned close function releases the log file, if any.
func New(cfg Config) (Logger, func() error, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	closeFn := func() error { return nil }

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.FilePermissions)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
		}
		out = io.MultiWriter(out, f)
		closeFn = f.Close
	}

	charmLogger := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           ParseLevel(cfg.Level),
	})
	if cfg.JSON {
		charmLogger.SetFormatter(charmlog.JSONFormatter)
	}
	return &loggerImpl{charmLogger: charmLogger}, closeFn, nil
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &loggerImpl{charmLogger: charmlog.New(io.Discard)}
}
