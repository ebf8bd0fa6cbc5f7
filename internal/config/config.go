// Package config holds the component registry and the configuration store:
// path resolution against the root directory, availability checks and the
// persisted JSON record.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ruslanmv/factoryai/internal/constants"
	"github.com/ruslanmv/factoryai/internal/errdefs"
)

// Configuration is built once per invocation and mutated only through its
// setters before any orchestrator operation runs.
type Configuration struct {
	rootDir       string
	submodulesDir string
	logLevel      string
	logFile       string
	components    map[string]ComponentDescriptor
}

// Option customizes a Configuration at construction.
type Option func(*Configuration)

// WithSubmodulesDir sets the submodules directory. Relative paths are joined onto the root.
func WithSubmodulesDir(dir string) Option {
	return func(c *Configuration) { c.submodulesDir = dir }
}

// WithLogLevel sets the log level string.
func WithLogLevel(level string) Option {
	return func(c *Configuration) { c.logLevel = level }
}

// WithLogFile sets the log file path. An empty path means no log file.
func WithLogFile(path string) Option {
	return func(c *Configuration) { c.logFile = path }
}

// WithComponents supplies the component mapping. An empty mapping is
// replaced by DefaultComponents.
func WithComponents(components map[string]ComponentDescriptor) Option {
	return func(c *Configuration) {
		c.components = make(map[string]ComponentDescriptor, len(components))
		for id, d := range components {
			c.components[id] = d
		}
	}
}

// New builds a Configuration rooted at rootDir.
func New(rootDir string, opts ...Option) (*Configuration, error) {
	c := &Configuration{
		submodulesDir: constants.DefaultSubmodulesDir,
		logLevel:      constants.DefaultLogLevel,
	}
	for _, opt := range opts {
		opt(c)
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, errdefs.Wrap(errdefs.CodeInvalidConfiguration, err, "invalid root directory %q: %v", rootDir, err)
	}
	c.rootDir = absRoot

	if c.submodulesDir == "" {
		c.submodulesDir = constants.DefaultSubmodulesDir
	}
	if !filepath.IsAbs(c.submodulesDir) {
		c.submodulesDir = filepath.Join(c.rootDir, c.submodulesDir)
	}

	if len(c.components) == 0 {
		c.components = DefaultComponents()
	}
	return c, nil
}

func (c *Configuration) RootDir() string       { return c.rootDir }
func (c *Configuration) SubmodulesDir() string { return c.submodulesDir }
func (c *Configuration) LogLevel() string      { return c.logLevel }

// LogFile returns the log file path, or "" when logging to a file is off.
func (c *Configuration) LogFile() string { return c.logFile }

func (c *Configuration) SetLogLevel(level string) { c.logLevel = level }
func (c *Configuration) SetLogFile(path string)   { c.logFile = path }

// SetEnabled toggles a component's enabled flag.
func (c *Configuration) SetEnabled(id string, enabled bool) error {
	d, ok := c.components[id]
	if !ok {
		return errdefs.UnknownComponent(id)
	}
	d.Enabled = enabled
	c.components[id] = d
	return nil
}

// IDs returns the component ids in sorted order.
func (c *Configuration) IDs() []string {
	ids := make([]string, 0, len(c.components))
	for id := range c.components {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Components returns a copy of the component mapping.
func (c *Configuration) Components() map[string]ComponentDescriptor {
	out := make(map[string]ComponentDescriptor, len(c.components))
	for id, d := range c.components {
		out[id] = d
	}
	return out
}

// Descriptor looks up a component by id.
func (c *Configuration) Descriptor(id string) (ComponentDescriptor, error) {
	d, ok := c.components[id]
	if !ok {
		return ComponentDescriptor{}, errdefs.UnknownComponent(id)
	}
	return d, nil
}

// ResolvePath returns the absolute directory of a component.
func (c *Configuration) ResolvePath(id string) (string, error) {
	d, err := c.Descriptor(id)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(d.Path) {
		return filepath.Clean(d.Path), nil
	}
	return filepath.Join(c.rootDir, filepath.FromSlash(d.Path)), nil
}

// IsAvailable reports whether the component exists and its directory is present.
func (c *Configuration) IsAvailable(id string) bool {
	dir, err := c.ResolvePath(id)
	if err != nil {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func (c *Configuration) String() string {
	return fmt.Sprintf("Configuration(root=%s, submodules=%s, components=%d)", c.rootDir, c.submodulesDir, len(c.components))
}
