package config

import (
	"encoding/json"

	"github.com/ruslanmv/factoryai/internal/constants"
	"github.com/ruslanmv/factoryai/internal/errdefs"
)

// Record is the persisted form of a Configuration.
type Record struct {
	RootDir       string                      `json:"root_dir"`
	SubmodulesDir string                      `json:"submodules_dir"`
	LogLevel      string                      `json:"log_level"`
	LogFile       *string                     `json:"log_file"`
	Components    map[string]ComponentRecord `json:"components"`
}

// ComponentRecord is the persisted form of a ComponentDescriptor.
type ComponentRecord struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

// rawRecord distinguishes missing keys from zero values while decoding.
type rawRecord struct {
	RootDir       *string                        `json:"root_dir"`
	SubmodulesDir *string                        `json:"submodules_dir"`
	LogLevel      *string                        `json:"log_level"`
	LogFile       *string                        `json:"log_file"`
	Components    map[string]*rawComponentRecord `json:"components"`
}

type rawComponentRecord struct {
	Name    *string `json:"name"`
	Path    *string `json:"path"`
	URL     *string `json:"url"`
	Enabled *bool   `json:"enabled"`
}

// Serialize converts the configuration to its persisted record.
func (c *Configuration) Serialize() Record {
	r := Record{
		RootDir:       c.rootDir,
		SubmodulesDir: c.submodulesDir,
		LogLevel:      c.logLevel,
		Components:    make(map[string]ComponentRecord, len(c.components)),
	}
	if c.logFile != "" {
		logFile := c.logFile
		r.LogFile = &logFile
	}
	for id, d := range c.components {
		r.Components[id] = ComponentRecord(d)
	}
	return r
}

// MarshalJSON encodes the configuration as its persisted record.
func (c *Configuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Serialize())
}

// FromRecord builds a Configuration from a decoded record.
func FromRecord(r Record) (*Configuration, error) {
	if r.RootDir == "" {
		return nil, errdefs.New(errdefs.CodeInvalidConfiguration, "invalid configuration: key 'root_dir' is empty")
	}
	logLevel := r.LogLevel
	if logLevel == "" {
		logLevel = constants.DefaultLogLevel
	}
	opts := []Option{
		WithSubmodulesDir(r.SubmodulesDir),
		WithLogLevel(logLevel),
	}
	if r.LogFile != nil {
		opts = append(opts, WithLogFile(*r.LogFile))
	}
	components := make(map[string]ComponentDescriptor, len(r.Components))
	for id, cr := range r.Components {
		components[id] = ComponentDescriptor(cr)
	}
	opts = append(opts, WithComponents(components))
	return New(r.RootDir, opts...)
}

// Deserialize decodes a JSON record. Missing required keys and malformed
// JSON fail with an InvalidConfiguration error.
func Deserialize(data []byte) (*Configuration, error) {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errdefs.Wrap(errdefs.CodeInvalidConfiguration, err, "Invalid JSON in configuration: %v", err)
	}
	r, err := raw.record()
	if err != nil {
		return nil, err
	}
	return FromRecord(r)
}

func (raw rawRecord) record() (Record, error) {
	missing := func(key string) error {
		return errdefs.New(errdefs.CodeInvalidConfiguration, "invalid configuration: missing required key '%s'", key)
	}
	if raw.RootDir == nil {
		return Record{}, missing("root_dir")
	}
	r := Record{
		RootDir:       *raw.RootDir,
		SubmodulesDir: constants.DefaultSubmodulesDir,
		LogLevel:      constants.DefaultLogLevel,
		Components:    make(map[string]ComponentRecord, len(raw.Components)),
	}
	if raw.SubmodulesDir != nil {
		r.SubmodulesDir = *raw.SubmodulesDir
	}
	if raw.LogLevel != nil {
		r.LogLevel = *raw.LogLevel
	}
	if raw.LogFile != nil && *raw.LogFile != "" {
		r.LogFile = raw.LogFile
	}
	for id, rc := range raw.Components {
		if rc == nil {
			return Record{}, errdefs.New(errdefs.CodeInvalidConfiguration, "invalid configuration: component '%s' is null", id)
		}
		switch {
		case rc.Name == nil:
			return Record{}, missing("components." + id + ".name")
		case rc.Path == nil:
			return Record{}, missing("components." + id + ".path")
		case rc.URL == nil:
			return Record{}, missing("components." + id + ".url")
		}
		cr := ComponentRecord{Name: *rc.Name, Path: *rc.Path, URL: *rc.URL, Enabled: true}
		if rc.Enabled != nil {
			cr.Enabled = *rc.Enabled
		}
		r.Components[id] = cr
	}
	return r, nil
}
