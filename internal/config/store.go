package config

import (
	"encoding/json"
	"errors"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/ruslanmv/factoryai/internal/constants"
	"github.com/ruslanmv/factoryai/internal/errdefs"
)

// Save writes the configuration record to path as indented JSON.
func (c *Configuration) Save(fsys afero.Fs, path string) error {
	data, err := json.MarshalIndent(c.Serialize(), "", "  ")
	if err != nil {
		return errdefs.Wrap(errdefs.CodeConfigIO, err, "Failed to save configuration: %v", err)
	}
	data = append(data, '\n')
	if err := afero.WriteFile(fsys, path, data, constants.FilePermissions); err != nil {
		return errdefs.Wrap(errdefs.CodeConfigIO, err, "Failed to save configuration: %v", err)
	}
	return nil
}

// Load reads and decodes a configuration record from path.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errdefs.Wrap(errdefs.CodeConfigNotFound, err, "Configuration file not found: %s", path)
		}
		return nil, errdefs.Wrap(errdefs.CodeConfigIO, err, "Failed to load configuration: %v", err)
	}
	return Deserialize(data)
}
