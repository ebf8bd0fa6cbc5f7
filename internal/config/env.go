package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"

	"github.com/ruslanmv/factoryai/internal/constants"
)

// Default builds the configuration for the current working directory with
// environment overrides applied.
func Default() (*Configuration, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return FromEnvironment(cwd)
}

// FromEnvironment builds the default configuration rooted at root and copies
// FACTORYAI_LOG_LEVEL and FACTORYAI_LOG_FILE into it when they are set.
func FromEnvironment(root string) (*Configuration, error) {
	cfg, err := New(root)
	if err != nil {
		return nil, err
	}

	k, err := loadEnvironment()
	if err != nil {
		return nil, err
	}
	if k.Exists("log_level") {
		cfg.SetLogLevel(k.String("log_level"))
	}
	if k.Exists("log_file") {
		cfg.SetLogFile(k.String("log_file"))
	}
	return cfg, nil
}

// loadEnvironment maps FACTORYAI_* variables onto flat lower-case keys,
// e.g. FACTORYAI_LOG_LEVEL -> log_level.
func loadEnvironment() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: constants.EnvPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, constants.EnvPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return k, nil
}
