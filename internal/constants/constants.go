package constants

import "os"

// Layout constants
const (
	// DefaultSubmodulesDir is the submodules directory relative to the root.
	// The spelling is load-bearing: existing checkouts and saved configurations use it.
	DefaultSubmodulesDir = "src/platfom"

	// GitDirName marks a git working tree.
	GitDirName = ".git"
)

// Component entry points, probed in this order.
const (
	PrimaryEntryPoint  = "main.py"
	FallbackEntryPoint = "app.py"
)

// Logging defaults
const (
	// DefaultLogLevel is the level used when neither flags nor environment set one.
	DefaultLogLevel = "INFO"

	// VerboseLogLevel is the level selected by --verbose.
	VerboseLogLevel = "DEBUG"
)

// Environment variables
const (
	// EnvPrefix is the prefix shared by all factoryai environment variables.
	EnvPrefix = "FACTORYAI_"

	// EnvLogLevel overrides the log level.
	EnvLogLevel = "FACTORYAI_LOG_LEVEL"

	// EnvLogFile overrides the log file path.
	EnvLogFile = "FACTORYAI_LOG_FILE"

	// EnvPython overrides the interpreter command line used to launch components.
	EnvPython = "FACTORYAI_PYTHON"
)

// File permissions
const (
	// DirPermissions is the default permission mode for directories.
	DirPermissions os.FileMode = 0755

	// FilePermissions is the permission mode for saved configuration files.
	FilePermissions os.FileMode = 0644
)
