package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ruslanmv/factoryai/internal/component"
	"github.com/ruslanmv/factoryai/internal/config"
	"github.com/ruslanmv/factoryai/internal/constants"
	"github.com/ruslanmv/factoryai/internal/fsutil"
	"github.com/ruslanmv/factoryai/internal/logging"
	"github.com/ruslanmv/factoryai/internal/orchestrator"
	"github.com/ruslanmv/factoryai/internal/runner"
	"github.com/ruslanmv/factoryai/internal/terminal"
	"github.com/ruslanmv/factoryai/internal/version"
)

// errReported marks a failure whose output has already been written.
var errReported = errors.New("reported")

var stdinIsTerminal = terminal.IsTerminal

// app carries the per-invocation state built by the root command.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	fs       afero.Fs
	cfg      *config.Configuration
	logger   logging.Logger
	orch     *orchestrator.Orchestrator
	format   terminal.Format
	closeLog func() error
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, fs: afero.NewOsFs()}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if a.closeLog != nil {
		_ = a.closeLog()
	}
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		terminal.NewPrinter(stderr).Error(err)
	}
	return 1
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "factoryai",
		Short: "FactoryAI Suite - AI-Powered Software Development Automation",
		Long: `FactoryAI Suite - AI-Powered Software Development Automation
An orchestrated suite of AI tools for end-to-end development.`,
		Example: `  factoryai sync                    # Sync all submodules
  factoryai status                  # Show component status
  factoryai run app                 # Run Factory-App-AI
  factoryai run feature             # Run Factory-Feature
  factoryai validate                # Validate installation`,
		Version:       version.Current(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.SetVersionTemplate("FactoryAI {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose output")
	flags.String("log-file", "", "Log file path")
	flags.Bool("log-json", false, "Write log records as JSON")
	flags.String("config", "", "Load configuration from a saved JSON file")
	flags.String("env-file", "", "Load environment variables from a .env file")
	flags.StringP("output", "o", string(terminal.FormatTable), "Output format for status, info and validate (table, json, yaml)")

	rootCmd.AddCommand(
		newSyncCmd(a),
		newStatusCmd(a),
		newInfoCmd(a),
		newValidateCmd(a),
		newRunCmd(a),
		newListCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// setup builds the configuration, logger and orchestrator from the global flags.
func (a *app) setup(cmd *cobra.Command) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("invalid verbose flag: %w", err)
	}
	logFile, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return fmt.Errorf("invalid log-file flag: %w", err)
	}
	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return fmt.Errorf("invalid log-json flag: %w", err)
	}
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("invalid config flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}
	if a.format, err = terminal.ParseFormat(output); err != nil {
		return err
	}

	if err := loadEnvFile(cmd); err != nil {
		return err
	}

	if configFile != "" {
		a.cfg, err = config.Load(a.fs, configFile)
	} else {
		a.cfg, err = config.Default()
	}
	if err != nil {
		return err
	}
	if verbose {
		a.cfg.SetLogLevel(constants.VerboseLogLevel)
	}
	if logFile != "" {
		if err := fsutil.ValidatePath(logFile, false); err != nil {
			return err
		}
		a.cfg.SetLogFile(logFile)
	}

	logger, closeLog, err := logging.New(logging.Config{
		Level:  a.cfg.LogLevel(),
		Output: a.stderr,
		File:   a.cfg.LogFile(),
		JSON:   logJSON,
	})
	if err != nil {
		return err
	}
	a.logger = logger
	a.closeLog = closeLog

	interpreter, err := component.DefaultInterpreter()
	if err != nil {
		return err
	}

	a.orch = orchestrator.New(a.cfg,
		orchestrator.WithLogger(logger),
		orchestrator.WithRunner(runner.NewExec(runner.WithLogger(logger))),
		orchestrator.WithInterpreter(interpreter),
		orchestrator.WithVersion(version.Current()),
	)
	return nil
}

// loadEnvFile loads --env-file into the process environment. Variables
// already set win over the file.
func loadEnvFile(cmd *cobra.Command) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if envFile == "" {
		return nil
	}
	absPath, err := filepath.Abs(filepath.Clean(envFile))
	if err != nil {
		return fmt.Errorf("failed to resolve env file path: %w", err)
	}
	if err := fsutil.ValidatePath(absPath, true); err != nil {
		return err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("failed to stat env file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("env file path '%s' is not a regular file", envFile)
	}
	if err := godotenv.Load(absPath); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", absPath, err)
	}
	return nil
}
