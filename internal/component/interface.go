// Package component launches the entry-point script of a component checkout.
package component

import "context"

// Component is a launchable subproject living in its own directory.
type Component interface {
	// ID returns the component identifier.
	ID() string

	// ValidatePresence fails with SubmoduleNotFound when the component
	// directory is missing.
	ValidatePresence() error

	// EntryPoint returns the absolute path of the script to run, probing
	// main.py then app.py. Fails with NoEntryPoint when neither exists.
	EntryPoint() (string, error)

	// Invoke runs the component with args appended verbatim and returns 0
	// on success. Interactive runs inherit the terminal; otherwise output
	// is captured and logged.
	Invoke(ctx context.Context, args []string, interactive bool) (int, error)
}
