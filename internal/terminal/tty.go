// Package terminal renders factoryai output: status tables, check marks,
// styled errors and the json/yaml encodings.
package terminal

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const defaultWidth = 80

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Width returns the column count of the terminal behind w, or 80 when w is
// not a terminal.
func Width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return defaultWidth
	}
	return cols
}

// ShouldUseColor reports whether styled output should be written to w.
// Only terminals get colour, and NO_COLOR or TERM=dumb turn it off.
func ShouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
