package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	markOK   = "✓"
	markFail = "✗"
	markWarn = "⚠"
)

// Styles holds the lipgloss styles used for one output stream.
type Styles struct {
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style
	Title   lipgloss.Style
	Details lipgloss.Style
}

// NewStyles builds styles for w. Writers that should not receive colour
// get unstyled output.
func NewStyles(w io.Writer) Styles {
	if !ShouldUseColor(w) {
		plain := lipgloss.NewStyle()
		return Styles{Success: plain, Failure: plain, Warning: plain, Title: plain, Details: plain}
	}
	r := lipgloss.NewRenderer(w)
	return Styles{
		Success: r.NewStyle().Foreground(lipgloss.Color("#5FD787")),
		Failure: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#FFB86C")),
		Title:   r.NewStyle().Bold(true),
		Details: r.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true),
	}
}

// Mark returns a styled check mark for ok, a cross otherwise.
func (s Styles) Mark(ok bool) string {
	if ok {
		return s.Success.Render(markOK)
	}
	return s.Failure.Render(markFail)
}
