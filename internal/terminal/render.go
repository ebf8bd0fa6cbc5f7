package terminal

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ruslanmv/factoryai/internal/errdefs"
	"github.com/ruslanmv/factoryai/internal/orchestrator"
)

const (
	shortRevision = 8
	// Columns taken by everything but the path in the status table.
	statusFixedWidth = 48
	minPathWidth     = 20
)

// Printer writes human-readable reports to one stream.
type Printer struct {
	out    io.Writer
	styles Styles
	width  int
}

// NewPrinter creates a printer for out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, styles: NewStyles(out), width: Width(out)}
}

// pathWidth is the room left for the path column on a line of width columns.
func pathWidth(width int) int {
	return max(width-statusFixedWidth, minPathWidth)
}

func (p *Printer) println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func sortedIDs(statuses map[string]orchestrator.ComponentStatus) []string {
	ids := make([]string, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Success prints a check-marked message.
func (p *Printer) Success(msg string) {
	p.printf("%s %s\n", p.styles.Mark(true), msg)
}

// StatusTable renders the component status as a borderless table.
func (p *Printer) StatusTable(statuses map[string]orchestrator.ComponentStatus) {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.AppendHeader(table.Row{"", "Component", "ID", "Enabled", "Available", "Revision", "Path"})
	for _, id := range sortedIDs(statuses) {
		s := statuses[id]
		revision := s.Revision
		if len(revision) > shortRevision {
			revision = revision[:shortRevision]
		}
		t.AppendRow(table.Row{
			p.styles.Mark(s.Available),
			s.Name,
			s.ID,
			s.Enabled,
			s.Available,
			revision,
			Truncate(s.Path, pathWidth(p.width), "..."),
		})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
}

// Status prints the status report, with a sync hint when no enabled
// component is present.
func (p *Printer) Status(statuses map[string]orchestrator.ComponentStatus) {
	p.println(p.styles.Title.Render("FactoryAI Component Status"))
	p.println(Rule())
	p.StatusTable(statuses)
	p.println(Rule())

	ready := 0
	for _, s := range statuses {
		if s.Available && s.Enabled {
			ready++
		}
	}
	if ready == 0 {
		p.println()
		p.println(p.styles.Warning.Render(markWarn + " No components are initialized."))
		p.println("Run 'factoryai sync' or 'make sync' to initialize submodules.")
	}
}

// Info prints the installation information.
func (p *Printer) Info(info orchestrator.Info) {
	p.println(p.styles.Title.Render("FactoryAI Installation Information"))
	p.println(Rule())
	p.printf("Version: %s\n", info.Version)
	p.printf("Platform: %s\n", info.Platform)
	p.printf("Root Directory: %s\n", info.RootDir)
	p.printf("Submodules Directory: %s\n", info.SubmodulesDir)
	p.printf("Log Level: %s\n", info.LogLevel)
	p.println()
	p.println("Components:")

	items := make([]string, 0, len(info.Components))
	for _, id := range sortedIDs(info.Components) {
		c := info.Components[id]
		state := "Not Initialized"
		if c.Available {
			state = "Available"
		}
		items = append(items, fmt.Sprintf("%s: %s", c.Name, state))
	}
	if len(items) > 0 {
		p.println(FormatList(items, "  •"))
	}
	p.println(Rule())
}

// Validation prints the validation report.
func (p *Printer) Validation(report orchestrator.ValidationReport) {
	p.println("Validating FactoryAI installation...")
	p.println(Rule())

	gitLine := fmt.Sprintf("Git installed: %t", report.GitInstalled)
	if report.GitVersion != "" {
		gitLine += fmt.Sprintf(" (%s)", report.GitVersion)
	}
	p.printf("%s %s\n", p.styles.Mark(report.GitInstalled), gitLine)
	p.printf("%s Git repository: %t\n", p.styles.Mark(report.IsGitRepo), report.IsGitRepo)
	p.printf("%s Submodules initialized: %t\n", p.styles.Mark(report.SubmodulesInitialized), report.SubmodulesInitialized)

	p.println()
	p.println("Component Status:")
	for _, id := range sortedIDs(report.Components) {
		s := report.Components[id]
		suffix := ""
		if !s.Enabled {
			suffix = " (disabled)"
		}
		p.printf("  %s %s%s\n", p.styles.Mark(s.Available), s.Name, suffix)
	}
	p.println()
	p.println(Rule())

	if len(report.Errors) > 0 {
		p.println()
		p.println("Issues Found:")
		p.println(FormatList(report.Errors, p.styles.Mark(false)))
		p.println()
		p.println("Please resolve these issues to use FactoryAI.")
		return
	}
	p.println()
	p.Success("Installation is valid and ready to use!")
}

// ComponentSummary is one entry of the component catalogue.
type ComponentSummary struct {
	Alias       string
	Name        string
	Description string
}

// Components prints the component catalogue.
func (p *Printer) Components(components []ComponentSummary) {
	p.println(p.styles.Title.Render("Available FactoryAI Components"))
	p.println(Rule())
	for _, c := range components {
		p.println()
		p.printf("%s: %s\n", c.Alias, c.Name)
		p.printf("  %s\n", c.Description)
		p.printf("  Usage: factoryai run %s\n", c.Alias)
	}
	p.println()
	p.println(Rule())
}

// Error prints err with its details, if any.
func (p *Printer) Error(err error) {
	msg, details := err.Error(), ""
	if e, ok := errdefs.As(err); ok {
		details = e.Details
	}
	p.printf("%s %s\n", p.styles.Mark(false), p.styles.Failure.Render("Error: "+msg))
	if details != "" {
		p.println(p.styles.Details.Render("Details: " + details))
	}
}
