package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ruslanmv/factoryai/internal/config"
	"github.com/ruslanmv/factoryai/internal/platform"
	"github.com/ruslanmv/factoryai/internal/terminal"
	"github.com/ruslanmv/factoryai/internal/version"
)

var componentDescriptions = map[string]string{
	config.FactoryAppAI:   "Dynamic project generation using generative AI",
	config.FactoryFeature: "Intelligent feature integration for existing projects",
	config.FactoryDebug:   "AI-powered debugging and auto-fixing (Coming Soon)",
}

func newSyncCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize all git submodules",
		Args:  cobra.NoArgs,
		RunE:  a.runSync,
	}

	cmd.Flags().Bool("force", false, "Force re-initialization of submodules")

	return cmd
}

func (a *app) runSync(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("invalid force flag: %w", err)
	}

	fmt.Fprintln(a.stdout, "Synchronizing FactoryAI submodules...")
	if err := a.orch.Sync(cmd.Context(), force); err != nil {
		return err
	}
	terminal.NewPrinter(a.stdout).Success("Submodules synchronized successfully")
	return nil
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show status of all components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := a.orch.Status()
			if a.format != terminal.FormatTable {
				return terminal.Encode(a.stdout, a.format, status)
			}
			terminal.NewPrinter(a.stdout).Status(status)
			return nil
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show FactoryAI installation information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := a.orch.Describe()
			if a.format != terminal.FormatTable {
				return terminal.Encode(a.stdout, a.format, info)
			}
			terminal.NewPrinter(a.stdout).Info(info)
			return nil
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate FactoryAI installation",
		Long:  "Checks that git is installed, the root is a git repository and at least one enabled component is initialized. Exits 1 when any check fails.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := a.orch.Validate(cmd.Context())
			if a.format != terminal.FormatTable {
				if err := terminal.Encode(a.stdout, a.format, report); err != nil {
					return err
				}
			} else {
				terminal.NewPrinter(a.stdout).Validation(report)
			}
			if len(report.Errors) > 0 {
				return errReported
			}
			return nil
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <component> [-- args...]",
		Short: "Run a FactoryAI component",
		Long: `Run a FactoryAI component (app=Factory-App-AI, feature=Factory-Feature, debug=Factory-Debug).
Arguments after -- are passed to the component unchanged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runComponent,
	}

	cmd.Flags().Bool("non-interactive", false, "Run in non-interactive mode")

	return cmd
}

func (a *app) runComponent(cmd *cobra.Command, args []string) error {
	nonInteractive, err := cmd.Flags().GetBool("non-interactive")
	if err != nil {
		return fmt.Errorf("invalid non-interactive flag: %w", err)
	}

	id := config.CanonicalID(args[0])
	interactive := !nonInteractive
	if interactive && !stdinIsTerminal() {
		a.logger.Warn("stdin is not a terminal, capturing component output", "component", id)
		interactive = false
	}

	fmt.Fprintf(a.stdout, "Running %s...\n", id)
	_, err = a.orch.Run(cmd.Context(), id, args[1:], interactive)
	return err
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			terminal.NewPrinter(a.stdout).Components(componentSummaries(a.cfg))
			return nil
		},
	}
}

// componentSummaries lists the configured components, the defaults first in
// their documented order.
func componentSummaries(cfg *config.Configuration) []terminal.ComponentSummary {
	aliases := config.Aliases()
	ids := cfg.IDs()
	sort.SliceStable(ids, func(i, j int) bool { return rank(ids[i]) < rank(ids[j]) })

	summaries := make([]terminal.ComponentSummary, 0, len(ids))
	for _, id := range ids {
		d, err := cfg.Descriptor(id)
		if err != nil {
			continue
		}
		alias, ok := aliases[id]
		if !ok {
			alias = id
		}
		description, ok := componentDescriptions[id]
		if !ok {
			description = d.URL
		}
		summaries = append(summaries, terminal.ComponentSummary{Alias: alias, Name: d.Name, Description: description})
	}
	return summaries
}

var defaultOrder = []string{config.FactoryAppAI, config.FactoryFeature, config.FactoryDebug}

func rank(id string) int {
	for i, d := range defaultOrder {
		if d == id {
			return i
		}
	}
	return len(defaultOrder)
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the FactoryAI configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "save <file>",
		Short: "Save the effective configuration as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Save(a.fs, args[0]); err != nil {
				return err
			}
			terminal.NewPrinter(a.stdout).Success(fmt.Sprintf("Configuration saved to %s", args[0]))
			return nil
		},
	})

	return cmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "FactoryAI %s\n", version.Current())
			fmt.Fprintf(a.stdout, "Platform: %s\n", platform.String())
		},
	}
}
