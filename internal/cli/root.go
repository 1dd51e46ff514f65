package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/architectus/pkg/buildinfo"
	"github.com/matzehuels/architectus/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The --config flag is read before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Architectus generates procedural floor plans",
		Long:         `Architectus lays out rooms on a building lot with a measure/arrange layout engine driven by seeded archetypes, and writes the result as text, SVG, JSON or an adjacency graph.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.NewLogHooks(c.Logger).Install()
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/architectus/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	registerFlagCompletions(root)

	return root
}
