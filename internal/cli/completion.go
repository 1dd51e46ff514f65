package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/architectus/pkg/component"
	"github.com/matzehuels/architectus/pkg/render"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for architectus and write it to stdout.

Component names and output formats complete too.

  bash:        source <(architectus completion bash)
  zsh:         architectus completion zsh > "${fpath[1]}/_architectus"
  fish:        architectus completion fish | source
  powershell:  architectus completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}

	return cmd
}

// registerFlagCompletions adds value completion for --component and --format
// on every subcommand that defines them.
func registerFlagCompletions(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		if cmd.Flags().Lookup("component") != nil {
			_ = cmd.RegisterFlagCompletionFunc("component", fixedCompletions(component.Default().Names()))
		}
		if cmd.Flags().Lookup("format") != nil {
			_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletions(render.Formats))
		}
	}
}

func fixedCompletions(values []string) cobra.CompletionFunc {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
