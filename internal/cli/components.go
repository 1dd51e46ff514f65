package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// componentsCommand lists the registered archetypes.
func (c *CLI) componentsCommand() *cobra.Command {
	var templatePath string

	cmd := &cobra.Command{
		Use:   "components",
		Short: "List available archetypes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []string
			if templatePath != "" {
				extra = append(extra, templatePath)
			}
			gen, idx, err := c.newGenerator(cmd.Context(), true, extra)
			if err != nil {
				return err
			}

			sources := make(map[string]string, len(idx.names))
			for path, name := range idx.names {
				sources[name] = path
			}

			var rows [][]string
			for _, name := range gen.Components.Names() {
				source := "built-in"
				if path, ok := sources[name]; ok {
					source = path
				}
				rows = append(rows, []string{name, source})
			}

			headerStyle := styleMuted.Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				Headers("Component", "Source").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					switch {
					case row == -1:
						return headerStyle
					case col == 0:
						return StyleHighlight
					default:
						return StyleDim
					}
				})

			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			printNextStep("Generate one", "architectus generate -c "+rows[0][0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "also list this TOML template")
	return cmd
}
