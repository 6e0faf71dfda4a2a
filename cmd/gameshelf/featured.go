package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kerbaras/gameshelf/pkg/data"
)

var featuredCmd = &cobra.Command{
	Use:   "featured",
	Short: "Show the featured games",
	RunE: func(cmd *cobra.Command, args []string) error {
		featured := controller.LoadCatalog(cmd.Context()).Featured()
		out := cmd.OutOrStdout()

		if len(featured) == 0 {
			fmt.Fprintln(out, "No featured games.")
			return nil
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers("#", "Name", "Source")

		for i, game := range featured {
			source, enabled := game.Action(data.ActionSource)
			if !enabled {
				source = "-"
			}
			t.Row(fmt.Sprintf("%d", i+1), truncateString(game.Name, 40), source)
		}

		fmt.Fprintln(out, t)
		return nil
	},
}
