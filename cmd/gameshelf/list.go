package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kerbaras/gameshelf/pkg/data"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every game in the catalog",
	Long:  "Display the catalog in a formatted table with the actions each game offers",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := controller.LoadCatalog(cmd.Context())
		out := cmd.OutOrStdout()

		if len(catalog) == 0 {
			fmt.Fprintln(out, "🎮 No games in the catalog.")
			return nil
		}

		columns := []table.Column{
			{Title: "Name", Width: 30},
			{Title: "Source", Width: 8},
			{Title: "Linux", Width: 8},
			{Title: "Windows", Width: 8},
			{Title: "Status", Width: 14},
		}

		rows := []table.Row{}
		for _, game := range catalog {
			status := "released"
			if game.Dev {
				status = "in development"
			}
			rows = append(rows, table.Row{
				truncateString(game.Name, 28),
				availability(game, data.ActionSource),
				availability(game, data.ActionLinux),
				availability(game, data.ActionWindows),
				status,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)+2),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Cell
		t.SetStyles(s)

		fmt.Fprintf(out, "\n🎮 Catalog (%d games)\n\n", len(catalog))
		fmt.Fprintln(out, t.View())
		return nil
	},
}

func availability(game data.GameRecord, action data.Action) string {
	if _, enabled := game.Action(action); enabled {
		return "✓"
	}
	return "-"
}

func truncateString(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
