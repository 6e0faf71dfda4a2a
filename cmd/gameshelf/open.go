package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [game-name]",
	Short: "Open a game's source code page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		game, err := controller.FindGame(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := controller.OpenSource(game); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "🔗 Opened source for %s\n", game.Name)
		return nil
	},
}
