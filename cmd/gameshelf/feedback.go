package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [text...]",
	Short: "Send feedback through your mail client",
	Long:  "Compose a feedback email with the given text and hand it to the default mail client",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := controller.SendFeedback(strings.Join(args, " ")); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✉️  Handed to your mail client. Thanks for sending feedback!")
		return nil
	},
}
