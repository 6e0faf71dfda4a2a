package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/gameshelf/pkg/data"
)

var downloadCmd = &cobra.Command{
	Use:   "download [game-name]",
	Short: "Download a game build",
	Long:  "Download the Linux or Windows build of a game into the downloads directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platformFlag, _ := cmd.Flags().GetString("platform")
		platform, err := data.ParsePlatform(platformFlag)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		game, err := controller.FindGame(ctx, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "📥 Downloading %s for %s\n", game.Name, platform)

		done := make(chan struct{})
		finished := make(chan struct{})
		go func() {
			defer close(finished)
			for {
				select {
				case progress, ok := <-controller.Progress():
					if !ok {
						return
					}
					if progress.Status == "downloading" {
						if progress.Total > 0 {
							fmt.Fprintf(out, "\r  %d/%d bytes", progress.Written, progress.Total)
						} else {
							fmt.Fprintf(out, "\r  %d bytes", progress.Written)
						}
					}
				case <-done:
					return
				}
			}
		}()

		dest, err := controller.Download(ctx, game, platform)
		close(done)
		<-finished
		if err != nil {
			return fmt.Errorf("download failed: %w", err)
		}

		fmt.Fprintf(out, "\n✅ Saved %s\n", dest)
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringP("platform", "p", "linux", "Build to download (linux or windows)")
}
