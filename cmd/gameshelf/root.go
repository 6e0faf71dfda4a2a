package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kerbaras/gameshelf/pkg/app"
	"github.com/kerbaras/gameshelf/pkg/config"
	"github.com/kerbaras/gameshelf/pkg/integrations"
	"github.com/kerbaras/gameshelf/pkg/logging"
	"github.com/kerbaras/gameshelf/pkg/services"
)

var (
	cfgFile    string
	settings   *config.Settings
	logger     *zap.Logger
	controller *services.GameController

	// opener handles links and mail handoffs; nil means the system browser.
	opener integrations.Opener
)

var rootCmd = &cobra.Command{
	Use:           "gameshelf",
	Short:         "A terminal shelf for indie game builds",
	Long:          "Browse a games catalog, grab Linux and Windows builds, open source links and send feedback",
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if controller != nil {
			controller.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch TUI by default
		a := app.NewApp(controller, settings.Feedback.Style)
		return a.Run(cmd.Context())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/gameshelf/config.yaml)")
	flags.String("catalog", "", "URL or path of the games catalog")
	flags.String("log-file", "", "file to write logs to")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(featuredCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(feedbackCmd)
}

// setup loads settings, opens the log and wires the controller for every command.
func setup(cmd *cobra.Command, args []string) error {
	v := config.New(cfgFile)
	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag("catalog.location", flags.Lookup("catalog")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.file", flags.Lookup("log-file")); err != nil {
		return err
	}

	var err error
	settings, err = config.Load(v)
	if err != nil {
		return err
	}

	logger, err = logging.New(settings.Log.File, settings.Log.Level)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("command", cmd.Name()))

	controller, err = services.NewGameController(settings, opener, logger)
	if err != nil {
		return fmt.Errorf("failed to set up catalog source: %w", err)
	}
	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if controller != nil {
			controller.Close()
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
