package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"remindctl/internal/notify"
	"remindctl/internal/scanner"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the due-reminder scanner in the foreground",
	Long: `Polls the store and fires a desktop notification for every reminder
that comes due, without the interactive UI. Useful as a user service or
inside tmux. Stops cleanly on SIGINT/SIGTERM.`,
	Example: `  remindctl watch
  remindctl watch --interval 5s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		interval := watchInterval
		if interval <= 0 {
			interval = appConfig.Interval()
		}

		logger := log.New(os.Stderr, "remindctl: ", log.LstdFlags)
		logger.Printf("watching reminders every %s (storage: %s)", interval, appConfig.Storage)

		notifier := notify.NewCommand(appConfig.NotifyCommand)
		sweep := scanner.New(store, notifier, logger)

		err := sweep.Run(ctx, interval)
		if errors.Is(err, context.Canceled) {
			logger.Printf("shutting down")
			return nil
		}
		return err
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "poll interval (default from config)")
	rootCmd.AddCommand(watchCmd)
}
