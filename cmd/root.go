package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"remindctl/internal/config"
	"remindctl/internal/editor"
	"remindctl/internal/notify"
	"remindctl/internal/scanner"
	"remindctl/internal/storage"
	"remindctl/internal/storage/markdown"
	"remindctl/internal/storage/sqlite"
	"remindctl/internal/ui"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	store          storage.Storage
)

var rootCmd = &cobra.Command{
	Use:   "remindctl",
	Short: "A terminal reminder manager",
	Long:  "remindctl manages time-stamped reminders from the terminal and raises desktop notifications when they come due.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override storage backend from flag
		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		switch appConfig.Storage {
		case "sqlite":
			store, err = sqlite.New(appConfig.DataDir)
			if err != nil {
				return fmt.Errorf("initializing sqlite storage: %w", err)
			}
		case "markdown":
			store, err = markdown.New(appConfig.DataDir)
			if err != nil {
				return fmt.Errorf("initializing markdown storage: %w", err)
			}
		default:
			return fmt.Errorf("unknown storage backend: %s", appConfig.Storage)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to a plain listing
			return listRun(os.Stdout)
		}

		notifier := notify.NewCommand(appConfig.NotifyCommand)
		sweep := scanner.New(store, notifier, nil)

		return ui.RunTUI(store, sweep, ui.TUIConfig{
			Theme:        ui.ResolveTheme(appConfig.Theme),
			Editor:       editor.ResolveEditor(""),
			PollInterval: appConfig.Interval(),
			MaxWidth:     appConfig.MaxWidth,
		})
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (sqlite|markdown)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
