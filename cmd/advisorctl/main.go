package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"campus-advisor/config"
	"campus-advisor/internal/app"
	"campus-advisor/pkg/log"
)

var (
	verbose bool
	timeout time.Duration
)

// rootCmd is the operator CLI. Every command runs against the same storage
// and configuration as the API.
var rootCmd = &cobra.Command{
	Use:           "advisorctl",
	Short:         "Operate the campus advisor from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at the configured level instead of warn")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 3*time.Minute, "Operation timeout")

	askCmd.Flags().StringVar(&askUser, "user", "", "User id (required)")
	askCmd.Flags().StringVar(&askMessage, "message", "", "Message to send (required)")
	askCmd.Flags().StringVar(&askSession, "session", "", "Session id")
	_ = askCmd.MarkFlagRequired("user")
	_ = askCmd.MarkFlagRequired("message")

	historyCmd.Flags().StringVar(&historyUser, "user", "", "User id (required)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Max messages (default from config)")
	_ = historyCmd.MarkFlagRequired("user")

	calendarAuthCmd.Flags().StringVar(&credentialsPath, "credentials", "", "OAuth desktop credentials (default google_calendar.credentials_path)")
	calendarAuthCmd.Flags().StringVar(&tokenPath, "token", "", "Where to write the token (default google_calendar.token_path)")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(calendarAuthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withApp loads config, builds the application and hands it to fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logger.Level
	if !verbose {
		level = "warn"
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}
