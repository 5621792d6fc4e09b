package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var serveInterval time.Duration

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Periodically regenerate the ledger until interrupted",
	Long: `Run a refresh loop that regenerates the main ledger file at a
fixed interval. SIGINT or SIGTERM stops the loop cleanly.

Example:
  monzo-beancount serve --interval 15m`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().DurationVar(&serveInterval, "interval", 15*time.Minute, "refresh interval")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, paths, settings, err := loadEnvironment()
	if err != nil {
		return err
	}

	generator, err := newGenerator(ctx, paths, settings)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(serveInterval)
	defer ticker.Stop()

	slog.Info("Serving", "interval", serveInterval)

	refresh := func() {
		started := time.Now()
		report, err := generator.Run(ctx)
		if err != nil {
			slog.Error("Refresh failed", "error", err)
			return
		}
		logReport(report)
		if err := recordRun(paths, report, started); err != nil {
			slog.Error("Failed to record run history", "error", err)
		}
		slog.Info("Refreshed", "transactions", report.Transactions)
	}

	refresh()
	for {
		select {
		case <-ticker.C:
			refresh()
		case <-ctx.Done():
			slog.Info("Shutting down")
			return nil
		}
	}
}
