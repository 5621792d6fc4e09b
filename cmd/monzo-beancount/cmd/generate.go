package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/quarryforge/monzo-beancount/pkg/config"
	"github.com/quarryforge/monzo-beancount/pkg/db"
	"github.com/quarryforge/monzo-beancount/pkg/generate"
	"github.com/quarryforge/monzo-beancount/pkg/pathutil"
	"github.com/quarryforge/monzo-beancount/pkg/sheets"
)

var dryRun bool

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the main ledger file from sheet exports",
	Long: `Fetch the configured sheet exports, classify every transaction,
and rewrite the main Beancount file from scratch.

This command:
1. Fetches each configured account's sheet concurrently
2. Normalizes rows, skipping and reporting malformed ones
3. Classifies transactions and resolves balanced posting pairs
4. Writes options, includes, opens, and date-ordered transactions
5. Records the run in the local history database

Example:
  monzo-beancount generate
  monzo-beancount generate --dry-run`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the ledger to stdout instead of writing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, paths, settings, err := loadEnvironment()
	if err != nil {
		return err
	}

	generator, err := newGenerator(ctx, paths, settings)
	if err != nil {
		return err
	}

	started := time.Now()

	if dryRun {
		directives, report, err := generator.Build(ctx)
		if err != nil {
			return err
		}
		for _, d := range directives {
			fmt.Print(d.Format())
		}
		logReport(report)
		return nil
	}

	report, err := generator.Run(ctx)
	if err != nil {
		return err
	}
	logReport(report)

	if err := recordRun(paths, report, started); err != nil {
		slog.Error("Failed to record run history", "error", err)
	}

	slog.Info("Generate completed",
		"accounts", report.Accounts,
		"transactions", report.Transactions,
		"output", report.OutputFile,
	)
	return nil
}

func newGenerator(ctx context.Context, paths *pathutil.Resolver, settings *config.Settings) (*generate.Generator, error) {
	credentials := settings.Credentials
	if credentials == "" {
		credentials = paths.CredentialsFile()
	}
	tokenCache := settings.TokenCache
	if tokenCache == "" {
		tokenCache = paths.TokenCacheFile()
	}

	client, err := sheets.NewClient(ctx, sheets.Config{
		CredentialsPath: credentials,
		TokenPath:       tokenCache,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	return generate.NewGenerator(settings, paths, client), nil
}

// logReport surfaces per-row and per-account failures collected by the
// engine. The engine itself never logs.
func logReport(report *generate.Report) {
	for _, err := range report.FetchErrors {
		slog.Error("Account fetch failed", "error", err)
	}
	for _, skip := range report.SkippedRows {
		slog.Warn("Row skipped", "row", skip.Row, "error", skip.Err)
	}
}

func recordRun(paths *pathutil.Resolver, report *generate.Report, started time.Time) error {
	conn, err := db.Open(paths.HistoryDBPath())
	if err != nil {
		return err
	}
	defer conn.Close()

	return db.NewHistory(conn).Record(db.RunRecord{
		StartedAt:    started,
		FinishedAt:   time.Now(),
		Accounts:     report.Accounts,
		Transactions: report.Transactions,
		SkippedRows:  len(report.SkippedRows),
		OutputFile:   report.OutputFile,
	})
}
