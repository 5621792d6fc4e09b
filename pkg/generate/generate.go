package generate

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/quarryforge/monzo-beancount/pkg/config"
	"github.com/quarryforge/monzo-beancount/pkg/ledger"
	"github.com/quarryforge/monzo-beancount/pkg/monzo"
	"github.com/quarryforge/monzo-beancount/pkg/pathutil"
)

// RowSource fetches raw spreadsheet rows for one sheet. Implemented by the
// sheets client; faked in tests.
type RowSource interface {
	FetchRows(ctx context.Context, spreadsheetID, sheetName string) ([][]any, error)
}

// Report summarizes one generation run. Row-level and per-account fetch
// failures are collected here rather than logged from inside the engine.
type Report struct {
	Accounts     int
	Transactions int
	SkippedRows  []monzo.RowError
	FetchErrors  []error
	OutputFile   string
}

// Generator orchestrates a full regeneration of the main ledger file from
// the configured sheet sources.
type Generator struct {
	settings *config.Settings
	paths    *pathutil.Resolver
	source   RowSource
}

// NewGenerator creates a Generator. Settings are treated as immutable for
// the lifetime of the run.
func NewGenerator(settings *config.Settings, paths *pathutil.Resolver, source RowSource) *Generator {
	return &Generator{settings: settings, paths: paths, source: source}
}

// Build fetches every configured account concurrently, normalizes the
// rows, and assembles the full directive list. A failed fetch of one
// account is independent and non-fatal: its error lands in the report and
// the remaining accounts' directives are still produced.
func (g *Generator) Build(ctx context.Context) ([]ledger.Directive, *Report, error) {
	report := &Report{OutputFile: g.paths.MainFile()}

	type fetchResult struct {
		rows [][]any
		err  error
	}

	results := make([]fetchResult, len(g.settings.SheetAccounts))
	var wg sync.WaitGroup
	for i, acct := range g.settings.SheetAccounts {
		i, acct := i, acct
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows, err := g.source.FetchRows(ctx, acct.SheetID, acct.SheetName)
			results[i] = fetchResult{rows: rows, err: err}
		}()
	}
	wg.Wait()

	var accounts []AccountTransactions
	for i, acct := range g.settings.SheetAccounts {
		if results[i].err != nil {
			report.FetchErrors = append(report.FetchErrors,
				fmt.Errorf("account %s: %w", acct.Name, results[i].err))
			continue
		}

		txs, rowErrs := monzo.NormalizeRows(results[i].rows)
		report.SkippedRows = append(report.SkippedRows, rowErrs...)
		report.Accounts++

		accounts = append(accounts, AccountTransactions{Account: acct, Transactions: txs})
	}

	assembler := NewAssembler(g.settings, g.paths)
	directives, rowErrs, err := assembler.Assemble(accounts)
	if err != nil {
		return nil, nil, err
	}
	report.SkippedRows = append(report.SkippedRows, rowErrs...)

	for _, d := range directives {
		if _, ok := d.(ledger.Transaction); ok {
			report.Transactions++
		}
	}

	return directives, report, nil
}

// Run builds the directive list and writes the main ledger file.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	directives, report, err := g.Build(ctx)
	if err != nil {
		return nil, err
	}

	if err := WriteDirectives(g.paths.MainFile(), directives); err != nil {
		return nil, err
	}

	return report, nil
}

// WriteDirectives serializes the directive list to a file in order.
func WriteDirectives(path string, directives []ledger.Directive) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create ledger file: %w", err)
	}

	for _, d := range directives {
		if _, err := f.WriteString(d.Format()); err != nil {
			f.Close()
			return fmt.Errorf("failed to write directive: %w", err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close ledger file: %w", err)
	}
	return nil
}
