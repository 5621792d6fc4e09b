// Package csvimport converts pot CSV exports into ledger fragments. Pot
// transaction histories are not present in the sheet export, so each pot
// is supplied as a CSV file in the import directory and becomes one
// .beancount fragment in the include directory.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quarryforge/monzo-beancount/pkg/config"
	"github.com/quarryforge/monzo-beancount/pkg/encoding"
	"github.com/quarryforge/monzo-beancount/pkg/generate"
	"github.com/quarryforge/monzo-beancount/pkg/ledger"
	"github.com/quarryforge/monzo-beancount/pkg/monzo"
	"github.com/quarryforge/monzo-beancount/pkg/pathutil"
)

// Record is one row of a pot CSV file:
//
//	date,description,amount,local_currency,local_amount,category
//	2024-04-14,PATH TAPP PAYGO CP NEW JERSEY USA,-0.80,USD,-1.00,Transport
type Record struct {
	Date          time.Time
	Description   string
	Amount        decimal.Decimal
	LocalCurrency string
	LocalAmount   string
	Category      string
}

const dateLayout = "2006-01-02"

// mainAccountName is the account a pot withdrawal or deposit settles
// against.
const mainAccountName = "Personal"

// Importer converts the CSV files in the import directory.
type Importer struct {
	settings *config.Settings
	paths    *pathutil.Resolver
}

// New creates an Importer.
func New(settings *config.Settings, paths *pathutil.Resolver) *Importer {
	return &Importer{settings: settings, paths: paths}
}

// Result reports one converted file.
type Result struct {
	Source      string
	Fragment    string
	Records     int
	SkippedRows []monzo.RowError
}

// ImportAll converts every CSV file in the import directory to a ledger
// fragment. A malformed file fails only itself; the error is carried in
// the returned slice alongside the successes.
func (im *Importer) ImportAll() ([]Result, []error) {
	files, err := im.csvFiles()
	if err != nil {
		return nil, []error{err}
	}

	var (
		results []Result
		errs    []error
	)
	for _, file := range files {
		result, err := im.importFile(file)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(file), err))
			continue
		}
		results = append(results, result)
	}

	return results, errs
}

func (im *Importer) csvFiles() ([]string, error) {
	entries, err := os.ReadDir(im.paths.ImportDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read import directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		files = append(files, filepath.Join(im.paths.ImportDir(), entry.Name()))
	}

	return files, nil
}

func (im *Importer) importFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	records, skipped, err := ReadRecords(f)
	if err != nil {
		return Result{}, err
	}
	if len(records) == 0 {
		return Result{}, fmt.Errorf("no parseable records")
	}

	stem := strings.TrimSuffix(filepath.Base(path), ".csv")
	directives := im.Directives(stem, records)

	fragment := im.paths.IncludeFile(ledger.PascalCase(stem))
	if err := pathutil.EnsureParentDir(fragment); err != nil {
		return Result{}, err
	}
	if err := generate.WriteDirectives(fragment, directives); err != nil {
		return Result{}, err
	}

	return Result{
		Source:      path,
		Fragment:    fragment,
		Records:     len(records),
		SkippedRows: skipped,
	}, nil
}

// ReadRecords parses pot CSV content, decoding the charset first. Rows
// that fail to parse are skipped and reported, sorted output is by date.
func ReadRecords(r io.Reader) ([]Record, []monzo.RowError, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	var (
		records []Record
		skipped []monzo.RowError
	)
	for i, row := range rows {
		if i == 0 {
			continue
		}

		rec, err := parseRow(row)
		if err != nil {
			skipped = append(skipped, monzo.RowError{Row: i, Err: err})
			continue
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, skipped, nil
}

func parseRow(row []string) (Record, error) {
	if len(row) < 3 {
		return Record{}, fmt.Errorf("expected at least 3 columns, got %d", len(row))
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(row[0]))
	if err != nil {
		return Record{}, fmt.Errorf("invalid date %q: %w", row[0], err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row[2]))
	if err != nil {
		return Record{}, fmt.Errorf("invalid amount %q: %w", row[2], err)
	}

	rec := Record{
		Date:        date,
		Description: strings.TrimSpace(row[1]),
		Amount:      amount,
	}
	if len(row) > 3 {
		rec.LocalCurrency = strings.TrimSpace(row[3])
	}
	if len(row) > 4 {
		rec.LocalAmount = strings.TrimSpace(row[4])
	}
	if len(row) > 5 {
		rec.Category = strings.TrimSpace(row[5])
	}

	return rec, nil
}
