package monzo

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Column positions in the A:P export layout. The first row is a header.
const (
	colID            = 0
	colDate          = 1
	colPaymentType   = 3
	colName          = 4
	colCategory      = 6
	colAmount        = 7
	colCurrency      = 8
	colLocalAmount   = 9
	colLocalCurrency = 10
	colNotes         = 11
	colDescription   = 14
	colCategorySplit = 15
)

// dateLayout is the external date format of the export (DD/MM/YYYY).
const dateLayout = "02/01/2006"

// NormalizeRows converts raw spreadsheet rows into Transactions. The first
// row is assumed to be the column header and skipped. Rows that fail to
// parse are dropped and reported in the returned RowError slice; only the
// caller decides whether and how to log them.
func NormalizeRows(rows [][]any) ([]Transaction, []RowError) {
	var (
		txs  []Transaction
		errs []RowError
	)

	for i, row := range rows {
		if i == 0 {
			continue
		}

		tx, err := normalizeRow(i, row)
		if err != nil {
			errs = append(errs, RowError{Row: i, Err: err})
			continue
		}
		txs = append(txs, tx)
	}

	return txs, errs
}

func normalizeRow(rowNum int, row []any) (Transaction, error) {
	date, err := parseDate(rowNum, cell(row, colDate))
	if err != nil {
		return Transaction{}, err
	}

	amount, err := parseMinorUnits(rowNum, "amount", cell(row, colAmount))
	if err != nil {
		return Transaction{}, err
	}

	localAmount, err := parseMinorUnits(rowNum, "local_amount", cell(row, colLocalAmount))
	if err != nil {
		return Transaction{}, err
	}

	split, err := parseCategorySplit(rowNum, cell(row, colCategorySplit))
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		Row:           rowNum,
		ID:            sanitize(cell(row, colID)),
		Date:          date,
		PaymentType:   sanitize(cell(row, colPaymentType)),
		Name:          sanitize(cell(row, colName)),
		Category:      sanitize(cell(row, colCategory)),
		Amount:        amount,
		Currency:      sanitize(cell(row, colCurrency)),
		LocalAmount:   localAmount,
		LocalCurrency: sanitize(cell(row, colLocalCurrency)),
		Notes:         sanitize(cell(row, colNotes)),
		Description:   sanitize(cell(row, colDescription)),
		CategorySplit: split,
	}, nil
}

// cell returns the string content of a column, tolerating short rows and
// non-string cells (the spreadsheet API may return numbers).
func cell(row []any, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	switch v := row[idx].(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// sanitize strips characters that would corrupt account names or quoted
// narration strings: "/" becomes "_" and "&" is dropped.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "&", "")
	return strings.TrimSpace(s)
}

// parseMinorUnits converts a decimal currency string to integer minor
// units: "-500.00" -> -50000. Any non-numeric residue is fatal for the row.
func parseMinorUnits(rowNum int, field, s string) (int64, error) {
	if s == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, &ParseError{Row: rowNum, Field: field, Value: s, Err: err}
	}

	minor := d.Shift(2)
	if !minor.IsInteger() {
		return 0, &ParseError{
			Row: rowNum, Field: field, Value: s,
			Err: fmt.Errorf("more than two decimal places"),
		}
	}

	return minor.IntPart(), nil
}

// FormatMinorUnits renders integer minor units back to a two-decimal
// string: -50000 -> "-500.00".
func FormatMinorUnits(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

func parseDate(rowNum int, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &ParseError{Row: rowNum, Field: "date", Value: s, Err: err}
	}
	return t, nil
}

// parseCategorySplit parses a comma-separated list of category:amount
// pairs. Each entry must split into exactly two colon-delimited parts with
// a numeric amount, else the whole field fails the row.
func parseCategorySplit(rowNum int, s string) ([]CategorySplit, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var splits []CategorySplit
	for _, entry := range strings.Split(s, ",") {
		parts := strings.Split(entry, ":")
		if len(parts) != 2 {
			return nil, &CategorySplitError{Row: rowNum, Entry: entry, Reason: "expected category:amount"}
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, &CategorySplitError{
				Row: rowNum, Entry: entry,
				Reason: fmt.Sprintf("invalid amount for category %q", strings.TrimSpace(parts[0])),
			}
		}

		splits = append(splits, CategorySplit{
			Category: strings.TrimSpace(parts[0]),
			Amount:   amount,
		})
	}

	return splits, nil
}
