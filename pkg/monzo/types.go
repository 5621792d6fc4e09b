// Package monzo provides the normalized transaction model for Monzo bank
// exports and the normalizer that converts raw spreadsheet rows into it.
package monzo

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single bank transaction in canonical form. Amounts are
// integer minor currency units (pence), never floats. A Transaction is
// created once per raw row and read-only thereafter.
type Transaction struct {
	// Row is the source sheet row the transaction came from, for error
	// reporting.
	Row int

	ID            string
	Date          time.Time
	PaymentType   string
	Name          string
	Category      string
	Amount        int64
	Currency      string
	LocalAmount   int64
	LocalCurrency string
	Notes         string
	Description   string
	CategorySplit []CategorySplit
}

// CategorySplit is one entry of a category-split annotation, apportioning
// part of a transaction's amount to a category.
type CategorySplit struct {
	Category string
	Amount   decimal.Decimal
}
