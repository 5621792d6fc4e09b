package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPostingsBalanced(t *testing.T) {
	tests := []struct {
		name     string
		postings Postings
		expected bool
	}{
		{
			"equal and opposite",
			Postings{
				From: Posting{Amount: decimal.New(-250, -2), Currency: "GBP"},
				To:   Posting{Amount: decimal.New(250, -2), Currency: "GBP"},
			},
			true,
		},
		{
			"both negative",
			Postings{
				From: Posting{Amount: decimal.New(-250, -2), Currency: "GBP"},
				To:   Posting{Amount: decimal.New(-250, -2), Currency: "GBP"},
			},
			false,
		},
		{
			"mismatched magnitude",
			Postings{
				From: Posting{Amount: decimal.New(-250, -2), Currency: "GBP"},
				To:   Posting{Amount: decimal.New(300, -2), Currency: "GBP"},
			},
			false,
		},
		{
			"different currencies always balance",
			Postings{
				From: Posting{Amount: decimal.New(-250, -2), Currency: "GBP"},
				To:   Posting{Amount: decimal.New(-310, -2), Currency: "EUR"},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.postings.Balanced(); got != tt.expected {
				t.Errorf("Balanced() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestTransactionFormat(t *testing.T) {
	source := Account{Type: Assets, Country: "GBP", Institution: "Monzo", Name: "Personal"}
	expense := Account{Type: Expenses, Country: "GBP", Institution: "Monzo", Name: "Personal", SubAccount: "Groceries"}

	tx := Transaction{
		Date:  date(2024, time.June, 13),
		Payee: "Sainsburys",
		Notes: "SAINSBURYS S/MKT",
		Postings: Postings{
			From: Posting{Account: source, Amount: decimal.New(250, -2), Currency: "GBP"},
			To:   Posting{Account: expense, Amount: decimal.New(-250, -2), Currency: "GBP"},
		},
	}

	expected := "2024-06-13 * \"Sainsburys\" \"SAINSBURYS S/MKT\"\n" +
		"  Assets:GBP:Monzo:Personal" + strings.Repeat(" ", 25) + " 2.50 GBP\n" +
		"  Expenses:GBP:Monzo:Personal:Groceries" + strings.Repeat(" ", 13) + " -2.50 GBP\n" +
		"\n"
	if got := tx.Format(); got != expected {
		t.Errorf("Transaction.Format() = %q, expected %q", got, expected)
	}
}

func TestTransactionFormatCommentAndDescriptions(t *testing.T) {
	source := Account{Type: Assets, Country: "GBP", Institution: "Monzo", Name: "Personal"}
	expense := Account{Type: Expenses, Country: "GBP", Institution: "Monzo", Name: "Personal", SubAccount: "Holidays"}

	tx := Transaction{
		Date:    date(2024, time.July, 1),
		Payee:   "Hotel",
		Notes:   "HOTEL BOOKING",
		Comment: "Paris trip 120.00 EUR",
		Postings: Postings{
			From: Posting{Account: source, Amount: decimal.New(10450, -2), Currency: "GBP"},
			To:   Posting{Account: expense, Amount: decimal.New(-10450, -2), Currency: "GBP", Description: "two nights"},
		},
	}

	got := tx.Format()
	if !strings.Contains(got, "2024-07-01 * \"Hotel\" \"HOTEL BOOKING\" ; Paris trip 120.00 EUR\n") {
		t.Errorf("header missing comment: %q", got)
	}
	if !strings.Contains(got, " -104.50 GBP ; two nights\n") {
		t.Errorf("posting missing description: %q", got)
	}
}

func TestTransactionFormatNoPayee(t *testing.T) {
	tx := Transaction{
		Date:  date(2024, time.June, 13),
		Notes: "Monthly interest",
	}

	got := tx.Format()
	if !strings.HasPrefix(got, "2024-06-13 * \"Monthly interest\"\n") {
		t.Errorf("expected single narration header, got %q", got)
	}
}
