package ledger

import (
	"strings"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOptionFormat(t *testing.T) {
	got := Option{Key: "title", Value: "Monzo Accounts"}.Format()
	expected := "option \"title\" \"Monzo Accounts\"\n"
	if got != expected {
		t.Errorf("Option.Format() = %q, expected %q", got, expected)
	}
}

func TestIncludeFormat(t *testing.T) {
	got := Include{Path: "include/premium-bonds.beancount"}.Format()
	expected := "include \"include/premium-bonds.beancount\"\n"
	if got != expected {
		t.Errorf("Include.Format() = %q, expected %q", got, expected)
	}
}

func TestCommentFormat(t *testing.T) {
	got := Comment{Text: "equity accounts"}.Format()
	expected := "\n* Equity Accounts\n\n"
	if got != expected {
		t.Errorf("Comment.Format() = %q, expected %q", got, expected)
	}
}

func TestOpenFormat(t *testing.T) {
	account := Account{Type: Assets, Country: "GBP", Institution: "Monzo", Name: "Personal"}

	got := Open{Date: date(2024, time.June, 13), Account: account}.Format()
	// The account column is padded to 50 characters before the currency.
	expected := "2024-06-13 open Assets:GBP:Monzo:Personal" + strings.Repeat(" ", 25) + " GBP\n"
	if got != expected {
		t.Errorf("Open.Format() = %q, expected %q", got, expected)
	}
}

func TestOpenFormatWithComment(t *testing.T) {
	account := Account{Type: Equity, Country: "GBP", Name: "Opening Balances"}

	got := Open{Date: date(2024, time.June, 13), Account: account, Comment: "Opening balances"}.Format()
	expected := "; Opening balances.\n" +
		"2024-06-13 open Equity:OpeningBalances" + strings.Repeat(" ", 28) + " GBP\n"
	if got != expected {
		t.Errorf("Open.Format() = %q, expected %q", got, expected)
	}
}

func TestCloseFormat(t *testing.T) {
	account := Account{Type: Assets, Country: "GBP", Institution: "Monzo", Name: "Holiday"}

	got := Close{Date: date(2024, time.December, 31), Account: account}.Format()
	expected := "2024-12-31 close Assets:GBP:Monzo:Holiday" + strings.Repeat(" ", 26) + "\n"
	if got != expected {
		t.Errorf("Close.Format() = %q, expected %q", got, expected)
	}
}

func TestCloseFormatWithComment(t *testing.T) {
	account := Account{Type: Assets, Country: "GBP", Institution: "Monzo", Name: "Holiday"}

	got := Close{Date: date(2024, time.December, 31), Account: account, Comment: "Close Holiday"}.Format()
	expected := "; Close Holiday.\n" +
		"2024-12-31 close Assets:GBP:Monzo:Holiday" + strings.Repeat(" ", 26) + "\n"
	if got != expected {
		t.Errorf("Close.Format() = %q, expected %q", got, expected)
	}
}

func TestBalanceFormatIsInert(t *testing.T) {
	account := Account{Type: Assets, Country: "GBP", Institution: "Monzo", Name: "Personal"}

	got := Balance{Date: date(2024, time.June, 13), Account: account}.Format()
	if !strings.HasPrefix(got, ";") {
		t.Errorf("Balance.Format() = %q, expected a commented-out line", got)
	}
}
