package generate

import (
	"testing"
	"time"

	"github.com/quarryforge/monzo-beancount/pkg/ledger"
	"github.com/quarryforge/monzo-beancount/pkg/monzo"
)

func testAccounts() (assets, income []ledger.Account) {
	assets = []ledger.Account{
		{Type: ledger.Assets, Country: "GBP", Institution: "Monzo", Name: "Personal"},
		{Type: ledger.Assets, Country: "GBP", Institution: "NSI", Name: "Premium Bonds"},
	}
	income = []ledger.Account{
		{Type: ledger.Income, Country: "GBP", Institution: "Monzo", Name: "Personal"},
		{Type: ledger.Income, Country: "GBP", Institution: "Acme", Name: "Acme Ltd"},
	}
	return assets, income
}

func TestClassify(t *testing.T) {
	assets, income := testAccounts()

	tests := []struct {
		name     string
		tx       monzo.Transaction
		expected Classification
	}{
		{
			"plain expense has no classification",
			monzo.Transaction{Category: "Groceries", Name: "Sainsburys"},
			nil,
		},
		{
			"general income",
			monzo.Transaction{Category: "Income", Name: "Some Employer"},
			IncomeGeneral{},
		},
		{
			"income from configured account",
			monzo.Transaction{Category: "Income", Name: "Acme Ltd"},
			IncomeAccount{Account: income[1]},
		},
		{
			"account switch is an opening balance",
			monzo.Transaction{Category: "Income", Name: "Old Bank", Notes: "Account Switch incoming"},
			TransferOpeningBalance{},
		},
		{
			"savings",
			monzo.Transaction{Category: "Savings", Name: "Savings Pot"},
			Savings{},
		},
		{
			"pot transfer",
			monzo.Transaction{Category: "Transfers", PaymentType: "Pot transfer", Name: "Holiday"},
			TransferPot{},
		},
		{
			"transfer to configured asset",
			monzo.Transaction{Category: "Transfers", PaymentType: "Faster payment", Name: "Premium Bonds"},
			TransferAsset{Account: assets[1]},
		},
		{
			"unmatched transfer is an opening balance",
			monzo.Transaction{Category: "Transfers", PaymentType: "Faster payment", Name: "Somewhere Else"},
			TransferOpeningBalance{},
		},
		{
			"reserved asset name never matches",
			monzo.Transaction{Category: "Transfers", PaymentType: "Faster payment", Name: "Personal"},
			TransferOpeningBalance{},
		},
		{
			"reserved income name falls through to general income",
			monzo.Transaction{Category: "Income", Name: "Personal"},
			IncomeGeneral{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(assets, income, tt.tx)
			if got != tt.expected {
				t.Errorf("Classify() = %#v, expected %#v", got, tt.expected)
			}
		})
	}
}

func TestClassifyAmbiguousMatchIsNoMatch(t *testing.T) {
	assets := []ledger.Account{
		{Type: ledger.Assets, Country: "GBP", Institution: "NSI", Name: "Premium Bonds"},
		{Type: ledger.Assets, Country: "GBP", Institution: "Other", Name: "Premium Bonds"},
	}

	tx := monzo.Transaction{Category: "Transfers", PaymentType: "Faster payment", Name: "Premium Bonds"}
	got := Classify(assets, nil, tx)
	if got != (TransferOpeningBalance{}) {
		t.Errorf("Classify() = %#v, expected TransferOpeningBalance for ambiguous name", got)
	}
}

func TestClassifyIsPure(t *testing.T) {
	assets, income := testAccounts()
	tx := monzo.Transaction{
		Category: "Transfers",
		Name:     "Premium Bonds",
		Date:     time.Date(2024, time.June, 13, 0, 0, 0, 0, time.UTC),
	}

	first := Classify(assets, income, tx)
	for i := 0; i < 10; i++ {
		if got := Classify(assets, income, tx); got != first {
			t.Fatalf("Classify() diverged on call %d: %#v != %#v", i, got, first)
		}
	}
}
