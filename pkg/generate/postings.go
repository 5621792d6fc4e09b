package generate

import (
	"github.com/shopspring/decimal"

	"github.com/quarryforge/monzo-beancount/pkg/config"
	"github.com/quarryforge/monzo-beancount/pkg/ledger"
	"github.com/quarryforge/monzo-beancount/pkg/monzo"
)

// ToPosting derives the destination leg of a transaction. With no
// classification this is an expense flow out of the source account:
// Expenses sub-account named by the category, carrying the negated amount.
func ToPosting(source config.SheetAccount, tx monzo.Transaction, c Classification) ledger.Posting {
	account := ledger.Account{
		Type:        ledger.Expenses,
		Country:     source.Country,
		Institution: source.Institution,
		Name:        source.Name,
		SubAccount:  tx.Category,
	}
	amount := minorToDecimal(-tx.Amount)

	switch cl := c.(type) {
	case IncomeGeneral, IncomeAccount:
		account.Type = ledger.Assets
		account.SubAccount = ""
		amount = minorToDecimal(tx.Amount)

	case Savings:
		account.Type = ledger.Assets
		account.SubAccount = "Savings"

	case TransferOpeningBalance:
		account.Type = ledger.Assets
		account.SubAccount = ""
		amount = minorToDecimal(tx.Amount)

	case TransferPot:
		account.Type = ledger.Assets
		account.SubAccount = tx.Name

	case TransferAsset:
		account.Type = ledger.Assets
		account.Institution = cl.Account.Institution
		account.Name = cl.Account.Name
		account.SubAccount = ""
	}

	return ledger.Posting{
		Account:     account,
		Amount:      amount,
		Currency:    tx.Currency,
		Description: tx.Description,
	}
}

// FromPosting derives the source leg of a transaction. With no
// classification this is the source asset account carrying the amount as
// exported. The two legs must be arithmetic negatives of one another in
// the same currency.
func FromPosting(source config.SheetAccount, tx monzo.Transaction, c Classification) ledger.Posting {
	account := ledger.Account{
		Type:          ledger.Assets,
		Country:       source.Country,
		Institution:   source.Institution,
		Name:          source.Name,
		TransactionID: tx.ID,
	}
	amount := minorToDecimal(tx.Amount)

	switch cl := c.(type) {
	case IncomeGeneral:
		account.Type = ledger.Income
		amount = minorToDecimal(-tx.Amount)

	case IncomeAccount:
		account.Type = ledger.Income
		account.Institution = cl.Account.Institution
		account.Name = tx.Name
		amount = minorToDecimal(-tx.Amount)

	case TransferOpeningBalance:
		account.Type = ledger.Equity
		account.Name = openingBalancesName
		amount = minorToDecimal(-tx.Amount)

	case Savings, TransferPot, TransferAsset:
		// Source asset leg unchanged.
	}

	return ledger.Posting{
		Account:  account,
		Amount:   amount,
		Currency: tx.Currency,
	}
}

// BuildPostings resolves both legs and pairs them.
func BuildPostings(source config.SheetAccount, tx monzo.Transaction, c Classification) ledger.Postings {
	return ledger.Postings{
		From: FromPosting(source, tx, c),
		To:   ToPosting(source, tx, c),
	}
}

func minorToDecimal(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
