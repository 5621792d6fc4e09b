package csvimport

import (
	"fmt"
	"strings"

	"github.com/quarryforge/monzo-beancount/pkg/ledger"
)

// Directives builds the fragment for one pot: a heading, an open at the
// first record's date, one transaction per record, and a close at the
// last record's date. The name is the raw file stem; records must already
// be sorted by date.
func (im *Importer) Directives(name string, records []Record) []ledger.Directive {
	potName := ledger.PascalCase(name)

	directives := []ledger.Directive{
		ledger.Comment{Text: name},
		ledger.Open{Date: records[0].Date, Account: im.potAccount(potName)},
	}

	for _, rec := range records {
		directives = append(directives, im.transaction(potName, rec))
	}

	directives = append(directives, ledger.Close{
		Date:    records[len(records)-1].Date,
		Account: im.potAccount(potName),
		Comment: fmt.Sprintf("Close %s", ledger.TitleCase(name)),
	})

	return directives
}

func (im *Importer) transaction(potName string, rec Record) ledger.Transaction {
	from := im.fromPosting(potName, rec)
	to := im.toPosting(potName, rec, from)

	notes := rec.Description
	comment := ""
	if rec.LocalAmount != "" && rec.LocalCurrency != "" && rec.LocalCurrency != im.settings.Currency {
		comment = fmt.Sprintf("%s %s", rec.LocalAmount, rec.LocalCurrency)
	}

	return ledger.Transaction{
		Date:     rec.Date,
		Notes:    notes,
		Comment:  comment,
		Postings: ledger.Postings{From: from, To: to},
	}
}

// fromPosting picks the account the money leaves. Interest and other
// income flows come from an income account named after the pot; pot
// withdrawals and deposits settle against the main account; everything
// else spends from the pot itself.
func (im *Importer) fromPosting(potName string, rec Record) ledger.Posting {
	account := im.potAccount(potName)
	amount := rec.Amount

	switch {
	case rec.Category == "Income":
		account.Type = ledger.Income
		amount = rec.Amount.Neg()
	case isTransfer(rec.Description):
		account.Name = mainAccountName
		amount = rec.Amount.Neg()
	}

	return ledger.Posting{
		Account:     account,
		Amount:      amount,
		Currency:    im.settings.Currency,
		Description: rec.Description,
	}
}

// toPosting balances the from leg. Expense records land in a category
// sub-account of the pot; income and transfers land in the pot itself.
func (im *Importer) toPosting(potName string, rec Record, from ledger.Posting) ledger.Posting {
	account := im.potAccount(potName)

	if rec.Category != "" && rec.Category != "Income" && !isTransfer(rec.Description) {
		account.Type = ledger.Expenses
		account.SubAccount = rec.Category
	}

	return ledger.Posting{
		Account:  account,
		Amount:   from.Amount.Neg(),
		Currency: im.settings.Currency,
	}
}

func (im *Importer) potAccount(potName string) ledger.Account {
	return ledger.Account{
		Type:        ledger.Assets,
		Country:     im.settings.Currency,
		Institution: im.institution(),
		Name:        potName,
	}
}

func (im *Importer) institution() string {
	if len(im.settings.SheetAccounts) > 0 {
		return im.settings.SheetAccounts[0].Institution
	}
	return "Monzo"
}

func isTransfer(description string) bool {
	return strings.HasPrefix(description, "Withdrawal") || strings.HasPrefix(description, "Deposit")
}
