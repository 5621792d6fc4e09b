// Package generate turns normalized bank transactions into a balanced,
// ordered list of ledger directives: classification, posting resolution,
// and directive assembly.
package generate

import (
	"strings"

	"github.com/quarryforge/monzo-beancount/pkg/ledger"
	"github.com/quarryforge/monzo-beancount/pkg/monzo"
)

// transferMarker prefixes the notes of a transaction that moves an opening
// balance between institutions.
const transferMarker = "Account Switch"

// openingBalancesName is the equity account that funds opening balances.
// The open directive and every posting against it must spell it the same
// way.
const openingBalancesName = "OpeningBalances"

// reservedAccountNames are placeholder accounts excluded from counterparty
// matching.
var reservedAccountNames = []string{"Business", "Personal"}

// Classification is the resolved semantic role of a transaction. It is a
// closed set; a nil Classification means the transaction is a plain
// expense or income flow handled by the resolver defaults.
type Classification interface {
	classification()
}

type IncomeGeneral struct{}

// IncomeAccount is income from a specific configured income account.
type IncomeAccount struct {
	Account ledger.Account
}

type Savings struct{}

// TransferOpeningBalance funds an account from equity.
type TransferOpeningBalance struct{}

// TransferPot moves money to or from a pot sub-account.
type TransferPot struct{}

// TransferAsset is a transfer to another configured asset account.
type TransferAsset struct {
	Account ledger.Account
}

func (IncomeGeneral) classification()          {}
func (IncomeAccount) classification()          {}
func (Savings) classification()                {}
func (TransferOpeningBalance) classification() {}
func (TransferPot) classification()            {}
func (TransferAsset) classification()          {}

// Classify derives the classification of a transaction from its category,
// counterparty, and notes. Pure: identical inputs always yield an
// identical result, and the configured account lists are never re-read
// mid-computation.
func Classify(assets, income []ledger.Account, tx monzo.Transaction) Classification {
	switch tx.Category {
	case "Income":
		if acct, ok := matchOne(income, tx.Name); ok {
			return IncomeAccount{Account: acct}
		}
		if strings.HasPrefix(tx.Notes, transferMarker) {
			return TransferOpeningBalance{}
		}
		return IncomeGeneral{}

	case "Savings":
		return Savings{}

	case "Transfers":
		if tx.PaymentType == "Pot transfer" {
			return TransferPot{}
		}
		if acct, ok := matchOne(assets, tx.Name); ok {
			return TransferAsset{Account: acct}
		}
		return TransferOpeningBalance{}
	}

	return nil
}

// matchOne finds the configured account whose name equals name, excluding
// reserved placeholder accounts. Zero or more than one match is treated as
// no match: ambiguous account resolution must never pick arbitrarily.
func matchOne(accounts []ledger.Account, name string) (ledger.Account, bool) {
	var (
		found ledger.Account
		count int
	)

	for _, a := range accounts {
		if isReserved(a.Name) {
			continue
		}
		if a.Name == name {
			found = a
			count++
		}
	}

	if count != 1 {
		return ledger.Account{}, false
	}
	return found, true
}

func isReserved(name string) bool {
	for _, r := range reservedAccountNames {
		if name == r {
			return true
		}
	}
	return false
}
