package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/quarryforge/monzo-beancount/pkg/config"
	"github.com/quarryforge/monzo-beancount/pkg/ledger"
	"github.com/quarryforge/monzo-beancount/pkg/monzo"
	"github.com/quarryforge/monzo-beancount/pkg/pathutil"
)

// AccountTransactions is one sheet account's normalized transaction
// history.
type AccountTransactions struct {
	Account      config.SheetAccount
	Transactions []monzo.Transaction
}

// Assembler builds the full directive list for a ledger file: options,
// includes, opens, then transactions.
type Assembler struct {
	settings *config.Settings
	paths    *pathutil.Resolver
}

// NewAssembler creates an Assembler over immutable settings and paths.
func NewAssembler(settings *config.Settings, paths *pathutil.Resolver) *Assembler {
	return &Assembler{settings: settings, paths: paths}
}

// Assemble produces the ordered directive list for the given account
// histories. Rows that fail posting resolution are skipped and reported in
// the returned RowError slice.
func (a *Assembler) Assemble(accounts []AccountTransactions) ([]ledger.Directive, []monzo.RowError, error) {
	var b Builder

	b.Add(a.optionDirectives()...)

	includes, err := a.includeDirectives()
	if err != nil {
		return nil, nil, err
	}
	b.Add(includes...)

	b.Add(a.openDirectives(accounts)...)

	txs, rowErrs := a.transactionDirectives(accounts)
	b.Add(txs...)

	return b.Directives(), rowErrs, nil
}

func (a *Assembler) optionDirectives() []ledger.Directive {
	return []ledger.Directive{
		ledger.Option{Key: "title", Value: a.settings.Title},
		ledger.Option{Key: "operating_currency", Value: a.settings.Currency},
	}
}

// includeDirectives lists manually configured fragments followed by every
// .beancount file discovered in the include directory. Each path is
// reduced to its parent directory and filename; a fragment that is both
// configured and on disk is included once.
func (a *Assembler) includeDirectives() ([]ledger.Directive, error) {
	var directives []ledger.Directive
	seen := make(map[string]struct{})

	add := func(full string) error {
		path, err := pathutil.IncludePath(full)
		if err != nil {
			return err
		}
		if _, ok := seen[path]; ok {
			return nil
		}
		seen[path] = struct{}{}
		directives = append(directives, ledger.Include{Path: path})
		return nil
	}

	for _, name := range a.settings.ManualAccounts {
		if err := add(a.paths.IncludeFile(name)); err != nil {
			return nil, err
		}
	}

	entries, err := os.ReadDir(a.paths.IncludeDir())
	if err != nil {
		if os.IsNotExist(err) {
			return directives, nil
		}
		return nil, fmt.Errorf("failed to read include directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".beancount" {
			continue
		}
		if err := add(filepath.Join(a.paths.IncludeDir(), entry.Name())); err != nil {
			return nil, err
		}
	}

	return directives, nil
}

func (a *Assembler) openDirectives(accounts []AccountTransactions) []ledger.Directive {
	start := a.settings.StartDate.Time
	var b Builder

	b.Add(ledger.Comment{Text: "equity accounts"})
	b.Add(ledger.Open{Date: start, Account: ledger.Account{
		Type:    ledger.Equity,
		Country: a.settings.Currency,
		Name:    openingBalancesName,
	}})

	b.Add(ledger.Comment{Text: "asset accounts"})
	for _, acct := range a.settings.Assets {
		b.Add(ledger.Open{Date: start, Account: acct})
	}

	b.Add(ledger.Comment{Text: "liability accounts"})
	for _, acct := range a.settings.Liabilities {
		b.Add(ledger.Open{Date: start, Account: acct})
	}

	b.Add(ledger.Comment{Text: "income accounts"})
	for _, acct := range a.settings.Income {
		b.Add(ledger.Open{Date: start, Account: acct})
	}

	b.Add(ledger.Comment{Text: "expense accounts"})
	for _, at := range accounts {
		for _, category := range ExpenseCategories(at.Transactions) {
			b.Add(ledger.Open{Date: start, Account: ledger.Account{
				Type:        ledger.Expenses,
				Country:     at.Account.Country,
				Institution: at.Account.Institution,
				Name:        at.Account.Name,
				SubAccount:  category,
			}})
		}
	}
	for _, acct := range a.settings.Expenses {
		b.Add(ledger.Open{Date: start, Account: acct})
	}

	return b.Directives()
}

// transactionDirectives converts every accepted row to a transaction
// directive. Pot-transfer rows are filtered out (their histories arrive
// via CSV import instead), unbalanced pairs are rejected, and the merged
// list is sorted chronologically.
func (a *Assembler) transactionDirectives(accounts []AccountTransactions) ([]ledger.Directive, []monzo.RowError) {
	var (
		txns    []ledger.Transaction
		rowErrs []monzo.RowError
	)

	for _, at := range accounts {
		for _, tx := range at.Transactions {
			if tx.PaymentType == "Pot transfer" {
				continue
			}

			c := Classify(a.settings.Assets, a.settings.Income, tx)
			postings := BuildPostings(at.Account, tx, c)
			if !postings.Balanced() {
				rowErrs = append(rowErrs, monzo.RowError{
					Row: tx.Row,
					Err: fmt.Errorf("transaction %s: postings do not balance", tx.ID),
				})
				continue
			}

			txns = append(txns, buildTransaction(tx, postings))
		}
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})

	var b Builder
	b.Add(ledger.Comment{Text: "transactions"})
	for _, t := range txns {
		b.Add(t)
	}
	return b.Directives(), rowErrs
}

func buildTransaction(tx monzo.Transaction, postings ledger.Postings) ledger.Transaction {
	return ledger.Transaction{
		Date:     tx.Date,
		Payee:    tx.Name,
		Notes:    tx.Description,
		Comment:  transactionComment(tx),
		Postings: postings,
	}
}

// transactionComment carries the bank notes and, for foreign transactions,
// the local amount with its currency label.
func transactionComment(tx monzo.Transaction) string {
	comment := tx.Notes
	if tx.Currency != tx.LocalCurrency && tx.LocalCurrency != "" {
		local := fmt.Sprintf("%s %s", monzo.FormatMinorUnits(tx.LocalAmount), tx.LocalCurrency)
		if comment == "" {
			return local
		}
		return comment + " " + local
	}
	return comment
}

// ExpenseCategories returns the distinct transaction categories that open
// expense accounts, sorted. Income, Savings, and Transfers flows are
// handled by classification and excluded.
func ExpenseCategories(txs []monzo.Transaction) []string {
	seen := make(map[string]struct{})
	for _, tx := range txs {
		switch tx.Category {
		case "", "Income", "Savings", "Transfers":
			continue
		}
		seen[tx.Category] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
