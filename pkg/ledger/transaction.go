package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Posting is one leg of a double-entry transaction. A posting never exists
// alone; it is always produced as one half of a Postings pair.
type Posting struct {
	Account     Account
	Amount      decimal.Decimal
	Currency    string
	Description string
}

// Postings pairs the two legs of a transaction.
type Postings struct {
	From Posting
	To   Posting
}

// Balanced reports whether the two legs sum to zero. The balance law only
// applies when both legs carry the same currency.
func (p Postings) Balanced() bool {
	if p.From.Currency != p.To.Currency {
		return true
	}
	return p.From.Amount.Add(p.To.Amount).IsZero()
}

// Transaction is a Beancount transaction directive: a dated narration with
// exactly two postings.
type Transaction struct {
	Date     time.Time
	Payee    string
	Notes    string
	Comment  string
	Postings Postings
}

func (Transaction) directive() {}

// Format renders the transaction block: header line, two indented posting
// lines, and a terminating blank line.
func (t Transaction) Format() string {
	var b strings.Builder

	b.WriteString(t.Date.Format(dateLayout))
	b.WriteString(" *")
	if t.Payee != "" {
		fmt.Fprintf(&b, " %q", t.Payee)
	}
	fmt.Fprintf(&b, " %q", t.Notes)
	if t.Comment != "" {
		fmt.Fprintf(&b, " ; %s", t.Comment)
	}
	b.WriteByte('\n')

	writePosting(&b, t.Postings.From)
	writePosting(&b, t.Postings.To)
	b.WriteByte('\n')

	return b.String()
}

func writePosting(b *strings.Builder, p Posting) {
	fmt.Fprintf(b, "  %-*s %s %s", accountWidth, p.Account.String(), p.Amount.StringFixed(2), p.Currency)
	if p.Description != "" {
		fmt.Fprintf(b, " ; %s", p.Description)
	}
	b.WriteByte('\n')
}
