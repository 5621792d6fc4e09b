package ledger

import (
	"fmt"
	"time"
)

const (
	// accountWidth is the fixed column width for account names in open,
	// close, and posting lines.
	accountWidth = 50

	dateLayout = "2006-01-02"
)

// Directive is one statement in a ledger file. It is a closed set:
// Option, Include, Comment, Open, Close, Transaction, and Balance.
type Directive interface {
	// Format serializes the directive to its exact plain-text layout,
	// including the trailing newline(s).
	Format() string

	directive()
}

// Option is a ledger-wide option such as the title or operating currency.
type Option struct {
	Key   string
	Value string
}

func (Option) directive() {}

func (o Option) Format() string {
	return fmt.Sprintf("option %q %q\n", o.Key, o.Value)
}

// Include pulls another ledger fragment into the main file.
type Include struct {
	Path string
}

func (Include) directive() {}

func (i Include) Format() string {
	return fmt.Sprintf("include %q\n", i.Path)
}

// Comment is a section heading in the ledger file.
type Comment struct {
	Text string
}

func (Comment) directive() {}

func (c Comment) Format() string {
	return fmt.Sprintf("\n* %s\n\n", TitleCase(c.Text))
}

// Open declares an account from a given date. The currency emitted is the
// account's country code.
type Open struct {
	Date    time.Time
	Account Account
	Comment string
}

func (Open) directive() {}

func (o Open) Format() string {
	comment := ""
	if o.Comment != "" {
		comment = fmt.Sprintf("; %s.\n", o.Comment)
	}
	return fmt.Sprintf("%s%s open %-*s %s\n",
		comment, o.Date.Format(dateLayout), accountWidth, o.Account.String(), o.Account.Country)
}

// Close declares the end of an account's life.
type Close struct {
	Date    time.Time
	Account Account
	Comment string
}

func (Close) directive() {}

func (c Close) Format() string {
	comment := ""
	if c.Comment != "" {
		comment = fmt.Sprintf("; %s.\n", c.Comment)
	}
	return fmt.Sprintf("%s%s close %-*s\n",
		comment, c.Date.Format(dateLayout), accountWidth, c.Account.String())
}

// Balance is reserved for balance assertions. The generator never emits
// them; formatting yields a commented placeholder so an accidental emit is
// visible but harmless.
type Balance struct {
	Date    time.Time
	Account Account
}

func (Balance) directive() {}

func (b Balance) Format() string {
	return fmt.Sprintf("; balance %s %s\n", b.Date.Format(dateLayout), b.Account.String())
}
