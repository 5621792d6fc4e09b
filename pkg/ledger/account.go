// Package ledger provides the Beancount data model: accounts, postings,
// directives, and their plain-text formatting.
package ledger

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// AccountType represents the permissible Beancount account types.
type AccountType string

const (
	Assets      AccountType = "Assets"
	Liabilities AccountType = "Liabilities"
	Income      AccountType = "Income"
	Expenses    AccountType = "Expenses"
	Equity      AccountType = "Equity"
)

// String returns the account type as it appears in a ledger file.
func (t AccountType) String() string {
	return string(t)
}

// UnmarshalYAML decodes an account type from its string form and rejects
// anything outside the closed set.
func (t *AccountType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	switch AccountType(s) {
	case Assets, Liabilities, Income, Expenses, Equity:
		*t = AccountType(s)
		return nil
	}

	return fmt.Errorf("unknown account type %q", s)
}

// Account is an immutable Beancount account value. Two accounts are equal
// iff all fields match; construct a fresh value per posting rather than
// sharing identity.
type Account struct {
	Type          AccountType `yaml:"account_type"`
	Country       string      `yaml:"country"`
	Institution   string      `yaml:"institution"`
	Name          string      `yaml:"name"`
	SubAccount    string      `yaml:"sub_account,omitempty"`
	TransactionID string      `yaml:"-"`
}

// String renders the account name in ledger form:
// Type:COUNTRY:Institution:Name[:SubAccount]. Equity accounts render as
// Equity:Name only. The country is upper-cased and the remaining segments
// are word-capitalized with spaces removed.
func (a Account) String() string {
	if a.Type == Equity {
		return fmt.Sprintf("%s:%s", a.Type, PascalCase(a.Name))
	}

	var b strings.Builder
	b.WriteString(a.Type.String())
	b.WriteByte(':')
	b.WriteString(strings.ToUpper(a.Country))
	b.WriteByte(':')
	b.WriteString(PascalCase(a.Institution))
	b.WriteByte(':')
	b.WriteString(PascalCase(a.Name))
	if a.SubAccount != "" {
		b.WriteByte(':')
		b.WriteString(PascalCase(a.SubAccount))
	}

	return b.String()
}

// PascalCase converts a free-text segment to the capitalized, space-free
// form used in account names: "NSI Premium Bonds" -> "NsiPremiumBonds".
func PascalCase(s string) string {
	return strings.Join(capitalizeWords(s), "")
}

// TitleCase converts free text to a title-cased heading, preserving spaces.
func TitleCase(s string) string {
	return strings.Join(capitalizeWords(s), " ")
}

func capitalizeWords(s string) []string {
	// A cases.Caser carries internal state and is not safe for concurrent
	// use, so each call gets its own.
	caser := cases.Title(language.English)
	words := splitWords(s)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return words
}

func splitWords(s string) []string {
	var words []string
	for _, field := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}) {
		words = append(words, splitCaseBoundaries(field)...)
	}
	return words
}

// splitCaseBoundaries splits at lower-to-upper transitions so that
// already-cased input survives re-casing unchanged: PascalCase is
// idempotent.
func splitCaseBoundaries(s string) []string {
	runes := []rune(s)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && unicode.IsLower(runes[i-1]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}
