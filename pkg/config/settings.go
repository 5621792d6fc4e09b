package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quarryforge/monzo-beancount/pkg/ledger"
)

// Settings is the user settings file: ledger metadata, sheet sources, and
// the pre-declared account lists. It is read-only after loading.
type Settings struct {
	StartDate      Date              `yaml:"start_date"`
	Title          string            `yaml:"title"`
	Currency       string            `yaml:"currency"`
	SheetAccounts  []SheetAccount    `yaml:"sheet_accounts"`
	ManualAccounts []string          `yaml:"manual_accounts"`
	Assets         []ledger.Account  `yaml:"assets"`
	Liabilities    []ledger.Account  `yaml:"liabilities"`
	Income         []ledger.Account  `yaml:"income"`
	Expenses       []ledger.Account  `yaml:"expenses"`
	Credentials    string            `yaml:"credentials_file"`
	TokenCache     string            `yaml:"token_file"`
}

// SheetAccount identifies one bank account exported to a Google Sheet.
type SheetAccount struct {
	Country     string `yaml:"country"`
	Institution string `yaml:"institution"`
	Name        string `yaml:"name"`
	SheetName   string `yaml:"sheet_name"`
	SheetID     string `yaml:"sheet_id"`
}

// Date wraps time.Time to decode "YYYY-MM-DD" scalars from YAML.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}

	d.Time = t
	return nil
}

// MissingAccountsError reports that a required account list is absent from
// the settings file. It is fatal to the whole run.
type MissingAccountsError struct {
	List string
}

func (e *MissingAccountsError) Error() string {
	return fmt.Sprintf("settings: required account list %q is missing", e.List)
}

// LoadSettings reads and validates the settings YAML file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if s.Title == "" {
		s.Title = "Monzo Accounts"
	}
	if s.Currency == "" {
		s.Currency = "GBP"
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the required account lists. Assets and income accounts
// drive classification and must be declared, even if empty lists would be
// legal YAML.
func (s *Settings) Validate() error {
	if s.Assets == nil {
		return &MissingAccountsError{List: "assets"}
	}
	if s.Income == nil {
		return &MissingAccountsError{List: "income"}
	}
	if s.StartDate.IsZero() {
		return fmt.Errorf("settings: start_date is required")
	}
	return nil
}
