package pathutil

import (
	"fmt"
	"os"
)

// Initialize creates the data directory tree, an empty main file, a
// starter settings file, and records DATA_DIR in .env. Existing settings
// are left untouched.
func (r *Resolver) Initialize() error {
	if err := EnsureDir(r.IncludeDir()); err != nil {
		return err
	}
	if err := EnsureDir(r.ImportDir()); err != nil {
		return err
	}

	if !FileExists(r.MainFile()) {
		if err := os.WriteFile(r.MainFile(), nil, 0o644); err != nil {
			return fmt.Errorf("failed to create main file: %w", err)
		}
	}

	if !FileExists(r.SettingsFile()) {
		if err := os.WriteFile(r.SettingsFile(), []byte(starterSettings), 0o644); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	env := fmt.Sprintf("DATA_DIR=%q\n", r.DataDir())
	if err := os.WriteFile(".env", []byte(env), 0o644); err != nil {
		return fmt.Errorf("failed to write .env: %w", err)
	}

	return nil
}

const starterSettings = `start_date: "2024-01-01"
title: "Monzo Accounts"
currency: "GBP"

sheet_accounts:
  - country: "GBP"
    institution: "Monzo"
    name: "Personal"
    sheet_name: "Personal Account Transactions"
    sheet_id: "XXX"

assets:
  - account_type: "Assets"
    country: "GBP"
    institution: "Monzo"
    name: "Personal"

income:
  - account_type: "Income"
    country: "GBP"
    institution: "Monzo"
    name: "Personal"
`
