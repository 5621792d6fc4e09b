package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/quarryforge/monzo-beancount/pkg/ledger"
)

const settingsYAML = `start_date: 2024-01-01
title: My Accounts
currency: GBP
sheet_accounts:
  - country: GBP
    institution: Monzo
    name: Personal
    sheet_name: Personal
    sheet_id: 1abc
manual_accounts:
  - mortgage
assets:
  - account_type: Assets
    country: GBP
    institution: NSI
    name: Premium Bonds
liabilities: []
income:
  - account_type: Income
    country: GBP
    institution: Monzo
    name: Personal
expenses: []
`

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beancount.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings(writeSettings(t, settingsYAML))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	if s.Title != "My Accounts" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.StartDate.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("StartDate = %v", s.StartDate)
	}
	if len(s.SheetAccounts) != 1 || s.SheetAccounts[0].SheetID != "1abc" {
		t.Errorf("SheetAccounts = %+v", s.SheetAccounts)
	}
	if len(s.Assets) != 1 || s.Assets[0].Type != ledger.Assets || s.Assets[0].Name != "Premium Bonds" {
		t.Errorf("Assets = %+v", s.Assets)
	}
	if len(s.ManualAccounts) != 1 || s.ManualAccounts[0] != "mortgage" {
		t.Errorf("ManualAccounts = %+v", s.ManualAccounts)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(writeSettings(t, `start_date: 2024-01-01
assets: []
income: []
`))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Title != "Monzo Accounts" {
		t.Errorf("default Title = %q", s.Title)
	}
	if s.Currency != "GBP" {
		t.Errorf("default Currency = %q", s.Currency)
	}
}

func TestLoadSettingsMissingAccounts(t *testing.T) {
	tests := []struct {
		name    string
		content string
		list    string
	}{
		{"no assets", "start_date: 2024-01-01\nincome: []\n", "assets"},
		{"no income", "start_date: 2024-01-01\nassets: []\n", "income"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(writeSettings(t, tt.content))
			var merr *MissingAccountsError
			if !errors.As(err, &merr) {
				t.Fatalf("expected *MissingAccountsError, got %v", err)
			}
			if merr.List != tt.list {
				t.Errorf("List = %q, expected %q", merr.List, tt.list)
			}
		})
	}
}

func TestLoadSettingsMissingStartDate(t *testing.T) {
	_, err := LoadSettings(writeSettings(t, "assets: []\nincome: []\n"))
	if err == nil {
		t.Fatal("expected error for missing start_date")
	}
}

func TestLoadSettingsBadDate(t *testing.T) {
	_, err := LoadSettings(writeSettings(t, "start_date: 01/06/2024\nassets: []\nincome: []\n"))
	if err == nil {
		t.Fatal("expected error for malformed start_date")
	}
}

func TestLoadSettingsBadAccountType(t *testing.T) {
	_, err := LoadSettings(writeSettings(t, `start_date: 2024-01-01
assets:
  - account_type: Revenue
    country: GBP
    institution: X
    name: Y
income: []
`))
	if err == nil {
		t.Fatal("expected error for unknown account type")
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("DATA_DIR=/tmp/ledger\nDEBUG=true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DATA_DIR", "")
	os.Unsetenv("DATA_DIR")

	env, err := LoadEnv(envFile)
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if env.DataDir != "/tmp/ledger" {
		t.Errorf("DataDir = %q", env.DataDir)
	}
	if !env.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadEnvMissingDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	os.Unsetenv("DATA_DIR")

	if _, err := LoadEnv(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Fatal("expected error for missing .env file")
	}
}
