// Package pathutil provides centralized path management for the ledger
// data directory.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	includeDirName  = "include"
	importDirName   = "import"
	mainFileName    = "main.beancount"
	settingsName    = "beancount.yaml"
	historyDBName   = "history.db"
	credentialsName = "credentials.json"
	tokenCacheName  = "token.json"
)

// Resolver manages paths inside the data directory:
//
//	{data}/main.beancount   the generated main ledger file
//	{data}/beancount.yaml   user settings
//	{data}/include/         ledger fragments pulled in via include directives
//	{data}/import/          CSV files awaiting conversion
//	{data}/.history/        run-history database
type Resolver struct {
	dataDir string
}

// New creates a Resolver rooted at dataDir.
func New(dataDir string) *Resolver {
	return &Resolver{dataDir: dataDir}
}

func (r *Resolver) DataDir() string      { return r.dataDir }
func (r *Resolver) IncludeDir() string   { return filepath.Join(r.dataDir, includeDirName) }
func (r *Resolver) ImportDir() string    { return filepath.Join(r.dataDir, importDirName) }
func (r *Resolver) MainFile() string     { return filepath.Join(r.dataDir, mainFileName) }
func (r *Resolver) SettingsFile() string { return filepath.Join(r.dataDir, settingsName) }

// HistoryDBPath is the SQLite file recording generation runs.
func (r *Resolver) HistoryDBPath() string {
	return filepath.Join(r.dataDir, ".history", historyDBName)
}

// CredentialsFile is the default location of the Google API credentials.
func (r *Resolver) CredentialsFile() string {
	return filepath.Join(r.dataDir, credentialsName)
}

// TokenCacheFile is the default location of the cached OAuth token.
func (r *Resolver) TokenCacheFile() string {
	return filepath.Join(r.dataDir, tokenCacheName)
}

// IncludeFile returns the path of a named fragment in the include
// directory.
func (r *Resolver) IncludeFile(name string) string {
	return filepath.Join(r.IncludeDir(), name+".beancount")
}

// IncludePath reduces a fragment path to the parent-directory-and-filename
// form used in include directives: ".../data/include/x.beancount" becomes
// "include/x.beancount".
func IncludePath(path string) (string, error) {
	dir := filepath.Base(filepath.Dir(path))
	file := filepath.Base(path)
	if dir == "." || dir == string(filepath.Separator) || file == "." {
		return "", fmt.Errorf("path %q has fewer than two components", path)
	}
	return filepath.ToSlash(filepath.Join(dir, file)), nil
}

// FileExists reports whether a path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates a directory and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func EnsureParentDir(path string) error {
	return EnsureDir(filepath.Dir(path))
}
