// Package db records generation-run history in a local SQLite database.
// History is informational only: it powers the stats command and never
// filters or deduplicates ledger output.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Connection manages a SQLite database connection.
type Connection struct {
	db   *sql.DB
	path string
}

// Open opens the history database, creating the file and schema if
// needed. WAL mode keeps concurrent readers cheap.
func Open(path string) (*Connection, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Connection{db: db, path: path}, nil
}

// GetPath returns the database file path.
func (c *Connection) GetPath() string {
	return c.path
}

// Close closes the database connection.
func (c *Connection) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS generation_runs (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at    TEXT NOT NULL,
    finished_at   TEXT NOT NULL,
    accounts      INTEGER NOT NULL,
    transactions  INTEGER NOT NULL,
    skipped_rows  INTEGER NOT NULL,
    output_file   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_generation_runs_started
    ON generation_runs(started_at);
`
