package db

import (
	"database/sql"
	"fmt"
	"time"
)

// RunRecord is one completed generation run.
type RunRecord struct {
	StartedAt    time.Time
	FinishedAt   time.Time
	Accounts     int
	Transactions int
	SkippedRows  int
	OutputFile   string
}

// RunStats aggregates the run history.
type RunStats struct {
	TotalRuns         int64
	TotalTransactions int64
	TotalSkipped      int64
	LastRun           sql.NullString
}

// History provides access to the generation-run table.
type History struct {
	conn *Connection
}

// NewHistory creates a History over an open connection.
func NewHistory(conn *Connection) *History {
	return &History{conn: conn}
}

// Record appends one run to the history.
func (h *History) Record(run RunRecord) error {
	_, err := h.conn.db.Exec(`
		INSERT INTO generation_runs
			(started_at, finished_at, accounts, transactions, skipped_rows, output_file)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339),
		run.FinishedAt.UTC().Format(time.RFC3339),
		run.Accounts,
		run.Transactions,
		run.SkippedRows,
		run.OutputFile,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Stats aggregates the recorded runs.
func (h *History) Stats() (RunStats, error) {
	var stats RunStats
	err := h.conn.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(transactions), 0),
		       COALESCE(SUM(skipped_rows), 0),
		       MAX(finished_at)
		FROM generation_runs`).
		Scan(&stats.TotalRuns, &stats.TotalTransactions, &stats.TotalSkipped, &stats.LastRun)
	if err != nil {
		return RunStats{}, fmt.Errorf("failed to read run stats: %w", err)
	}
	return stats, nil
}
