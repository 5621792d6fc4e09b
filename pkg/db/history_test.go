package db

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *Connection {
	t.Helper()
	conn, err := Open(filepath.Join(t.TempDir(), ".history", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHistoryRecordAndStats(t *testing.T) {
	history := NewHistory(openTestDB(t))

	start := time.Date(2024, time.June, 13, 8, 0, 0, 0, time.UTC)
	runs := []RunRecord{
		{StartedAt: start, FinishedAt: start.Add(2 * time.Second), Accounts: 2, Transactions: 120, SkippedRows: 1, OutputFile: "/data/main.beancount"},
		{StartedAt: start.Add(time.Hour), FinishedAt: start.Add(time.Hour + time.Second), Accounts: 2, Transactions: 125, SkippedRows: 0, OutputFile: "/data/main.beancount"},
	}
	for _, run := range runs {
		if err := history.Record(run); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	stats, err := history.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalRuns != 2 {
		t.Errorf("TotalRuns = %d, expected 2", stats.TotalRuns)
	}
	if stats.TotalTransactions != 245 {
		t.Errorf("TotalTransactions = %d, expected 245", stats.TotalTransactions)
	}
	if stats.TotalSkipped != 1 {
		t.Errorf("TotalSkipped = %d, expected 1", stats.TotalSkipped)
	}
	if !stats.LastRun.Valid || stats.LastRun.String != "2024-06-13T09:00:01Z" {
		t.Errorf("LastRun = %+v", stats.LastRun)
	}
}

func TestStatsEmptyHistory(t *testing.T) {
	history := NewHistory(openTestDB(t))

	stats, err := history.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalRuns != 0 || stats.TotalTransactions != 0 || stats.TotalSkipped != 0 {
		t.Errorf("stats = %+v, expected zeros", stats)
	}
	if stats.LastRun.Valid {
		t.Errorf("LastRun = %+v, expected null", stats.LastRun)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "history.db")
	conn, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	if err := conn.db.Ping(); err != nil {
		t.Errorf("ping after open: %v", err)
	}
	if conn.GetPath() != path {
		t.Errorf("GetPath() = %q, expected %q", conn.GetPath(), path)
	}
}
