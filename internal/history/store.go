// Package history keeps a small sqlite record of observed daily usage
// totals, one row per user-day. The dashboard reads it back as the month's
// trend line. Losing it is harmless; it only ever mirrors what the billing
// API already reported.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// DefaultPath places the history DB next to the config file.
func DefaultPath(configDir string) string {
	return filepath.Join(configDir, "history.db")
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("history: creating DB dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: opening DB: %w", err)
	}

	store := &Store{db: db}
	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS usage_days (
		user TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		day INTEGER NOT NULL,
		total_requests INTEGER NOT NULL,
		UNIQUE(user, year, month, day)
	);`)
	if err != nil {
		return fmt.Errorf("history: creating schema: %w", err)
	}
	return nil
}

// Record stores the running month total observed on a given day, replacing
// any earlier reading for the same day.
func (s *Store) Record(user string, year, month, day, totalRequests int) error {
	_, err := s.db.Exec(
		`INSERT INTO usage_days (user, year, month, day, total_requests)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user, year, month, day) DO UPDATE SET total_requests = excluded.total_requests`,
		user, year, month, day, totalRequests,
	)
	if err != nil {
		return fmt.Errorf("history: recording usage: %w", err)
	}
	return nil
}

// DayTotal is one observed day of a month.
type DayTotal struct {
	Day           int
	TotalRequests int
}

// Series returns the month's observations in day order.
func (s *Store) Series(user string, year, month int) ([]DayTotal, error) {
	rows, err := s.db.Query(
		`SELECT day, total_requests FROM usage_days
		 WHERE user = ? AND year = ? AND month = ?
		 ORDER BY day`,
		user, year, month,
	)
	if err != nil {
		return nil, fmt.Errorf("history: reading series: %w", err)
	}
	defer rows.Close()

	var series []DayTotal
	for rows.Next() {
		var d DayTotal
		if err := rows.Scan(&d.Day, &d.TotalRequests); err != nil {
			return nil, fmt.Errorf("history: scanning row: %w", err)
		}
		series = append(series, d)
	}
	return series, rows.Err()
}
