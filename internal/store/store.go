// Package store persists scan reports and the novelty journal in a
// single SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"blackbeard/internal/config"
	"blackbeard/internal/report"
)

// ErrNotFound indicates no report matched the query.
var ErrNotFound = errors.New("report not found")

// Store manages report and novelty persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "blackbeard.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// SaveReport inserts or replaces a report.
func (s *Store) SaveReport(ctx context.Context, r *report.Report) error {
	if r == nil {
		return errors.New("nil report")
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO reports (
            id, kind, report_date, created_at, mention_count, event_count, payload_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		string(r.Kind),
		r.Date(),
		r.Timestamp.UTC().Format(time.RFC3339Nano),
		r.TotalMentions,
		r.EventsScored,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// LatestReport returns the most recent report of the given kind.
func (s *Store) LatestReport(ctx context.Context, kind report.Kind) (*report.Report, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT payload_json FROM reports WHERE kind = ? ORDER BY created_at DESC LIMIT 1`,
		string(kind),
	)
	return scanReport(row)
}

// ReportByDate returns the newest report of the given kind for a
// YYYY-MM-DD date.
func (s *Store) ReportByDate(ctx context.Context, kind report.Kind, date string) (*report.Report, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT payload_json FROM reports WHERE kind = ? AND report_date = ? ORDER BY created_at DESC LIMIT 1`,
		string(kind),
		date,
	)
	return scanReport(row)
}

// ReportByID returns a report by identifier.
func (s *Store) ReportByID(ctx context.Context, id string) (*report.Report, error) {
	row := s.db.QueryRowContext(ctx, `SELECT payload_json FROM reports WHERE id = ?`, id)
	return scanReport(row)
}

// Summary describes one stored report without its full payload.
type Summary struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	MentionCount int       `json:"mention_count"`
	EventCount   int       `json:"event_count"`
}

// ListReports returns summaries of stored reports, newest first. An
// empty kind lists every kind.
func (s *Store) ListReports(ctx context.Context, kind report.Kind, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, kind, report_date, created_at, mention_count, event_count
        FROM reports`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var (
			summary   Summary
			createdAt string
		)
		if err := rows.Scan(&summary.ID, &summary.Kind, &summary.Date, &createdAt, &summary.MentionCount, &summary.EventCount); err != nil {
			return nil, fmt.Errorf("scan report summary: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			summary.CreatedAt = ts
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func scanReport(row *sql.Row) (*report.Report, error) {
	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan report: %w", err)
	}
	var r report.Report
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &r, nil
}
