package store

import (
	"context"
	"fmt"
	"time"

	"blackbeard/internal/novelty"
)

// Journal returns the novelty journal backed by this store.
func (s *Store) Journal() novelty.Journal {
	return &sqliteJournal{store: s}
}

type sqliteJournal struct {
	store *Store
}

// Load reads every tracked key. Rows with unparseable timestamps are
// kept with a zero first-seen rather than dropped; the journal never
// fails a run over bad state.
func (j *sqliteJournal) Load(ctx context.Context) (map[string]novelty.Entry, error) {
	rows, err := j.store.db.QueryContext(ctx, `SELECT key, first_seen FROM novelty_keys`)
	if err != nil {
		return map[string]novelty.Entry{}, nil
	}
	defer rows.Close()

	entries := map[string]novelty.Entry{}
	for rows.Next() {
		var key, firstSeen string
		if err := rows.Scan(&key, &firstSeen); err != nil {
			continue
		}
		entry := novelty.Entry{}
		if ts, parseErr := time.Parse(time.RFC3339Nano, firstSeen); parseErr == nil {
			entry.FirstSeen = ts
		}
		entries[key] = entry
	}
	return entries, nil
}

// Save appends new keys. Existing keys keep their original first-seen
// timestamp; nothing is ever deleted.
func (j *sqliteJournal) Save(ctx context.Context, entries map[string]novelty.Entry) error {
	tx, err := j.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin journal tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO novelty_keys (key, first_seen) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare journal insert: %w", err)
	}
	defer stmt.Close()

	for key, entry := range entries {
		if _, err := stmt.ExecContext(ctx, key, entry.FirstSeen.UTC().Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("insert journal key: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit journal: %w", err)
	}
	return nil
}

// NoveltyKeyCount reports the journal size, used by diagnostics.
func (s *Store) NoveltyKeyCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM novelty_keys`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count novelty keys: %w", err)
	}
	return count, nil
}
