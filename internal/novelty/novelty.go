// Package novelty suppresses repeat alerts by tracking which identity
// keys have been reported before.
package novelty

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Entry records when a key was first reported.
type Entry struct {
	FirstSeen time.Time `json:"first_seen"`
}

// Journal persists the key set between runs. Load returns an empty map
// when nothing usable is stored; it never fails on corruption.
type Journal interface {
	Load(ctx context.Context) (map[string]Entry, error)
	Save(ctx context.Context, entries map[string]Entry) error
}

// Tracker diffs a run's findings against the journal. Keys move from
// unseen to seen exactly once; nothing is ever pruned, so the journal
// grows without bound (a known limitation carried forward on purpose).
//
// Lifecycle per run: Begin loads the journal once, Observe is called
// per candidate key, Commit writes the journal back once.
type Tracker struct {
	journal Journal
	now     func() time.Time

	entries map[string]Entry
	dirty   bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the first-seen timestamp source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTracker builds a tracker over the given journal.
func NewTracker(journal Journal, opts ...Option) *Tracker {
	t := &Tracker{journal: journal, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Begin loads persisted state. Must be called before Observe.
func (t *Tracker) Begin(ctx context.Context) error {
	entries, err := t.journal.Load(ctx)
	if err != nil {
		return fmt.Errorf("load novelty journal: %w", err)
	}
	if entries == nil {
		entries = map[string]Entry{}
	}
	t.entries = entries
	t.dirty = false
	return nil
}

// Observe marks the key as seen and reports whether it was new. A key
// observed twice in one run is new only the first time.
func (t *Tracker) Observe(key string) bool {
	if t.entries == nil {
		t.entries = map[string]Entry{}
	}
	if _, ok := t.entries[key]; ok {
		return false
	}
	t.entries[key] = Entry{FirstSeen: t.now().UTC()}
	t.dirty = true
	return true
}

// Seen reports whether the key exists without recording it.
func (t *Tracker) Seen(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Commit persists the journal if anything changed during the run.
func (t *Tracker) Commit(ctx context.Context) error {
	if !t.dirty {
		return nil
	}
	if err := t.journal.Save(ctx, t.entries); err != nil {
		return fmt.Errorf("save novelty journal: %w", err)
	}
	t.dirty = false
	return nil
}

// Keys returns the tracked keys in sorted order, mainly for tests and
// diagnostics.
func (t *Tracker) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WatchlistKey builds the composite identity key for a watchlist
// finding.
func WatchlistKey(artist, date, venue string) string {
	return fmt.Sprintf("%s-%s-%s", artist, date, venue)
}
