package novelty

import (
	"context"
	"sync"
)

// MemoryJournal is an in-memory Journal used by tests and by callers
// that want novelty semantics without persistence.
type MemoryJournal struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryJournal returns an empty in-memory journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{entries: map[string]Entry{}}
}

// Load returns a copy of the stored entries.
func (j *MemoryJournal) Load(ctx context.Context) (map[string]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make(map[string]Entry, len(j.entries))
	for k, v := range j.entries {
		out[k] = v
	}
	return out, nil
}

// Save replaces the stored entries with a copy of the input.
func (j *MemoryJournal) Save(ctx context.Context, entries map[string]Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make(map[string]Entry, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	j.entries = out
	return nil
}

// Len reports the number of stored keys.
func (j *MemoryJournal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}
