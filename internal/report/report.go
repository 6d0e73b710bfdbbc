// Package report defines the persisted output of a scan and renders it
// for delivery.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"blackbeard/internal/score"
)

// Kind distinguishes the two report producers.
type Kind string

const (
	KindScan      Kind = "scan"
	KindWatchlist Kind = "watchlist"
)

// MaxEvents caps how many ranked events a report retains.
const MaxEvents = 25

// MentionRef is the subset of a mention kept in the stored report.
type MentionRef struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Event is one ranked cluster in a scan report.
type Event struct {
	Key          string          `json:"key"`
	DisplayName  string          `json:"display_name"`
	RawTitle     string          `json:"raw_title"`
	EventName    string          `json:"event_name,omitempty"`
	EventType    string          `json:"event_type"`
	VenueName    string          `json:"venue_name,omitempty"`
	Category     string          `json:"category"`
	OfficialURL  string          `json:"official_url,omitempty"`
	ResaleURL    string          `json:"resale_url,omitempty"`
	Score        int             `json:"score"`
	Breakdown    score.Breakdown `json:"breakdown"`
	MentionCount int             `json:"mention_count"`
	Sources      []string        `json:"sources"`
	Mentions     []MentionRef    `json:"mentions"`
	New          bool            `json:"new"`
}

// Find is one watchlist discovery: a new tour date from SeatGeek or an
// announcement surfaced by web search.
type Find struct {
	Artist   string `json:"artist"`
	Tier     string `json:"tier"`
	Category string `json:"category,omitempty"`
	Title    string `json:"title,omitempty"`
	Venue    string `json:"venue,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
	Date     string `json:"date,omitempty"`
	URL      string `json:"url,omitempty"`
	Source   string `json:"source"`
}

// Report is the persisted result of one run.
type Report struct {
	ID            string        `json:"id"`
	Kind          Kind          `json:"kind"`
	Timestamp     time.Time     `json:"timestamp"`
	Duration      time.Duration `json:"duration"`
	TotalMentions int           `json:"total_mentions"`
	EventsScored  int           `json:"events_scored"`
	Events        []Event       `json:"events,omitempty"`
	Finds         []Find        `json:"finds,omitempty"`
	NewKeys       []string      `json:"new_keys,omitempty"`
}

// New initializes a report shell for the given kind.
func New(kind Kind, timestamp time.Time) *Report {
	return &Report{
		ID:        uuid.NewString(),
		Kind:      kind,
		Timestamp: timestamp.UTC(),
	}
}

// Date returns the report day in YYYY-MM-DD form, the retrieval key
// used by the HTTP API and CLI.
func (r *Report) Date() string {
	return r.Timestamp.UTC().Format("2006-01-02")
}

// Rank sorts events by descending score, keeping insertion order for
// ties, and truncates to MaxEvents.
func Rank(events []Event) []Event {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Score > events[j].Score
	})
	if len(events) > MaxEvents {
		events = events[:MaxEvents]
	}
	return events
}
