// Package mention defines the normalized record produced by every feed
// connector and consumed by the aggregation pipeline.
package mention

import (
	"fmt"
	"strings"
	"time"
)

// Source identifies the feed a mention came from.
type Source string

const (
	SourceReddit   Source = "reddit"
	SourceBrave    Source = "brave"
	SourceTwitter  Source = "twitter"
	SourceSeatGeek Source = "seatgeek"
	SourceWeb      Source = "web"
)

// Mention is one raw text record from a source. URL is the identity key
// for in-run dedup and cross-run novelty.
type Mention struct {
	Source     Source     `json:"source"`
	Title      string     `json:"title"`
	Text       string     `json:"text"`
	URL        string     `json:"url"`
	Engagement int        `json:"engagement"`
	Comments   int        `json:"comments"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	Community  string     `json:"community,omitempty"`
}

// Combined returns title and text joined for keyword matching.
func (m Mention) Combined() string {
	if m.Text == "" {
		return m.Title
	}
	return m.Title + " " + m.Text
}

// IdentityKey returns the source-qualified novelty key for this mention.
func (m Mention) IdentityKey() string {
	return fmt.Sprintf("%s-%s", m.Source, m.URL)
}

// Dedup removes mentions with a URL already seen earlier in the slice,
// keeping the first occurrence. Order is preserved.
func Dedup(mentions []Mention) []Mention {
	seen := make(map[string]struct{}, len(mentions))
	out := make([]Mention, 0, len(mentions))
	for _, m := range mentions {
		key := strings.TrimSpace(m.URL)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

// CombinedText joins title and text of every mention, used for
// cluster-wide keyword matching.
func CombinedText(mentions []Mention) string {
	parts := make([]string, 0, len(mentions))
	for _, m := range mentions {
		parts = append(parts, m.Combined())
	}
	return strings.Join(parts, " ")
}
