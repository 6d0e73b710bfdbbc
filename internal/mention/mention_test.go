package mention_test

import (
	"testing"

	"blackbeard/internal/mention"
)

func TestCombined(t *testing.T) {
	m := mention.Mention{Title: "Sold out show", Text: "anyone have tickets?"}
	if got := m.Combined(); got != "Sold out show anyone have tickets?" {
		t.Fatalf("unexpected combined text: %q", got)
	}
	m.Text = ""
	if got := m.Combined(); got != "Sold out show" {
		t.Fatalf("title-only combined text: %q", got)
	}
}

func TestIdentityKeyIsSourceQualified(t *testing.T) {
	m := mention.Mention{Source: mention.SourceReddit, URL: "https://reddit.com/r/tickets/abc"}
	if got := m.IdentityKey(); got != "reddit-https://reddit.com/r/tickets/abc" {
		t.Fatalf("unexpected identity key: %q", got)
	}
}

func TestDedupKeepsFirstOccurrence(t *testing.T) {
	mentions := []mention.Mention{
		{Title: "first", URL: "https://a"},
		{Title: "no url"},
		{Title: "second", URL: "https://b"},
		{Title: "duplicate", URL: "https://a"},
	}
	out := mention.Dedup(mentions)
	if len(out) != 2 {
		t.Fatalf("expected 2 mentions, got %d", len(out))
	}
	if out[0].Title != "first" || out[1].Title != "second" {
		t.Fatalf("unexpected order: %q, %q", out[0].Title, out[1].Title)
	}
}

func TestCombinedText(t *testing.T) {
	mentions := []mention.Mention{
		{Title: "one", Text: "alpha"},
		{Title: "two"},
	}
	if got := mention.CombinedText(mentions); got != "one alpha two" {
		t.Fatalf("unexpected combined text: %q", got)
	}
}
