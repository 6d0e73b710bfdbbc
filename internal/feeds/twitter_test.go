package feeds_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"blackbeard/internal/feeds"
	"blackbeard/internal/mention"
)

func TestTwitterDisabledWithoutToken(t *testing.T) {
	client := feeds.NewTwitter("")
	if client.Enabled() {
		t.Fatal("expected disabled client")
	}
	mentions, err := client.SearchRecent(context.Background(), "sold out")
	if err != nil || mentions != nil {
		t.Fatalf("expected nil/nil, got %v/%v", mentions, err)
	}
}

func TestTwitterSearchRecent(t *testing.T) {
	var gotAuth, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "data": [
    {"id": "1234", "text": "Kill Tony sold out in seconds", "created_at": "2026-08-20T18:00:00Z",
     "public_metrics": {"like_count": 10, "retweet_count": 4, "reply_count": 3}}
  ]
}`))
	}))
	defer server.Close()

	client := feeds.NewTwitter("bearer-token", feeds.WithTwitterBaseURL(server.URL))
	mentions, err := client.SearchRecent(context.Background(), "sold out tickets -is:retweet")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if gotAuth != "Bearer bearer-token" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	if gotQuery != "sold out tickets -is:retweet" {
		t.Fatalf("query = %q", gotQuery)
	}

	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d", len(mentions))
	}
	m := mentions[0]
	if m.Source != mention.SourceTwitter {
		t.Fatalf("source = %q", m.Source)
	}
	if m.URL != "https://x.com/i/status/1234" {
		t.Fatalf("url = %q", m.URL)
	}
	// Retweets weigh triple in the engagement figure.
	if m.Engagement != 22 || m.Comments != 3 {
		t.Fatalf("engagement = %d comments = %d", m.Engagement, m.Comments)
	}
	if m.CreatedAt == nil || m.CreatedAt.Hour() != 18 {
		t.Fatalf("created at = %v", m.CreatedAt)
	}
}
