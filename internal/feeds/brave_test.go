package feeds_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"blackbeard/internal/feeds"
	"blackbeard/internal/mention"
)

func TestBraveDisabledWithoutKey(t *testing.T) {
	client := feeds.NewBrave("")
	if client.Enabled() {
		t.Fatal("expected disabled client")
	}
	mentions, err := client.Search(context.Background(), "sold out tickets", 10)
	if err != nil || mentions != nil {
		t.Fatalf("expected nil/nil, got %v/%v", mentions, err)
	}
}

func TestBraveSearch(t *testing.T) {
	var gotToken, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Subscription-Token")
		gotQuery = r.URL.Query().Encode()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "web": {"results": [
    {"title": "Goose adds third night", "description": "tickets on sale now", "url": "https://example.test/goose"},
    {"title": "", "url": "https://example.test/blank"}
  ]}
}`))
	}))
	defer server.Close()

	client := feeds.NewBrave("brave-key", feeds.WithBraveBaseURL(server.URL))
	mentions, err := client.Search(context.Background(), "goose tickets", 0)
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if gotToken != "brave-key" {
		t.Fatalf("subscription token = %q", gotToken)
	}
	if gotQuery != "count=10&freshness=pw&q=goose+tickets" {
		t.Fatalf("query = %q", gotQuery)
	}

	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention (untitled dropped), got %d", len(mentions))
	}
	m := mentions[0]
	if m.Source != mention.SourceBrave || m.Title != "Goose adds third night" {
		t.Fatalf("unexpected mention: %+v", m)
	}
	if m.Text != "tickets on sale now" || m.URL != "https://example.test/goose" {
		t.Fatalf("unexpected mention fields: %+v", m)
	}
}
