package feeds_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"blackbeard/internal/feeds"
)

func TestTrendsDisabledWithoutBaseURL(t *testing.T) {
	client := feeds.NewTrends("")
	if client.Enabled() {
		t.Fatal("expected disabled client")
	}
	verdict, err := client.Lookup(context.Background(), "Kill Tony")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if verdict != (feeds.Trend{}) {
		t.Fatalf("expected zero verdict, got %+v", verdict)
	}
}

func TestTrendsLookup(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spike": 3, "peak": 87, "trending": true, "hot": false}`))
	}))
	defer server.Close()

	client := feeds.NewTrends(server.URL)
	verdict, err := client.Lookup(context.Background(), "Kill Tony")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if gotQuery != "Kill Tony" {
		t.Fatalf("query = %q", gotQuery)
	}
	if !verdict.Trending || verdict.Hot || verdict.Peak != 87 {
		t.Fatalf("unexpected verdict: %+v", verdict)
	}
}

func TestTrendsEmptyNameShortCircuits(t *testing.T) {
	client := feeds.NewTrends("http://127.0.0.1:1")
	verdict, err := client.Lookup(context.Background(), "  ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if verdict != (feeds.Trend{}) {
		t.Fatalf("expected zero verdict, got %+v", verdict)
	}
}
