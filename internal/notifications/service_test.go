package notifications_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blackbeard/internal/notifications"
	"blackbeard/internal/testsupport"
)

type captured struct {
	title    string
	tags     string
	priority string
	body     string
}

func newCaptureServer(t *testing.T, got *captured) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got.title = r.Header.Get("Title")
		got.tags = r.Header.Get("Tags")
		got.priority = r.Header.Get("Priority")
		got.body = string(body)
		w.WriteHeader(http.StatusOK)
	}))
}

func TestNoopServiceWithoutTopic(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	svc := notifications.NewService(cfg)
	ctx := context.Background()

	if err := svc.NotifyScanReport(ctx, "report body", 3); err != nil {
		t.Fatalf("noop scan notify: %v", err)
	}
	if err := svc.NotifyError(ctx, errors.New("boom"), "scan"); err != nil {
		t.Fatalf("noop error notify: %v", err)
	}
	if err := svc.TestNotification(ctx); err != nil {
		t.Fatalf("noop test notify: %v", err)
	}
}

func TestNotifyScanReportHeaders(t *testing.T) {
	var got captured
	server := newCaptureServer(t, &got)
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithNtfyTopic(server.URL))
	svc := notifications.NewService(cfg)

	if err := svc.NotifyScanReport(context.Background(), "scan body", 4); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if got.title != "Blackbeard - Scan Report (4 events)" {
		t.Fatalf("title = %q", got.title)
	}
	if got.tags != "blackbeard,scan,report" {
		t.Fatalf("tags = %q", got.tags)
	}
	if got.priority != "high" {
		t.Fatalf("priority = %q, want high for non-empty report", got.priority)
	}
	if got.body != "scan body" {
		t.Fatalf("body = %q", got.body)
	}
}

func TestNotifyScanReportSkipsEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty report")
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithNtfyTopic(server.URL))
	svc := notifications.NewService(cfg)
	if err := svc.NotifyScanReport(context.Background(), "   ", 0); err != nil {
		t.Fatalf("notify: %v", err)
	}
}

func TestNotifyRespectsToggles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when the category is disabled")
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithNtfyTopic(server.URL))
	cfg.Notifications.Scan = false
	cfg.Notifications.Watchlist = false
	cfg.Notifications.Errors = false
	svc := notifications.NewService(cfg)
	ctx := context.Background()

	if err := svc.NotifyScanReport(ctx, "body", 1); err != nil {
		t.Fatalf("scan notify: %v", err)
	}
	if err := svc.NotifyWatchlistReport(ctx, "body", 1); err != nil {
		t.Fatalf("watchlist notify: %v", err)
	}
	if err := svc.NotifyError(ctx, errors.New("boom"), "scan"); err != nil {
		t.Fatalf("error notify: %v", err)
	}
}

func TestNotifyErrorMessage(t *testing.T) {
	var got captured
	server := newCaptureServer(t, &got)
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithNtfyTopic(server.URL))
	svc := notifications.NewService(cfg)

	if err := svc.NotifyError(context.Background(), errors.New("db locked"), "watchlist scan"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if got.body != "Error during watchlist scan: db locked" {
		t.Fatalf("body = %q", got.body)
	}
	if got.title != "Blackbeard - Error" || got.priority != "high" {
		t.Fatalf("title = %q priority = %q", got.title, got.priority)
	}
}

func TestTestNotificationLowPriority(t *testing.T) {
	var got captured
	server := newCaptureServer(t, &got)
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithNtfyTopic(server.URL))
	svc := notifications.NewService(cfg)

	if err := svc.TestNotification(context.Background()); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if got.priority != "low" {
		t.Fatalf("priority = %q", got.priority)
	}
}

func TestSendSurfacesHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden topic", http.StatusForbidden)
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithNtfyTopic(server.URL))
	svc := notifications.NewService(cfg)
	if err := svc.TestNotification(context.Background()); err == nil {
		t.Fatal("expected error on http 403")
	}
}
