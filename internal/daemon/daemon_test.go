package daemon_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"blackbeard/internal/daemon"
	"blackbeard/internal/report"
	"blackbeard/internal/store"
	"blackbeard/internal/testsupport"
)

func startDaemon(t *testing.T) (*daemon.Daemon, *store.Store) {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	d, err := daemon.New(cfg, st, nil)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("daemon.Start: %v", err)
	}
	t.Cleanup(d.Stop)
	return d, st
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestAPIHealth(t *testing.T) {
	d, _ := startDaemon(t)

	addr := d.APIAddr()
	if addr == "" {
		t.Fatal("api address empty after start")
	}

	var payload struct {
		Status      string `json:"status"`
		Running     bool   `json:"running"`
		DBPath      string `json:"db_path"`
		ReportCount int64  `json:"report_count"`
	}
	status := getJSON(t, fmt.Sprintf("http://%s/api/health", addr), &payload)
	if status != http.StatusOK {
		t.Fatalf("health status = %d", status)
	}
	if payload.Status != "ok" || !payload.Running {
		t.Fatalf("unexpected health payload: %+v", payload)
	}
	if payload.DBPath == "" {
		t.Fatal("health payload missing db path")
	}
}

func TestAPIReportEndpoints(t *testing.T) {
	d, st := startDaemon(t)
	addr := d.APIAddr()

	if status := getJSON(t, fmt.Sprintf("http://%s/api/reports/latest", addr), nil); status != http.StatusNotFound {
		t.Fatalf("latest on empty store = %d, want 404", status)
	}

	saved := report.New(report.KindScan, time.Date(2026, 8, 21, 8, 0, 0, 0, time.UTC))
	saved.TotalMentions = 5
	saved.Events = []report.Event{{Key: "goose tickets", DisplayName: "Goose", Score: 48, MentionCount: 5}}
	if err := st.SaveReport(context.Background(), saved); err != nil {
		t.Fatalf("save report: %v", err)
	}

	var fetched report.Report
	if status := getJSON(t, fmt.Sprintf("http://%s/api/reports/latest", addr), &fetched); status != http.StatusOK {
		t.Fatalf("latest = %d", status)
	}
	if fetched.ID != saved.ID || len(fetched.Events) != 1 {
		t.Fatalf("latest report mismatch: %+v", fetched)
	}

	var byDate report.Report
	if status := getJSON(t, fmt.Sprintf("http://%s/api/reports/2026-08-21", addr), &byDate); status != http.StatusOK {
		t.Fatalf("by date = %d", status)
	}
	if byDate.ID != saved.ID {
		t.Fatalf("by-date report mismatch: %+v", byDate)
	}

	var listing struct {
		Reports []store.Summary `json:"reports"`
	}
	if status := getJSON(t, fmt.Sprintf("http://%s/api/reports?kind=scan", addr), &listing); status != http.StatusOK {
		t.Fatalf("list = %d", status)
	}
	if len(listing.Reports) != 1 || listing.Reports[0].ID != saved.ID {
		t.Fatalf("listing mismatch: %+v", listing.Reports)
	}

	// Watchlist kind has no stored report.
	if status := getJSON(t, fmt.Sprintf("http://%s/api/reports/latest?kind=watchlist", addr), nil); status != http.StatusNotFound {
		t.Fatalf("watchlist latest = %d, want 404", status)
	}

	if status := getJSON(t, fmt.Sprintf("http://%s/api/reports/not-a-date", addr), nil); status != http.StatusNotFound {
		t.Fatalf("bad path = %d, want 404", status)
	}
}

func TestStartStopLifecycle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	d, err := daemon.New(cfg, st, nil)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := d.Start(context.Background()); err == nil {
		d.Stop()
		t.Fatal("second start should fail while running")
	}

	status := d.Status(context.Background())
	if !status.Running || status.StartedAt.IsZero() {
		t.Fatalf("unexpected status: %+v", status)
	}

	d.Stop()
	if d.Status(context.Background()).Running {
		t.Fatal("daemon still reports running after stop")
	}

	// A stopped daemon can start again.
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("restart: %v", err)
	}
	d.Stop()
}

func TestLogPathUnderLogDir(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	d, err := daemon.New(cfg, st, nil)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	want := filepath.Join(cfg.Paths.LogDir, "blackbeard.log")
	if got := d.LogPath(); got != want {
		t.Fatalf("log path = %q, want %q", got, want)
	}
}
