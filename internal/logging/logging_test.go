package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"blackbeard/internal/logging"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	scoped := logging.NewComponentLogger(logger, "scanner")
	scoped.Info("scan complete", logging.Int("events", 4), logging.String("query", "sold out tickets"))
	scoped.Debug("should be suppressed")

	out := readLog(t, path)
	if !strings.Contains(out, " INFO scanner: scan complete") {
		t.Fatalf("unexpected line: %q", out)
	}
	if !strings.Contains(out, "events=4") {
		t.Errorf("missing int attr: %q", out)
	}
	// Values with spaces are quoted.
	if !strings.Contains(out, `query="sold out tickets"`) {
		t.Errorf("missing quoted attr: %q", out)
	}
	if strings.Contains(out, "suppressed") {
		t.Errorf("debug record leaked at info level: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected a single line, got %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{Level: "warn", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	logger.Info("not logged")
	logger.Warn("reddit search failed", logging.String(logging.FieldSource, "reddit"))

	var record map[string]any
	if err := json.Unmarshal([]byte(readLog(t, path)), &record); err != nil {
		t.Fatalf("log line is not json: %v", err)
	}
	if record["level"] != "warn" || record["msg"] != "reddit search failed" {
		t.Fatalf("unexpected record: %v", record)
	}
	if record["source"] != "reddit" {
		t.Errorf("missing source attr: %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Errorf("missing ts key: %v", record)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("dropped", logging.Error(nil))
}

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()

	stale := filepath.Join(dir, "blackbeard.log.1")
	fresh := filepath.Join(dir, "recent.log")
	active := filepath.Join(dir, "blackbeard.log")
	for _, path := range []string{stale, fresh, active} {
		if err := os.WriteFile(path, []byte("x\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	old := time.Now().AddDate(0, 0, -30)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := os.Chtimes(active, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	logging.CleanupOldLogs(nil, dir, 7)

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale rotated log should be removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("recent log should survive")
	}
	// The active file is never pruned regardless of age.
	if _, err := os.Stat(active); err != nil {
		t.Error("active log should survive")
	}
}

func TestCleanupDisabled(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "old.log")
	if err := os.WriteFile(stale, []byte("x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	old := time.Now().AddDate(0, 0, -90)
	if err := os.Chtimes(stale, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	logging.CleanupOldLogs(nil, dir, 0)

	if _, err := os.Stat(stale); err != nil {
		t.Error("retention 0 should disable pruning")
	}
}
