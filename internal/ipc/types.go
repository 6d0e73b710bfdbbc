package ipc

import (
	"time"

	"blackbeard/internal/report"
)

// ScanRequest triggers a scan run.
type ScanRequest struct {
	// Kind selects the pipeline: "scan" (default) or "watchlist".
	Kind string
}

// ScanResponse returns the completed report.
type ScanResponse struct {
	Report *report.Report
}

// StatusRequest queries daemon runtime state.
type StatusRequest struct{}

// ReportSummary is a compact view of a stored report.
type ReportSummary struct {
	ID           string
	Kind         string
	Date         string
	CreatedAt    time.Time
	MentionCount int
	EventCount   int
}

// StatusResponse describes the daemon runtime state.
type StatusResponse struct {
	Running       bool
	PID           int
	DBPath        string
	LockPath      string
	StartedAt     time.Time
	LastScan      *ReportSummary
	LastWatchlist *ReportSummary
}

// StopRequest asks the daemon to shut down.
type StopRequest struct{}

// StopResponse acknowledges shutdown.
type StopResponse struct {
	Stopped bool
}

// ReportRequest fetches a stored report.
type ReportRequest struct {
	// Kind selects the report kind, defaulting to "scan".
	Kind string
	// Date filters to a UTC calendar date (2006-01-02); empty means
	// latest.
	Date string
}

// ReportResponse returns the fetched report, nil when none matched.
type ReportResponse struct {
	Report *report.Report
}

// ReportListRequest lists stored reports.
type ReportListRequest struct {
	Kind  string
	Limit int
}

// ReportListResponse returns summaries, newest first.
type ReportListResponse struct {
	Reports []ReportSummary
}

// DatabaseHealthRequest queries store diagnostics.
type DatabaseHealthRequest struct{}

// DatabaseHealthResponse carries store diagnostics.
type DatabaseHealthResponse struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	SchemaVersion    int
	ReportCount      int64
	NoveltyKeyCount  int64
	Error            string
}

// LogTailRequest reads daemon log lines.
type LogTailRequest struct {
	// Offset resumes a previous read; negative means the last Limit
	// lines.
	Offset int64
	Limit  int
	Follow bool
	// WaitMillis bounds how long a follow request blocks for new
	// lines.
	WaitMillis int64
}

// LogTailResponse returns log lines and the offset to resume from.
type LogTailResponse struct {
	Lines  []string
	Offset int64
}

// TestNotificationRequest triggers a test notification.
type TestNotificationRequest struct{}

// TestNotificationResponse reports the outcome.
type TestNotificationResponse struct {
	Sent    bool
	Message string
}
