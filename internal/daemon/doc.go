// Package daemon coordinates the long-running Blackbeard process: it
// enforces single-instance execution with a file lock, owns the scan
// and watchlist pipelines, and serves the read-only HTTP report API.
package daemon
