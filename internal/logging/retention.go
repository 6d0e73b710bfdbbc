package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CleanupOldLogs removes files in dir matching pattern that are older
// than retentionDays. A retentionDays value of 0 disables pruning. The
// active log file is excluded.
func CleanupOldLogs(logger *slog.Logger, dir string, retentionDays int) {
	if retentionDays <= 0 {
		return
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return
	}
	if logger == nil {
		logger = NewNop()
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	active := filepath.Join(dir, "blackbeard.log")

	matches, err := filepath.Glob(filepath.Join(dir, "*.log*"))
	if err != nil {
		logger.Warn("log cleanup glob failed", Error(err))
		return
	}
	for _, path := range matches {
		if path == active {
			continue
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			logger.Warn("failed to remove old log", String("path", path), Error(err))
			continue
		}
		logger.Debug("removed old log", String("path", path))
	}
}
