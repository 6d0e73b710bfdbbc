package testsupport

import (
	"path/filepath"
	"testing"

	"blackbeard/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per
// test. Source pacing is zeroed so pipeline tests run without
// wall-clock delays.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"
	cfg.Sources.Reddit.PaceMS = 0
	cfg.Sources.Brave.PaceMS = 0
	cfg.Sources.Twitter.PaceMS = 0
	cfg.Sources.SeatGeek.PaceMS = 0

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithArtists seeds watchlist entries on the test config.
func WithArtists(artists ...config.Artist) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Watchlist.Artists = artists
	}
}

// WithNtfyTopic points notifications at the given endpoint.
func WithNtfyTopic(topic string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Notifications.NtfyTopic = topic
	}
}
