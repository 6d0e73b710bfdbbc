package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"blackbeard/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "blackbeard")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Paths.APIBind != "127.0.0.1:7090" {
		t.Fatalf("unexpected api bind: %q", cfg.Paths.APIBind)
	}
	if cfg.Scan.HighUrgencyScore != 60 {
		t.Fatalf("unexpected high urgency score: %d", cfg.Scan.HighUrgencyScore)
	}
	if cfg.Sources.SeatGeek.MaxCapacity != 10000 {
		t.Fatalf("unexpected seatgeek max capacity: %d", cfg.Sources.SeatGeek.MaxCapacity)
	}
	if cfg.Sources.Trends.Enabled {
		t.Fatal("expected trends disabled by default")
	}
	if !cfg.Notifications.Scan || !cfg.Notifications.Watchlist || !cfg.Notifications.Errors {
		t.Fatal("expected notification toggles enabled by default")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadParsesFileAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blackbeard.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"
api_bind = "127.0.0.1:7191"

[sources.reddit]
base_url = "https://example.test/reddit/"

[sources.brave]
api_key = "  brave-key  "

[[watchlist.artists]]
name = " Goose "
tier = "a"
category = "jam"

[[watchlist.artists]]
name = "Jesse Welles"

[notifications]
ntfy_topic = "https://ntfy.sh/blackbeard-test"

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Paths.APIBind != "127.0.0.1:7191" {
		t.Fatalf("unexpected api bind: %q", cfg.Paths.APIBind)
	}
	if cfg.Sources.Reddit.BaseURL != "https://example.test/reddit" {
		t.Fatalf("base URL not trimmed: %q", cfg.Sources.Reddit.BaseURL)
	}
	if cfg.Sources.Brave.APIKey != "brave-key" {
		t.Fatalf("api key not trimmed: %q", cfg.Sources.Brave.APIKey)
	}
	if len(cfg.Watchlist.Artists) != 2 {
		t.Fatalf("expected 2 artists, got %d", len(cfg.Watchlist.Artists))
	}
	if cfg.Watchlist.Artists[0].Name != "Goose" || cfg.Watchlist.Artists[0].Tier != "A" {
		t.Fatalf("artist not normalized: %+v", cfg.Watchlist.Artists[0])
	}
	if cfg.Watchlist.Artists[1].Tier != "B" {
		t.Fatalf("missing tier should default to B, got %q", cfg.Watchlist.Artists[1].Tier)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level not lowercased: %q", cfg.Logging.Level)
	}
	if cfg.Scan.SweepPostLimit != 25 {
		t.Fatalf("unset scan field should keep default, got %d", cfg.Scan.SweepPostLimit)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*config.Config)
		wantSub string
	}{
		{
			name:    "bad bind address",
			mutate:  func(c *config.Config) { c.Paths.APIBind = "not-an-address" },
			wantSub: "api_bind",
		},
		{
			name:    "urgency above ceiling",
			mutate:  func(c *config.Config) { c.Scan.HighUrgencyScore = 150 },
			wantSub: "high_urgency_score",
		},
		{
			name: "empty artist name",
			mutate: func(c *config.Config) {
				c.Watchlist.Artists = []config.Artist{{Name: "", Tier: "A"}}
			},
			wantSub: "empty name",
		},
		{
			name: "unknown tier",
			mutate: func(c *config.Config) {
				c.Watchlist.Artists = []config.Artist{{Name: "Goose", Tier: "S"}}
			},
			wantSub: "unknown tier",
		},
		{
			name: "duplicate artist",
			mutate: func(c *config.Config) {
				c.Watchlist.Artists = []config.Artist{
					{Name: "Goose", Tier: "A"},
					{Name: "goose", Tier: "B"},
				}
			},
			wantSub: "listed twice",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *config.Config) { c.Logging.Format = "xml" },
			wantSub: "logging.format",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *config.Config) { c.Logging.Level = "trace" },
			wantSub: "logging.level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestSampleConfigParses(t *testing.T) {
	var cfg config.Config
	if err := toml.Unmarshal([]byte(config.SampleConfig()), &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := config.WriteSample(path); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample file missing: %v", err)
	}

	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load written sample: %v", err)
	}
	if !exists {
		t.Fatal("expected written sample to exist")
	}
	if cfg.Paths.APIBind == "" {
		t.Fatal("expected populated config from sample")
	}
}
