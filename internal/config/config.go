package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and bind address configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
	APIBind string `toml:"api_bind"`
}

// Scan contains tuning for the scan pipeline.
type Scan struct {
	SearchPostLimit     int `toml:"search_post_limit"`
	SweepCommunityLimit int `toml:"sweep_community_limit"`
	SweepPostLimit      int `toml:"sweep_post_limit"`
	FanCommunityLimit   int `toml:"fan_community_limit"`
	CityQueryLimit      int `toml:"city_query_limit"`
	CallTimeout         int `toml:"call_timeout"`
	TrendTopK           int `toml:"trend_top_k"`
	HighUrgencyScore    int `toml:"high_urgency_score"`
}

// Reddit contains configuration for the Reddit public JSON endpoints.
type Reddit struct {
	BaseURL   string `toml:"base_url"`
	UserAgent string `toml:"user_agent"`
	PaceMS    int    `toml:"pace_ms"`
}

// Brave contains configuration for the Brave web search API.
type Brave struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	PaceMS  int    `toml:"pace_ms"`
}

// Twitter contains configuration for the Twitter recent-search API.
type Twitter struct {
	BearerToken string `toml:"bearer_token"`
	BaseURL     string `toml:"base_url"`
	PaceMS      int    `toml:"pace_ms"`
}

// SeatGeek contains configuration for the SeatGeek events API.
type SeatGeek struct {
	ClientID    string `toml:"client_id"`
	BaseURL     string `toml:"base_url"`
	MaxCapacity int    `toml:"max_capacity"`
	PaceMS      int    `toml:"pace_ms"`
}

// Trends contains configuration for the optional trend-verification
// service.
type Trends struct {
	Enabled bool   `toml:"enabled"`
	BaseURL string `toml:"base_url"`
}

// Sources groups the feed connector settings.
type Sources struct {
	Reddit   Reddit   `toml:"reddit"`
	Brave    Brave    `toml:"brave"`
	Twitter  Twitter  `toml:"twitter"`
	SeatGeek SeatGeek `toml:"seatgeek"`
	Trends   Trends   `toml:"trends"`
}

// Artist is one watchlisted act.
type Artist struct {
	Name     string `toml:"name"`
	Tier     string `toml:"tier"`
	Category string `toml:"category"`
}

// Watchlist contains the tiered artist watchlist.
type Watchlist struct {
	Artists []Artist `toml:"artists"`
}

// Notifications contains configuration for ntfy push notifications.
type Notifications struct {
	NtfyTopic      string `toml:"ntfy_topic"`
	RequestTimeout int    `toml:"request_timeout"`
	Scan           bool   `toml:"scan"`
	Watchlist      bool   `toml:"watchlist"`
	Errors         bool   `toml:"errors"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	RetentionDays int    `toml:"retention_days"`
}

// Config encapsulates all configuration values for Blackbeard.
//
// Configuration sections by subsystem:
//   - Paths: data/log directories and API bind address
//   - Scan: pipeline limits, timeouts, and thresholds
//   - Sources: per-connector credentials, endpoints, and pacing
//   - Watchlist: tiered artists monitored for new dates
//   - Notifications: ntfy push notification settings
//   - Logging: log format, level, and retention
type Config struct {
	Paths         Paths         `toml:"paths"`
	Scan          Scan          `toml:"scan"`
	Sources       Sources       `toml:"sources"`
	Watchlist     Watchlist     `toml:"watchlist"`
	Notifications Notifications `toml:"notifications"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/blackbeard/config.toml")
}

// Load locates, parses, and validates a configuration file. The
// returned config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("blackbeard.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates required directories for daemon operation.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// WriteSample writes the sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config already exists at %s", expanded)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other
// packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
