package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScan()
	c.normalizeSources()
	c.normalizeWatchlist()
	c.normalizeNotifications()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.APIBind) == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizeScan() {
	if c.Scan.SearchPostLimit <= 0 {
		c.Scan.SearchPostLimit = defaultSearchPostLimit
	}
	if c.Scan.SweepCommunityLimit <= 0 {
		c.Scan.SweepCommunityLimit = defaultSweepCommunityLimit
	}
	if c.Scan.SweepPostLimit <= 0 {
		c.Scan.SweepPostLimit = defaultSweepPostLimit
	}
	if c.Scan.CallTimeout <= 0 {
		c.Scan.CallTimeout = defaultCallTimeout
	}
	if c.Scan.TrendTopK < 0 {
		c.Scan.TrendTopK = 0
	}
	if c.Scan.HighUrgencyScore <= 0 {
		c.Scan.HighUrgencyScore = defaultHighUrgencyScore
	}
}

func (c *Config) normalizeSources() {
	c.Sources.Reddit.BaseURL = trimBaseURL(c.Sources.Reddit.BaseURL, defaultRedditBaseURL)
	if strings.TrimSpace(c.Sources.Reddit.UserAgent) == "" {
		c.Sources.Reddit.UserAgent = defaultRedditUserAgent
	}
	if c.Sources.Reddit.PaceMS < 0 {
		c.Sources.Reddit.PaceMS = 0
	}

	c.Sources.Brave.APIKey = strings.TrimSpace(c.Sources.Brave.APIKey)
	c.Sources.Brave.BaseURL = trimBaseURL(c.Sources.Brave.BaseURL, defaultBraveBaseURL)
	if c.Sources.Brave.PaceMS < 0 {
		c.Sources.Brave.PaceMS = 0
	}

	c.Sources.Twitter.BearerToken = strings.TrimSpace(c.Sources.Twitter.BearerToken)
	c.Sources.Twitter.BaseURL = trimBaseURL(c.Sources.Twitter.BaseURL, defaultTwitterBaseURL)
	if c.Sources.Twitter.PaceMS < 0 {
		c.Sources.Twitter.PaceMS = 0
	}

	c.Sources.SeatGeek.ClientID = strings.TrimSpace(c.Sources.SeatGeek.ClientID)
	c.Sources.SeatGeek.BaseURL = trimBaseURL(c.Sources.SeatGeek.BaseURL, defaultSeatGeekBaseURL)
	if c.Sources.SeatGeek.MaxCapacity <= 0 {
		c.Sources.SeatGeek.MaxCapacity = defaultSeatGeekMaxCapacity
	}
	if c.Sources.SeatGeek.PaceMS < 0 {
		c.Sources.SeatGeek.PaceMS = 0
	}

	c.Sources.Trends.BaseURL = strings.TrimRight(strings.TrimSpace(c.Sources.Trends.BaseURL), "/")
}

func (c *Config) normalizeWatchlist() {
	for i := range c.Watchlist.Artists {
		artist := &c.Watchlist.Artists[i]
		artist.Name = strings.TrimSpace(artist.Name)
		artist.Tier = strings.ToUpper(strings.TrimSpace(artist.Tier))
		if artist.Tier == "" {
			artist.Tier = "B"
		}
		artist.Category = strings.TrimSpace(artist.Category)
	}
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNotifyRequestTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays <= 0 {
		c.Logging.RetentionDays = defaultLogRetentionDays
	}
}

func trimBaseURL(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	return strings.TrimRight(value, "/")
}
