package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateWatchlist(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if _, _, err := net.SplitHostPort(c.Paths.APIBind); err != nil {
		return fmt.Errorf("paths.api_bind: invalid listen address %q: %w", c.Paths.APIBind, err)
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.HighUrgencyScore > 100 {
		return fmt.Errorf("scan.high_urgency_score: %d exceeds the score ceiling of 100", c.Scan.HighUrgencyScore)
	}
	return nil
}

func (c *Config) validateWatchlist() error {
	seen := map[string]struct{}{}
	for _, artist := range c.Watchlist.Artists {
		if artist.Name == "" {
			return fmt.Errorf("watchlist: artist with empty name")
		}
		if artist.Tier != "A" && artist.Tier != "B" {
			return fmt.Errorf("watchlist: artist %q has unknown tier %q (expected A or B)", artist.Name, artist.Tier)
		}
		key := strings.ToLower(artist.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("watchlist: artist %q listed twice", artist.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
