package config

const (
	defaultDataDir = "~/.local/share/blackbeard"
	defaultLogDir  = "~/.local/share/blackbeard/logs"
	defaultAPIBind = "127.0.0.1:7090"

	defaultSearchPostLimit     = 50
	defaultSweepCommunityLimit = 10
	defaultSweepPostLimit      = 25
	defaultFanCommunityLimit   = 10
	defaultCityQueryLimit      = 5
	defaultCallTimeout         = 15
	defaultTrendTopK           = 5
	defaultHighUrgencyScore    = 60

	defaultRedditBaseURL   = "https://www.reddit.com"
	defaultRedditUserAgent = "Blackbeard-Scanner/1.0 (event-research-bot)"
	defaultRedditPaceMS    = 1500

	defaultBraveBaseURL = "https://api.search.brave.com"
	defaultBravePaceMS  = 500

	defaultTwitterBaseURL = "https://api.twitter.com"
	defaultTwitterPaceMS  = 1500

	defaultSeatGeekBaseURL     = "https://api.seatgeek.com"
	defaultSeatGeekMaxCapacity = 10000
	defaultSeatGeekPaceMS      = 400

	defaultNotifyRequestTimeout = 10

	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 60
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Scan: Scan{
			SearchPostLimit:     defaultSearchPostLimit,
			SweepCommunityLimit: defaultSweepCommunityLimit,
			SweepPostLimit:      defaultSweepPostLimit,
			FanCommunityLimit:   defaultFanCommunityLimit,
			CityQueryLimit:      defaultCityQueryLimit,
			CallTimeout:         defaultCallTimeout,
			TrendTopK:           defaultTrendTopK,
			HighUrgencyScore:    defaultHighUrgencyScore,
		},
		Sources: Sources{
			Reddit: Reddit{
				BaseURL:   defaultRedditBaseURL,
				UserAgent: defaultRedditUserAgent,
				PaceMS:    defaultRedditPaceMS,
			},
			Brave: Brave{
				BaseURL: defaultBraveBaseURL,
				PaceMS:  defaultBravePaceMS,
			},
			Twitter: Twitter{
				BaseURL: defaultTwitterBaseURL,
				PaceMS:  defaultTwitterPaceMS,
			},
			SeatGeek: SeatGeek{
				BaseURL:     defaultSeatGeekBaseURL,
				MaxCapacity: defaultSeatGeekMaxCapacity,
				PaceMS:      defaultSeatGeekPaceMS,
			},
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyRequestTimeout,
			Scan:           true,
			Watchlist:      true,
			Errors:         true,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
