// Package watchlist scans a configured artist list for new tour dates
// and announcements. SeatGeek provides upcoming events for every
// artist; Brave announcement searches run only for tier-A artists to
// keep API spend down.
package watchlist

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"blackbeard/internal/config"
	"blackbeard/internal/feeds"
	"blackbeard/internal/lexicon"
	"blackbeard/internal/logging"
	"blackbeard/internal/mention"
	"blackbeard/internal/notifications"
	"blackbeard/internal/novelty"
	"blackbeard/internal/pacing"
	"blackbeard/internal/report"
	"blackbeard/internal/scanner"
)

// EventSource is the subset of the SeatGeek client the watchlist uses.
type EventSource interface {
	Enabled() bool
	UpcomingEvents(ctx context.Context, performer string) ([]feeds.SeatGeekEvent, error)
}

// Sources groups the feed clients a watchlist scan pulls from.
type Sources struct {
	SeatGeek EventSource
	Brave    scanner.BraveSource
}

// Matches on-sale and tour-announcement phrasing in search results.
var announcementPattern = regexp.MustCompile(`(?i)(just announced|on sale|presale|new tour|tour dates|adds? (a )?show|announces)`)

// Watchlist scans the configured artists.
type Watchlist struct {
	cfg       *config.Config
	tracker   *novelty.Tracker
	formatter *report.Formatter
	sources   Sources
	reports   scanner.ReportStore
	notifier  notifications.Service
	logger    *slog.Logger
	now       func() time.Time

	seatgeekPace pacing.Pacer
	bravePace    pacing.Pacer
}

// Option configures a Watchlist.
type Option func(*Watchlist)

// WithSources replaces the feed clients, mainly for tests.
func WithSources(sources Sources) Option {
	return func(w *Watchlist) {
		if sources.SeatGeek != nil {
			w.sources.SeatGeek = sources.SeatGeek
		}
		if sources.Brave != nil {
			w.sources.Brave = sources.Brave
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(w *Watchlist) {
		if now != nil {
			w.now = now
		}
	}
}

// New builds a watchlist scanner wired to the configured sources.
func New(cfg *config.Config, journal novelty.Journal, reports scanner.ReportStore, notifier notifications.Service, logger *slog.Logger, opts ...Option) *Watchlist {
	if logger == nil {
		logger = logging.NewNop()
	}
	if notifier == nil {
		notifier = notifications.NewService(cfg)
	}
	w := &Watchlist{
		cfg:       cfg,
		tracker:   novelty.NewTracker(journal),
		formatter: report.NewFormatter(cfg.Scan.HighUrgencyScore),
		sources: Sources{
			SeatGeek: feeds.NewSeatGeek(cfg.Sources.SeatGeek.ClientID,
				feeds.WithSeatGeekBaseURL(cfg.Sources.SeatGeek.BaseURL),
				feeds.WithSeatGeekMaxCapacity(cfg.Sources.SeatGeek.MaxCapacity)),
			Brave: feeds.NewBrave(cfg.Sources.Brave.APIKey, feeds.WithBraveBaseURL(cfg.Sources.Brave.BaseURL)),
		},
		reports:      reports,
		notifier:     notifier,
		logger:       logging.NewComponentLogger(logger, "watchlist"),
		now:          time.Now,
		seatgeekPace: pacing.NewLimiter(time.Duration(cfg.Sources.SeatGeek.PaceMS) * time.Millisecond),
		bravePace:    pacing.NewLimiter(time.Duration(cfg.Sources.Brave.PaceMS) * time.Millisecond),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Artists returns the configured watchlist entries.
func (w *Watchlist) Artists() []config.Artist {
	return w.cfg.Watchlist.Artists
}

// Run executes one watchlist scan and returns the persisted report.
// Only finds with unseen novelty keys make it into the report.
func (w *Watchlist) Run(ctx context.Context) (*report.Report, error) {
	start := w.now()
	artists := w.cfg.Watchlist.Artists
	w.logger.Info("watchlist scan started", logging.Int("artists", len(artists)))

	if err := w.tracker.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin watchlist scan: %w", err)
	}

	var finds []report.Find
	for _, artist := range artists {
		finds = append(finds, w.scanArtist(ctx, artist)...)
	}

	r := report.New(report.KindWatchlist, start)
	r.Duration = w.now().Sub(start)
	r.Finds = finds
	for _, find := range finds {
		r.NewKeys = append(r.NewKeys, findKey(find))
	}

	if err := w.tracker.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit watchlist scan: %w", err)
	}
	if err := w.reports.SaveReport(ctx, r); err != nil {
		return nil, fmt.Errorf("save watchlist report: %w", err)
	}

	w.deliver(ctx, r)
	w.logger.Info("watchlist scan complete",
		logging.String(logging.FieldReportID, r.ID),
		logging.Int("finds", len(r.Finds)),
		logging.Duration("duration", r.Duration))
	return r, nil
}

func (w *Watchlist) scanArtist(ctx context.Context, artist config.Artist) []report.Find {
	var finds []report.Find
	finds = append(finds, w.tourDates(ctx, artist)...)
	if artist.Tier == "A" {
		finds = append(finds, w.announcements(ctx, artist)...)
	}
	return finds
}

// tourDates asks SeatGeek for upcoming small-venue events and keeps
// the ones not seen on a previous run.
func (w *Watchlist) tourDates(ctx context.Context, artist config.Artist) []report.Find {
	if w.sources.SeatGeek == nil || !w.sources.SeatGeek.Enabled() {
		return nil
	}
	if err := w.seatgeekPace.Wait(ctx); err != nil {
		return nil
	}
	callCtx, cancel := context.WithTimeout(ctx, w.callTimeout())
	events, err := w.sources.SeatGeek.UpcomingEvents(callCtx, artist.Name)
	cancel()
	if err != nil {
		w.logger.Warn("seatgeek lookup failed", logging.String("artist", artist.Name), logging.Error(err))
		return nil
	}

	var finds []report.Find
	for _, event := range events {
		key := novelty.WatchlistKey(artist.Name, event.Date, event.Venue)
		if !w.tracker.Observe(key) {
			continue
		}
		finds = append(finds, report.Find{
			Artist:   artist.Name,
			Tier:     artist.Tier,
			Category: artist.Category,
			Title:    event.Title,
			Venue:    event.Venue,
			City:     event.City,
			State:    event.State,
			Capacity: event.Capacity,
			Date:     event.Date,
			URL:      event.URL,
			Source:   string(mention.SourceSeatGeek),
		})
	}
	return finds
}

// announcements runs a Brave web search for on-sale and tour news.
// Results that do not read like an announcement are discarded.
func (w *Watchlist) announcements(ctx context.Context, artist config.Artist) []report.Find {
	if w.sources.Brave == nil || !w.sources.Brave.Enabled() {
		return nil
	}
	if err := w.bravePace.Wait(ctx); err != nil {
		return nil
	}
	query := fmt.Sprintf("%q tickets 2026 tour \"on sale\" OR \"just announced\"", artist.Name)
	callCtx, cancel := context.WithTimeout(ctx, w.callTimeout())
	results, err := w.sources.Brave.Search(callCtx, query, 5)
	cancel()
	if err != nil {
		w.logger.Warn("announcement search failed", logging.String("artist", artist.Name), logging.Error(err))
		return nil
	}

	var finds []report.Find
	for _, result := range results {
		if !announcementPattern.MatchString(result.Combined()) {
			continue
		}
		key := fmt.Sprintf("brave-%s-%s", lexicon.Fold(artist.Name), result.URL)
		if !w.tracker.Observe(key) {
			continue
		}
		finds = append(finds, report.Find{
			Artist:   artist.Name,
			Tier:     artist.Tier,
			Category: artist.Category,
			Title:    result.Title,
			URL:      result.URL,
			Source:   string(mention.SourceBrave),
		})
	}
	return finds
}

func (w *Watchlist) deliver(ctx context.Context, r *report.Report) {
	formatted := w.formatter.FormatWatchlist(r)
	if formatted == "" {
		return
	}
	if err := w.notifier.NotifyWatchlistReport(ctx, formatted, len(r.Finds)); err != nil {
		w.logger.Warn("watchlist notification failed", logging.Error(err))
	}
}

func (w *Watchlist) callTimeout() time.Duration {
	timeout := time.Duration(w.cfg.Scan.CallTimeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return timeout
}

func findKey(find report.Find) string {
	if find.Source == string(mention.SourceBrave) {
		return fmt.Sprintf("brave-%s-%s", lexicon.Fold(find.Artist), find.URL)
	}
	return novelty.WatchlistKey(find.Artist, find.Date, find.Venue)
}
