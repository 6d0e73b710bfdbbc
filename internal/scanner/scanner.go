package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blackbeard/internal/classify"
	"blackbeard/internal/cluster"
	"blackbeard/internal/config"
	"blackbeard/internal/extract"
	"blackbeard/internal/feeds"
	"blackbeard/internal/lexicon"
	"blackbeard/internal/logging"
	"blackbeard/internal/mention"
	"blackbeard/internal/notifications"
	"blackbeard/internal/novelty"
	"blackbeard/internal/pacing"
	"blackbeard/internal/report"
	"blackbeard/internal/score"
)

// RedditSource is the subset of the Reddit client the scanner uses.
type RedditSource interface {
	SearchNew(ctx context.Context, query string, limit int) ([]mention.Mention, error)
	SubredditNew(ctx context.Context, subreddit string, limit int) ([]mention.Mention, error)
}

// BraveSource is the subset of the Brave client the scanner uses.
type BraveSource interface {
	Enabled() bool
	Search(ctx context.Context, query string, count int) ([]mention.Mention, error)
}

// TwitterSource is the subset of the Twitter client the scanner uses.
type TwitterSource interface {
	Enabled() bool
	SearchRecent(ctx context.Context, query string) ([]mention.Mention, error)
}

// TrendSource verifies search interest for named events.
type TrendSource interface {
	Enabled() bool
	Lookup(ctx context.Context, eventName string) (feeds.Trend, error)
}

// Sources groups the feed clients a scan pulls from.
type Sources struct {
	Reddit  RedditSource
	Brave   BraveSource
	Twitter TwitterSource
	Trends  TrendSource
}

// ReportStore persists completed reports.
type ReportStore interface {
	SaveReport(ctx context.Context, r *report.Report) error
}

// Scanner runs the scan pipeline.
type Scanner struct {
	cfg        *config.Config
	lex        *lexicon.Lexicon
	classifier *classify.Classifier
	extractor  *extract.Extractor
	engine     *score.Engine
	tracker    *novelty.Tracker
	formatter  *report.Formatter
	sources    Sources
	reports    ReportStore
	notifier   notifications.Service
	logger     *slog.Logger
	now        func() time.Time

	redditPace  pacing.Pacer
	bravePace   pacing.Pacer
	twitterPace pacing.Pacer
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithSources replaces the feed clients, mainly for tests.
func WithSources(sources Sources) Option {
	return func(s *Scanner) {
		if sources.Reddit != nil {
			s.sources.Reddit = sources.Reddit
		}
		if sources.Brave != nil {
			s.sources.Brave = sources.Brave
		}
		if sources.Twitter != nil {
			s.sources.Twitter = sources.Twitter
		}
		if sources.Trends != nil {
			s.sources.Trends = sources.Trends
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Scanner) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLexicon replaces the default vocabularies.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(s *Scanner) {
		if lex != nil {
			s.lex = lex
		}
	}
}

// New builds a scanner wired to the configured sources.
func New(cfg *config.Config, journal novelty.Journal, reports ReportStore, notifier notifications.Service, logger *slog.Logger, opts ...Option) *Scanner {
	if logger == nil {
		logger = logging.NewNop()
	}
	if notifier == nil {
		notifier = notifications.NewService(cfg)
	}
	s := &Scanner{
		cfg:         cfg,
		lex:         lexicon.Default(),
		tracker:     novelty.NewTracker(journal),
		formatter:   report.NewFormatter(cfg.Scan.HighUrgencyScore),
		sources:     defaultSources(cfg),
		reports:     reports,
		notifier:    notifier,
		logger:      logging.NewComponentLogger(logger, "scanner"),
		now:         time.Now,
		redditPace:  pacing.NewLimiter(time.Duration(cfg.Sources.Reddit.PaceMS) * time.Millisecond),
		bravePace:   pacing.NewLimiter(time.Duration(cfg.Sources.Brave.PaceMS) * time.Millisecond),
		twitterPace: pacing.NewLimiter(time.Duration(cfg.Sources.Twitter.PaceMS) * time.Millisecond),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.classifier = classify.New(s.lex)
	s.extractor = extract.New(s.lex)
	s.engine = score.New(s.lex, score.WithClock(s.now))
	return s
}

func defaultSources(cfg *config.Config) Sources {
	trendsBase := ""
	if cfg.Sources.Trends.Enabled {
		trendsBase = cfg.Sources.Trends.BaseURL
	}
	return Sources{
		Reddit: feeds.NewReddit(
			feeds.WithRedditBaseURL(cfg.Sources.Reddit.BaseURL),
			feeds.WithRedditUserAgent(cfg.Sources.Reddit.UserAgent),
		),
		Brave:   feeds.NewBrave(cfg.Sources.Brave.APIKey, feeds.WithBraveBaseURL(cfg.Sources.Brave.BaseURL)),
		Twitter: feeds.NewTwitter(cfg.Sources.Twitter.BearerToken, feeds.WithTwitterBaseURL(cfg.Sources.Twitter.BaseURL)),
		Trends:  feeds.NewTrends(trendsBase),
	}
}

// Run executes one scan and returns the persisted report.
func (s *Scanner) Run(ctx context.Context) (*report.Report, error) {
	start := s.now()
	s.logger.Info("scan started")

	if err := s.tracker.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin scan: %w", err)
	}

	mentions := mention.Dedup(s.gather(ctx))
	relevant := s.classifier.Filter(mentions)
	clusters := cluster.Group(relevant)
	s.logger.Info("mentions gathered",
		logging.Int("total", len(mentions)),
		logging.Int("relevant", len(relevant)),
		logging.Int("clusters", len(clusters)))

	events := s.buildEvents(clusters)
	events = report.Rank(events)
	s.applyTrends(ctx, events)
	events = report.Rank(events)

	newKeys := s.markNovel(events, identityKeys(clusters))

	r := report.New(report.KindScan, start)
	r.Duration = s.now().Sub(start)
	r.TotalMentions = len(mentions)
	r.EventsScored = len(events)
	r.Events = events
	r.NewKeys = newKeys

	if err := s.tracker.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit scan: %w", err)
	}
	if err := s.reports.SaveReport(ctx, r); err != nil {
		return nil, fmt.Errorf("save scan report: %w", err)
	}

	s.deliver(ctx, r)
	s.logger.Info("scan complete",
		logging.String(logging.FieldReportID, r.ID),
		logging.Int("events", len(r.Events)),
		logging.Int("new_keys", len(r.NewKeys)),
		logging.Duration("duration", r.Duration))
	return r, nil
}

// gather pulls mentions from every configured source in a fixed
// sequence. A source failure is logged and contributes nothing.
func (s *Scanner) gather(ctx context.Context) []mention.Mention {
	var all []mention.Mention

	for _, query := range s.lex.SearchQueries {
		if err := s.redditPace.Wait(ctx); err != nil {
			return all
		}
		results, err := s.callSource(ctx, func(callCtx context.Context) ([]mention.Mention, error) {
			return s.sources.Reddit.SearchNew(callCtx, query, s.cfg.Scan.SearchPostLimit)
		})
		if err != nil {
			s.logger.Warn("reddit search failed", logging.String(logging.FieldQuery, query), logging.Error(err))
			continue
		}
		all = append(all, results...)
	}

	all = append(all, s.sweep(ctx)...)

	if s.sources.Twitter != nil && s.sources.Twitter.Enabled() {
		for _, query := range s.lex.SearchQueries {
			if err := s.twitterPace.Wait(ctx); err != nil {
				return all
			}
			results, err := s.callSource(ctx, func(callCtx context.Context) ([]mention.Mention, error) {
				return s.sources.Twitter.SearchRecent(callCtx, query+" -is:retweet")
			})
			if err != nil {
				s.logger.Warn("twitter search failed", logging.String(logging.FieldQuery, query), logging.Error(err))
				continue
			}
			all = append(all, results...)
		}
	}

	if s.sources.Brave != nil && s.sources.Brave.Enabled() {
		queries := append([]string(nil), s.lex.SearchQueries...)
		queries = append(queries, s.fanChatterQueries()...)
		queries = append(queries, s.cityQueries()...)
		for _, query := range queries {
			if err := s.bravePace.Wait(ctx); err != nil {
				return all
			}
			results, err := s.callSource(ctx, func(callCtx context.Context) ([]mention.Mention, error) {
				return s.sources.Brave.Search(callCtx, query, 10)
			})
			if err != nil {
				s.logger.Warn("brave search failed", logging.String(logging.FieldQuery, query), logging.Error(err))
				continue
			}
			all = append(all, results...)
		}
	}

	return all
}

// fanChatterQueries builds the web queries that surface sellout talk
// inside niche fan communities, which the broad search queries miss.
func (s *Scanner) fanChatterQueries() []string {
	communities := s.lex.FanCommunities
	if limit := s.cfg.Scan.FanCommunityLimit; limit > 0 && len(communities) > limit {
		communities = communities[:limit]
	}
	year := s.now().Year()
	queries := make([]string, 0, len(communities))
	for _, community := range communities {
		queries = append(queries, fmt.Sprintf(`site:reddit.com r/%s "sold out" OR "selling out" OR "tickets gone" %d`, community, year))
	}
	return queries
}

// cityQueries builds web queries scoped to the monitored cities so
// small local sellouts surface even without national chatter.
func (s *Scanner) cityQueries() []string {
	cities := s.lex.TargetCities
	if limit := s.cfg.Scan.CityQueryLimit; limit > 0 && len(cities) > limit {
		cities = cities[:limit]
	}
	year := s.now().Year()
	queries := make([]string, 0, len(cities))
	for _, city := range cities {
		queries = append(queries, fmt.Sprintf(`concert OR show tickets "sold out" %q %d`, city, year))
	}
	return queries
}

// sweep reads the newest posts from a fixed set of communities and
// keeps only posts that mention scarcity at all. The classifier does
// the real filtering later; this pre-filter just keeps sweep volume
// down.
func (s *Scanner) sweep(ctx context.Context) []mention.Mention {
	communities := s.lex.SweepCommunities
	if limit := s.cfg.Scan.SweepCommunityLimit; limit > 0 && len(communities) > limit {
		communities = communities[:limit]
	}

	var kept []mention.Mention
	for _, community := range communities {
		if err := s.redditPace.Wait(ctx); err != nil {
			return kept
		}
		posts, err := s.callSource(ctx, func(callCtx context.Context) ([]mention.Mention, error) {
			return s.sources.Reddit.SubredditNew(callCtx, community, s.cfg.Scan.SweepPostLimit)
		})
		if err != nil {
			s.logger.Warn("community sweep failed", logging.String(logging.FieldSource, community), logging.Error(err))
			continue
		}
		for _, post := range posts {
			if lexicon.ContainsAny(lexicon.Fold(post.Combined()), s.lex.Scarcity) {
				kept = append(kept, post)
			}
		}
	}
	return kept
}

func (s *Scanner) callSource(ctx context.Context, call func(context.Context) ([]mention.Mention, error)) ([]mention.Mention, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout())
	defer cancel()
	return call(callCtx)
}

func (s *Scanner) callTimeout() time.Duration {
	timeout := time.Duration(s.cfg.Scan.CallTimeout) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return timeout
}

// buildEvents extracts, scores, and annotates each cluster. Clusters
// without a grounded event name are dropped before scoring.
func (s *Scanner) buildEvents(clusters []*cluster.Cluster) []report.Event {
	events := make([]report.Event, 0, len(clusters))
	for _, c := range clusters {
		result := s.extractor.Extract(c.Members)
		if result.EventName == "" {
			continue
		}
		breakdown := s.engine.Score(c.Members)
		if breakdown == nil {
			continue
		}

		event := report.Event{
			Key:          c.Key,
			DisplayName:  result.EventName,
			RawTitle:     c.Members[0].Title,
			EventName:    result.EventName,
			EventType:    string(result.EventType),
			VenueName:    result.VenueName,
			Category:     s.extractor.Categorize(mention.CombinedText(c.Members)),
			OfficialURL:  report.OfficialURL(result.EventName, string(result.EventType)),
			ResaleURL:    report.ResaleURL(result.EventName),
			Score:        breakdown.Total,
			Breakdown:    *breakdown,
			MentionCount: len(c.Members),
		}
		for _, m := range c.Members {
			event.Sources = appendUnique(event.Sources, string(m.Source))
			event.Mentions = append(event.Mentions, report.MentionRef{Title: m.Title, URL: m.URL})
		}
		events = append(events, event)
	}
	return events
}

// applyTrends verifies search interest for the top-ranked events and
// folds any bonus back into their scores. Failures never abort a run.
func (s *Scanner) applyTrends(ctx context.Context, events []report.Event) {
	if s.sources.Trends == nil || !s.sources.Trends.Enabled() {
		return
	}
	topK := s.cfg.Scan.TrendTopK
	if topK <= 0 {
		return
	}
	for i := range events {
		if i >= topK {
			break
		}
		callCtx, cancel := context.WithTimeout(ctx, s.callTimeout())
		trend, err := s.sources.Trends.Lookup(callCtx, events[i].EventName)
		cancel()
		if err != nil {
			s.logger.Warn("trend lookup failed", logging.String(logging.FieldQuery, events[i].EventName), logging.Error(err))
			continue
		}
		bonus := score.TrendBonus(trend.Hot, trend.Trending)
		if bonus == 0 {
			continue
		}
		events[i].Breakdown.ApplyTrend(bonus)
		events[i].Score = events[i].Breakdown.Total
	}
}

// markNovel observes every member identity key of the ranked events
// and flags events whose cluster contains at least one unseen mention.
func (s *Scanner) markNovel(events []report.Event, keysByCluster map[string][]string) []string {
	var newKeys []string
	for i := range events {
		for _, key := range keysByCluster[events[i].Key] {
			if s.tracker.Observe(key) {
				events[i].New = true
				newKeys = append(newKeys, key)
			}
		}
	}
	return newKeys
}

func identityKeys(clusters []*cluster.Cluster) map[string][]string {
	keys := make(map[string][]string, len(clusters))
	for _, c := range clusters {
		for _, m := range c.Members {
			keys[c.Key] = append(keys[c.Key], m.IdentityKey())
		}
	}
	return keys
}

func (s *Scanner) deliver(ctx context.Context, r *report.Report) {
	formatted := s.formatter.FormatScan(r)
	if formatted == "" {
		return
	}
	if err := s.notifier.NotifyScanReport(ctx, formatted, len(r.Events)); err != nil {
		s.logger.Warn("scan notification failed", logging.Error(err))
	}
}

func appendUnique(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}
