package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"log/slog"

	"github.com/gofrs/flock"

	"blackbeard/internal/config"
	"blackbeard/internal/logging"
	"blackbeard/internal/notifications"
	"blackbeard/internal/novelty"
	"blackbeard/internal/report"
	"blackbeard/internal/scanner"
	"blackbeard/internal/store"
	"blackbeard/internal/watchlist"
)

// Daemon owns the pipelines and enforces single-instance execution.
type Daemon struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *store.Store
	notifier notifications.Service

	scanner   *scanner.Scanner
	watchlist *watchlist.Watchlist
	api       *apiServer

	lockPath string
	lock     *flock.Flock

	// One pipeline run at a time; concurrent runs would race on the
	// novelty journal.
	scanMu sync.Mutex

	running   atomic.Bool
	startedAt time.Time
	ctx       context.Context
	cancel    context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running       bool
	PID           int
	DBPath        string
	LockFilePath  string
	StartedAt     time.Time
	LastScan      *store.Summary
	LastWatchlist *store.Summary
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || st == nil {
		return nil, errors.New("daemon requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	notifier := notifications.NewService(cfg)
	journal := st.Journal()
	lockPath := filepath.Join(cfg.Paths.LogDir, "blackbeardd.lock")

	d := &Daemon{
		cfg:       cfg,
		logger:    logger,
		store:     st,
		notifier:  notifier,
		scanner:   scanner.New(cfg, journal, st, notifier, logger),
		watchlist: watchlist.New(cfg, journal, st, notifier, logger),
		lockPath:  lockPath,
		lock:      flock.New(lockPath),
	}

	api, err := newAPIServer(cfg, d, logger)
	if err != nil {
		return nil, err
	}
	d.api = api
	return d, nil
}

// APIAddr returns the bound API listener address once started.
func (d *Daemon) APIAddr() string {
	return d.api.Addr()
}

// Journal exposes the daemon's novelty journal, mainly for tests.
func (d *Daemon) Journal() novelty.Journal {
	return d.store.Journal()
}

// Start acquires the daemon lock and brings up the API server.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another blackbeard daemon instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	if err := d.api.start(d.ctx); err != nil {
		_ = d.lock.Unlock()
		d.cancel()
		d.ctx = nil
		d.cancel = nil
		return err
	}

	d.startedAt = time.Now().UTC()
	d.running.Store(true)
	d.logger.Info("blackbeard daemon started", logging.String("lock", d.lockPath))
	return nil
}

// Stop shuts down the API server and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.api.stop()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.ctx = nil
	d.running.Store(false)
	d.logger.Info("blackbeard daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Scan runs one scan pipeline. A scan failure is pushed to the error
// notification channel before it propagates.
func (d *Daemon) Scan(ctx context.Context) (*report.Report, error) {
	d.scanMu.Lock()
	defer d.scanMu.Unlock()

	r, err := d.scanner.Run(ctx)
	if err != nil {
		if notifyErr := d.notifier.NotifyError(ctx, err, "scan"); notifyErr != nil {
			d.logger.Warn("error notification failed", logging.Error(notifyErr))
		}
		return nil, err
	}
	return r, nil
}

// WatchlistScan runs one watchlist pipeline.
func (d *Daemon) WatchlistScan(ctx context.Context) (*report.Report, error) {
	d.scanMu.Lock()
	defer d.scanMu.Unlock()

	r, err := d.watchlist.Run(ctx)
	if err != nil {
		if notifyErr := d.notifier.NotifyError(ctx, err, "watchlist scan"); notifyErr != nil {
			d.logger.Warn("error notification failed", logging.Error(notifyErr))
		}
		return nil, err
	}
	return r, nil
}

// Status reports the daemon runtime state and the most recent run of
// each report kind.
func (d *Daemon) Status(ctx context.Context) Status {
	status := Status{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		DBPath:       d.store.Path(),
		LockFilePath: d.lockPath,
		StartedAt:    d.startedAt,
	}
	if latest, err := d.store.ListReports(ctx, report.KindScan, 1); err == nil && len(latest) > 0 {
		status.LastScan = &latest[0]
	}
	if latest, err := d.store.ListReports(ctx, report.KindWatchlist, 1); err == nil && len(latest) > 0 {
		status.LastWatchlist = &latest[0]
	}
	return status
}

// LatestReport returns the most recent report of the given kind.
func (d *Daemon) LatestReport(ctx context.Context, kind report.Kind) (*report.Report, error) {
	return d.store.LatestReport(ctx, kind)
}

// ReportByDate returns the most recent report of the given kind on a
// calendar date (UTC, 2006-01-02).
func (d *Daemon) ReportByDate(ctx context.Context, kind report.Kind, date string) (*report.Report, error) {
	return d.store.ReportByDate(ctx, kind, date)
}

// ListReports returns report summaries, newest first.
func (d *Daemon) ListReports(ctx context.Context, kind report.Kind, limit int) ([]store.Summary, error) {
	return d.store.ListReports(ctx, kind, limit)
}

// LogPath returns the daemon's log file location.
func (d *Daemon) LogPath() string {
	return filepath.Join(d.cfg.Paths.LogDir, "blackbeard.log")
}

// DatabaseHealth returns store diagnostics.
func (d *Daemon) DatabaseHealth(ctx context.Context) (store.DatabaseHealth, error) {
	return d.store.CheckHealth(ctx)
}

// TestNotification sends a test notification through the configured
// channel.
func (d *Daemon) TestNotification(ctx context.Context) (bool, string, error) {
	if strings.TrimSpace(d.cfg.Notifications.NtfyTopic) == "" {
		return false, "notifications not configured", nil
	}
	if err := d.notifier.TestNotification(ctx); err != nil {
		return false, err.Error(), err
	}
	return true, "test notification sent", nil
}
