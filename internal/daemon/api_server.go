package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"blackbeard/internal/config"
	"blackbeard/internal/logging"
	"blackbeard/internal/report"
	"blackbeard/internal/store"
)

type apiServer struct {
	bind      string
	logger    *slog.Logger
	daemon    *Daemon
	formatter *report.Formatter

	listener net.Listener
	server   *http.Server
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) (*apiServer, error) {
	if cfg == nil || d == nil {
		return nil, nil
	}
	bind := strings.TrimSpace(cfg.Paths.APIBind)
	if bind == "" {
		return nil, nil
	}

	mux := http.NewServeMux()
	srv := &apiServer{
		bind:      bind,
		logger:    logger,
		daemon:    d,
		formatter: report.NewFormatter(cfg.Scan.HighUrgencyScore),
	}

	mux.HandleFunc("/api/health", srv.handleHealth)
	mux.HandleFunc("/api/reports", srv.handleReports)
	mux.HandleFunc("/api/reports/", srv.handleReportPath)
	mux.HandleFunc("/api/scan", srv.handleScan)

	srv.server = &http.Server{
		Handler:           allowAllOrigins(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// allowAllOrigins applies permissive CORS headers to every response.
// The API is local-network tooling with no authentication.
func allowAllOrigins(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *apiServer) start(ctx context.Context) error {
	if s == nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

// Addr returns the bound listener address, or empty before start.
func (s *apiServer) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	health, err := s.daemon.DatabaseHealth(r.Context())
	payload := map[string]any{
		"status":       "ok",
		"running":      s.daemon.running.Load(),
		"db_path":      health.DBPath,
		"report_count": health.ReportCount,
	}
	if err != nil {
		payload["status"] = "degraded"
		payload["error"] = err.Error()
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *apiServer) handleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	kind := report.Kind(strings.TrimSpace(r.URL.Query().Get("kind")))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	summaries, err := s.daemon.ListReports(r.Context(), kind, limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"reports": summaries})
}

// handleReportPath serves /api/reports/latest, /api/reports/latest/formatted,
// and /api/reports/{date}.
func (s *apiServer) handleReportPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	kind := report.Kind(strings.TrimSpace(r.URL.Query().Get("kind")))
	if kind == "" {
		kind = report.KindScan
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/reports/")
	switch {
	case rest == "latest":
		s.serveReport(w, r, func(ctx context.Context) (*report.Report, error) {
			return s.daemon.LatestReport(ctx, kind)
		})
	case rest == "latest/formatted":
		rep, err := s.daemon.LatestReport(r.Context(), kind)
		if err != nil {
			s.reportError(w, err)
			return
		}
		formatted := s.formatter.FormatScan(rep)
		if rep.Kind == report.KindWatchlist {
			formatted = s.formatter.FormatWatchlist(rep)
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(formatted))
	case datePattern.MatchString(rest):
		s.serveReport(w, r, func(ctx context.Context) (*report.Report, error) {
			return s.daemon.ReportByDate(ctx, kind, rest)
		})
	default:
		s.writeError(w, http.StatusNotFound, "report not found")
	}
}

func (s *apiServer) serveReport(w http.ResponseWriter, r *http.Request, fetch func(context.Context) (*report.Report, error)) {
	rep, err := fetch(r.Context())
	if err != nil {
		s.reportError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *apiServer) reportError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "report not found")
		return
	}
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

func (s *apiServer) handleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	kind := strings.TrimSpace(r.URL.Query().Get("kind"))

	var rep *report.Report
	var err error
	if kind == string(report.KindWatchlist) {
		rep, err = s.daemon.WatchlistScan(r.Context())
	} else {
		rep, err = s.daemon.Scan(r.Context())
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *apiServer) log() *slog.Logger {
	if s.logger != nil {
		return logging.NewComponentLogger(s.logger, "api-server")
	}
	return logging.NewNop()
}
