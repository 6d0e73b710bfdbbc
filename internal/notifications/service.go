package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"blackbeard/internal/config"
)

const userAgent = "Blackbeard/0.1.0"

// Service defines the notification surface exposed to the scanner and
// watchlist pipelines.
type Service interface {
	NotifyScanReport(ctx context.Context, formatted string, eventCount int) error
	NotifyWatchlistReport(ctx context.Context, formatted string, findCount int) error
	NotifyError(ctx context.Context, err error, context string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint:      topic,
		client:        &http.Client{Timeout: timeout},
		scanEnabled:   cfg.Notifications.Scan,
		watchEnabled:  cfg.Notifications.Watchlist,
		errorsEnabled: cfg.Notifications.Errors,
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint      string
	client        *http.Client
	scanEnabled   bool
	watchEnabled  bool
	errorsEnabled bool
}

func (n *ntfyService) NotifyScanReport(ctx context.Context, formatted string, eventCount int) error {
	if !n.scanEnabled {
		return nil
	}
	formatted = strings.TrimSpace(formatted)
	if formatted == "" {
		return nil
	}
	priority := "default"
	if eventCount > 0 {
		priority = "high"
	}
	data := payload{
		title:    fmt.Sprintf("Blackbeard - Scan Report (%d events)", eventCount),
		message:  formatted,
		tags:     []string{"blackbeard", "scan", "report"},
		priority: priority,
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyWatchlistReport(ctx context.Context, formatted string, findCount int) error {
	if !n.watchEnabled {
		return nil
	}
	formatted = strings.TrimSpace(formatted)
	if formatted == "" {
		return nil
	}
	data := payload{
		title:    fmt.Sprintf("Blackbeard - Watchlist Alert (%d finds)", findCount),
		message:  formatted,
		tags:     []string{"blackbeard", "watchlist", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyError(ctx context.Context, err error, contextLabel string) error {
	if !n.errorsEnabled {
		return nil
	}
	var builder strings.Builder
	builder.WriteString("Error")
	if contextLabel = strings.TrimSpace(contextLabel); contextLabel != "" {
		builder.WriteString(" during ")
		builder.WriteString(contextLabel)
	}
	builder.WriteString(": ")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown")
	}

	data := payload{
		title:    "Blackbeard - Error",
		message:  builder.String(),
		tags:     []string{"blackbeard", "error", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "Blackbeard - Test",
		message:  "Notification system test",
		tags:     []string{"blackbeard", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyScanReport(context.Context, string, int) error      { return nil }
func (noopService) NotifyWatchlistReport(context.Context, string, int) error { return nil }
func (noopService) NotifyError(context.Context, error, string) error         { return nil }
func (noopService) TestNotification(context.Context) error                   { return nil }
