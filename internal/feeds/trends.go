package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Trend is the verification verdict for a single event name.
type Trend struct {
	Spike    int  `json:"spike"`
	Peak     int  `json:"peak"`
	Trending bool `json:"trending"`
	Hot      bool `json:"hot"`
}

// Trends queries an external search-interest endpoint used to verify
// whether a scored event is currently spiking. The endpoint is
// optional; a client constructed without a base URL reports no trend
// for every query.
type Trends struct {
	baseURL    string
	httpClient *http.Client
}

// TrendsOption customizes the trends client.
type TrendsOption func(*Trends)

// WithTrendsHTTPClient overrides the default HTTP client.
func WithTrendsHTTPClient(client *http.Client) TrendsOption {
	return func(t *Trends) {
		if client != nil {
			t.httpClient = client
		}
	}
}

// NewTrends constructs a trend-verification client. An empty base URL
// disables the client.
func NewTrends(baseURL string, opts ...TrendsOption) *Trends {
	client := &Trends{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Enabled reports whether the client has an endpoint to query.
func (t *Trends) Enabled() bool {
	return t.baseURL != ""
}

// Lookup returns the trend verdict for an event name. A disabled
// client returns a zero verdict and no error.
func (t *Trends) Lookup(ctx context.Context, eventName string) (Trend, error) {
	var verdict Trend
	eventName = strings.TrimSpace(eventName)
	if eventName == "" || !t.Enabled() {
		return verdict, nil
	}
	params := url.Values{}
	params.Set("q", eventName)
	endpoint := t.baseURL + "/interest?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return verdict, fmt.Errorf("trends lookup: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return verdict, fmt.Errorf("trends lookup %q: request failed: %w", eventName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return verdict, fmt.Errorf("trends lookup %q: http %d: %s", eventName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return Trend{}, fmt.Errorf("trends lookup %q: decode response: %w", eventName, err)
	}
	return verdict, nil
}
