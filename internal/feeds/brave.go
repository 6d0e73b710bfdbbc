package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"blackbeard/internal/mention"
)

const defaultBraveBaseURL = "https://api.search.brave.com"

// Brave queries the Brave web search API. An API key is required; a
// client constructed without one returns empty results so scans can
// proceed on the remaining sources.
type Brave struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// BraveOption customizes the Brave client.
type BraveOption func(*Brave)

// WithBraveBaseURL overrides the default API base (useful for tests).
func WithBraveBaseURL(base string) BraveOption {
	return func(b *Brave) {
		base = strings.TrimSpace(base)
		if base != "" {
			b.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithBraveHTTPClient overrides the default HTTP client.
func WithBraveHTTPClient(client *http.Client) BraveOption {
	return func(b *Brave) {
		if client != nil {
			b.httpClient = client
		}
	}
}

// NewBrave constructs a Brave search client.
func NewBrave(apiKey string, opts ...BraveOption) *Brave {
	client := &Brave{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    defaultBraveBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Enabled reports whether the client holds an API key.
func (b *Brave) Enabled() bool {
	return b.apiKey != ""
}

// Search runs a web search restricted to the past week and returns the
// results as mentions.
func (b *Brave) Search(ctx context.Context, query string, count int) ([]mention.Mention, error) {
	query = strings.TrimSpace(query)
	if query == "" || !b.Enabled() {
		return nil, nil
	}
	if count <= 0 {
		count = 10
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(count))
	params.Set("freshness", "pw")
	endpoint := b.baseURL + "/res/v1/web/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("brave search: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.apiKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("brave search %q: request failed: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("brave search %q: http %d: %s", query, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload braveResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("brave search %q: decode response: %w", query, err)
	}

	mentions := make([]mention.Mention, 0, len(payload.Web.Results))
	for _, result := range payload.Web.Results {
		if strings.TrimSpace(result.Title) == "" {
			continue
		}
		mentions = append(mentions, mention.Mention{
			Source: mention.SourceBrave,
			Title:  result.Title,
			Text:   result.Description,
			URL:    result.URL,
		})
	}
	return mentions, nil
}

type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			PageAge     string `json:"page_age"`
		} `json:"results"`
	} `json:"web"`
}
