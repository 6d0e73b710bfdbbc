package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"blackbeard/internal/mention"
)

const defaultTwitterBaseURL = "https://api.twitter.com"

// Twitter queries the recent-search endpoint of the Twitter v2 API. A
// bearer token is required; without one the client returns empty
// results.
type Twitter struct {
	bearerToken string
	baseURL     string
	httpClient  *http.Client
}

// TwitterOption customizes the Twitter client.
type TwitterOption func(*Twitter)

// WithTwitterBaseURL overrides the default API base (useful for tests).
func WithTwitterBaseURL(base string) TwitterOption {
	return func(t *Twitter) {
		base = strings.TrimSpace(base)
		if base != "" {
			t.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithTwitterHTTPClient overrides the default HTTP client.
func WithTwitterHTTPClient(client *http.Client) TwitterOption {
	return func(t *Twitter) {
		if client != nil {
			t.httpClient = client
		}
	}
}

// NewTwitter constructs a Twitter recent-search client.
func NewTwitter(bearerToken string, opts ...TwitterOption) *Twitter {
	client := &Twitter{
		bearerToken: strings.TrimSpace(bearerToken),
		baseURL:     defaultTwitterBaseURL,
		httpClient:  &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Enabled reports whether the client holds a bearer token.
func (t *Twitter) Enabled() bool {
	return t.bearerToken != ""
}

// SearchRecent searches tweets from the past week and returns them as
// mentions. Retweets are excluded at the query level by callers that
// care; the raw query is passed through unchanged.
func (t *Twitter) SearchRecent(ctx context.Context, query string) ([]mention.Mention, error) {
	query = strings.TrimSpace(query)
	if query == "" || !t.Enabled() {
		return nil, nil
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("max_results", "20")
	params.Set("tweet.fields", "created_at,public_metrics")
	endpoint := t.baseURL + "/2/tweets/search/recent?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("twitter search: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.bearerToken)
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twitter search %q: request failed: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("twitter search %q: http %d: %s", query, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload twitterResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("twitter search %q: decode response: %w", query, err)
	}

	mentions := make([]mention.Mention, 0, len(payload.Data))
	for _, tweet := range payload.Data {
		if strings.TrimSpace(tweet.Text) == "" {
			continue
		}
		m := mention.Mention{
			Source:     mention.SourceTwitter,
			Title:      tweet.Text,
			URL:        "https://x.com/i/status/" + tweet.ID,
			Engagement: tweet.PublicMetrics.LikeCount + 3*tweet.PublicMetrics.RetweetCount,
			Comments:   tweet.PublicMetrics.ReplyCount,
		}
		if created, err := time.Parse(time.RFC3339, tweet.CreatedAt); err == nil {
			createdUTC := created.UTC()
			m.CreatedAt = &createdUTC
		}
		mentions = append(mentions, m)
	}
	return mentions, nil
}

type twitterResponse struct {
	Data []struct {
		ID            string `json:"id"`
		Text          string `json:"text"`
		CreatedAt     string `json:"created_at"`
		PublicMetrics struct {
			LikeCount    int `json:"like_count"`
			RetweetCount int `json:"retweet_count"`
			ReplyCount   int `json:"reply_count"`
		} `json:"public_metrics"`
	} `json:"data"`
}
