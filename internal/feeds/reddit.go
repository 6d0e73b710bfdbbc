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
	"time"

	"blackbeard/internal/mention"
)

const (
	defaultRedditBaseURL   = "https://www.reddit.com"
	defaultRedditUserAgent = "Blackbeard-Scanner/1.0 (event-research-bot)"
	defaultHTTPTimeout     = 15 * time.Second
)

// Reddit reads the public Reddit JSON listings. No credentials are
// required, but Reddit throttles aggressively on default user agents,
// so a descriptive one is always sent.
type Reddit struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// RedditOption customizes the Reddit client.
type RedditOption func(*Reddit)

// WithRedditBaseURL overrides the default API base (useful for tests).
func WithRedditBaseURL(base string) RedditOption {
	return func(r *Reddit) {
		base = strings.TrimSpace(base)
		if base != "" {
			r.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithRedditUserAgent overrides the User-Agent header.
func WithRedditUserAgent(agent string) RedditOption {
	return func(r *Reddit) {
		agent = strings.TrimSpace(agent)
		if agent != "" {
			r.userAgent = agent
		}
	}
}

// WithRedditHTTPClient overrides the default HTTP client.
func WithRedditHTTPClient(client *http.Client) RedditOption {
	return func(r *Reddit) {
		if client != nil {
			r.httpClient = client
		}
	}
}

// NewReddit constructs a Reddit listings client.
func NewReddit(opts ...RedditOption) *Reddit {
	client := &Reddit{
		baseURL:    defaultRedditBaseURL,
		userAgent:  defaultRedditUserAgent,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// SearchNew runs a site-wide search restricted to the past day, newest
// first, and returns the posts as mentions.
func (r *Reddit) SearchNew(ctx context.Context, query string, limit int) ([]mention.Mention, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", "new")
	params.Set("t", "day")
	params.Set("limit", strconv.Itoa(limit))
	endpoint := r.baseURL + "/search.json?" + params.Encode()

	listing, err := r.fetchListing(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("reddit search %q: %w", query, err)
	}
	return listing.mentions(), nil
}

// SubredditNew returns the newest posts from a single subreddit.
func (r *Reddit) SubredditNew(ctx context.Context, subreddit string, limit int) ([]mention.Mention, error) {
	subreddit = strings.Trim(strings.TrimSpace(subreddit), "/")
	if subreddit == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 25
	}
	endpoint := fmt.Sprintf("%s/r/%s/new.json?limit=%d", r.baseURL, url.PathEscape(subreddit), limit)

	listing, err := r.fetchListing(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("reddit r/%s: %w", subreddit, err)
	}
	return listing.mentions(), nil
}

func (r *Reddit) fetchListing(ctx context.Context, endpoint string) (*redditListing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &listing, nil
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	Title       string  `json:"title"`
	SelfText    string  `json:"selftext"`
	Permalink   string  `json:"permalink"`
	Subreddit   string  `json:"subreddit"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

func (l *redditListing) mentions() []mention.Mention {
	mentions := make([]mention.Mention, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		post := child.Data
		if strings.TrimSpace(post.Title) == "" {
			continue
		}
		m := mention.Mention{
			Source:     mention.SourceReddit,
			Title:      post.Title,
			Text:       post.SelfText,
			URL:        "https://reddit.com" + post.Permalink,
			Engagement: post.Score,
			Comments:   post.NumComments,
			Community:  post.Subreddit,
		}
		if post.CreatedUTC > 0 {
			created := time.Unix(int64(post.CreatedUTC), 0).UTC()
			m.CreatedAt = &created
		}
		mentions = append(mentions, m)
	}
	return mentions
}
