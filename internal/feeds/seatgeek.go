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

const defaultSeatGeekBaseURL = "https://api.seatgeek.com"

// SeatGeekEvent is a single upcoming event for a performer.
type SeatGeekEvent struct {
	Title    string
	Venue    string
	City     string
	State    string
	Capacity int
	Date     string
	URL      string
}

// SeatGeek queries the SeatGeek events API for upcoming dates by
// performer. A client ID is required; without one the client returns
// empty results.
type SeatGeek struct {
	clientID    string
	baseURL     string
	maxCapacity int
	httpClient  *http.Client
}

// SeatGeekOption customizes the SeatGeek client.
type SeatGeekOption func(*SeatGeek)

// WithSeatGeekBaseURL overrides the default API base (useful for tests).
func WithSeatGeekBaseURL(base string) SeatGeekOption {
	return func(s *SeatGeek) {
		base = strings.TrimSpace(base)
		if base != "" {
			s.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithSeatGeekMaxCapacity caps results to venues at or below the given
// capacity. Zero disables the filter. Venues that do not report a
// capacity always pass.
func WithSeatGeekMaxCapacity(capacity int) SeatGeekOption {
	return func(s *SeatGeek) {
		if capacity >= 0 {
			s.maxCapacity = capacity
		}
	}
}

// WithSeatGeekHTTPClient overrides the default HTTP client.
func WithSeatGeekHTTPClient(client *http.Client) SeatGeekOption {
	return func(s *SeatGeek) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// NewSeatGeek constructs a SeatGeek events client.
func NewSeatGeek(clientID string, opts ...SeatGeekOption) *SeatGeek {
	client := &SeatGeek{
		clientID:   strings.TrimSpace(clientID),
		baseURL:    defaultSeatGeekBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Enabled reports whether the client holds a client ID.
func (s *SeatGeek) Enabled() bool {
	return s.clientID != ""
}

// UpcomingEvents returns the next events matching the performer query,
// soonest first, filtered to small venues when a capacity cap is set.
func (s *SeatGeek) UpcomingEvents(ctx context.Context, performer string) ([]SeatGeekEvent, error) {
	performer = strings.TrimSpace(performer)
	if performer == "" || !s.Enabled() {
		return nil, nil
	}
	params := url.Values{}
	params.Set("q", performer)
	params.Set("client_id", s.clientID)
	params.Set("per_page", "10")
	params.Set("sort", "datetime_utc.asc")
	endpoint := s.baseURL + "/2/events?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("seatgeek events: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seatgeek events %q: request failed: %w", performer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("seatgeek events %q: http %d: %s", performer, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload seatGeekResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("seatgeek events %q: decode response: %w", performer, err)
	}

	events := make([]SeatGeekEvent, 0, len(payload.Events))
	for _, raw := range payload.Events {
		if s.maxCapacity > 0 && raw.Venue.Capacity > s.maxCapacity {
			continue
		}
		events = append(events, SeatGeekEvent{
			Title:    raw.Title,
			Venue:    raw.Venue.Name,
			City:     raw.Venue.City,
			State:    raw.Venue.State,
			Capacity: raw.Venue.Capacity,
			Date:     raw.DatetimeLocal,
			URL:      raw.URL,
		})
	}
	return events, nil
}

type seatGeekResponse struct {
	Events []struct {
		Title         string `json:"title"`
		DatetimeLocal string `json:"datetime_local"`
		URL           string `json:"url"`
		Venue         struct {
			Name     string `json:"name"`
			City     string `json:"city"`
			State    string `json:"state"`
			Capacity int    `json:"capacity"`
		} `json:"venue"`
	} `json:"events"`
}
