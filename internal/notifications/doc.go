// Package notifications delivers scan and watchlist alerts via ntfy.
//
// The service is constructed from configuration. When no ntfy topic is
// configured a noop implementation is returned so callers never need
// nil checks. Per-category toggles let an install silence scan
// summaries while keeping error alerts, or vice versa.
package notifications
