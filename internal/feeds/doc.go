// Package feeds provides HTTP clients for the external sources the
// scanner pulls mentions from: Reddit search and subreddit listings,
// Brave web search, the Twitter recent-search API, SeatGeek event
// listings, and an optional trend-verification endpoint.
//
// Every client follows the same shape: a struct configured through
// functional options, context on every call, and configurable base
// URLs so tests can point clients at local servers. Clients with
// missing credentials return empty results rather than errors so a
// partially configured install still scans with whatever sources it
// has.
package feeds
