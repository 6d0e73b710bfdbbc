// Package config loads, normalizes, and validates Blackbeard
// configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// prefixes), and exposes the embedded annotated sample configuration
// used by `blackbeard config init`.
package config
