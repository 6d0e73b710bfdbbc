// Package logging constructs the shared slog logger: a human-oriented
// console handler for interactive use and a JSON handler for files and
// machine consumers, fanned out to stdout and the daemon log file.
package logging
