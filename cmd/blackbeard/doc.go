// Command blackbeard is the CLI for the sold-out event scanner. Most
// commands talk to a running blackbeardd over its Unix socket; scan
// commands also support --local for daemonless cron installs.
package main
