// Package scanner orchestrates a full scan run: gather mentions from
// the configured sources, classify, cluster, extract, score, diff
// against the novelty journal, persist the report, and hand the
// formatted alert to the notifier.
//
// The pipeline is strictly sequential. Every external call runs under
// its own timeout and a failed source contributes zero mentions
// instead of failing the run; only journal or store failures abort.
package scanner
