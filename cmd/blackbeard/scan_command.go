package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"blackbeard/internal/ipc"
	"blackbeard/internal/logging"
	"blackbeard/internal/report"
	"blackbeard/internal/scanner"
	"blackbeard/internal/store"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run a scan now",
		Long:  "Run a scan through the daemon, or in-process with --local when no daemon is running.",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			if local {
				return runLocalScan(ctx, cmd, string(report.KindScan))
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Scan(string(report.KindScan))
				if err != nil {
					return err
				}
				printScanSummary(stdout, resp.Report)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Run the scan in-process instead of through the daemon")
	return cmd
}

// runLocalScan executes a pipeline in the CLI process. Useful for cron
// installs that never run the daemon.
func runLocalScan(ctx *commandContext, cmd *cobra.Command, kind string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var r *report.Report
	if kind == string(report.KindWatchlist) {
		r, err = newLocalWatchlist(cfg, st, logger).Run(cmd.Context())
	} else {
		r, err = scanner.New(cfg, st.Journal(), st, nil, logger).Run(cmd.Context())
	}
	if err != nil {
		return err
	}
	printScanSummary(cmd.OutOrStdout(), r)
	return nil
}

func printScanSummary(stdout io.Writer, r *report.Report) {
	if r == nil {
		fmt.Fprintln(stdout, "No report produced")
		return
	}
	switch r.Kind {
	case report.KindWatchlist:
		fmt.Fprintf(stdout, "Watchlist scan complete: %d finds in %.1fs\n", len(r.Finds), r.Duration.Seconds())
	default:
		fmt.Fprintf(stdout, "Scan complete: %d mentions, %d events, %d new keys in %.1fs\n",
			r.TotalMentions, len(r.Events), len(r.NewKeys), r.Duration.Seconds())
	}
	fmt.Fprintf(stdout, "Report ID: %s\n", r.ID)
}
