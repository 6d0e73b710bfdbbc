package main

import (
	"fmt"

	"log/slog"

	"github.com/spf13/cobra"

	"blackbeard/internal/config"
	"blackbeard/internal/ipc"
	"blackbeard/internal/report"
	"blackbeard/internal/store"
	"blackbeard/internal/watchlist"
)

func newWatchlistCommand(ctx *commandContext) *cobra.Command {
	watchlistCmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Watchlist utilities",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show the configured artist watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			stdout := cmd.OutOrStdout()
			artists := cfg.Watchlist.Artists
			if len(artists) == 0 {
				fmt.Fprintln(stdout, "Watchlist is empty; add [[watchlist.artists]] entries to the config")
				return nil
			}
			rows := make([][]string, 0, len(artists))
			for _, artist := range artists {
				rows = append(rows, []string{artist.Name, artist.Tier, artist.Category})
			}
			fmt.Fprintln(stdout, renderTable([]string{"Artist", "Tier", "Category"}, rows, []columnAlignment{alignLeft, alignLeft, alignLeft}))
			return nil
		},
	}

	var local bool
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Run a watchlist scan now",
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				return runLocalScan(ctx, cmd, string(report.KindWatchlist))
			}
			stdout := cmd.OutOrStdout()
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Scan(string(report.KindWatchlist))
				if err != nil {
					return err
				}
				printScanSummary(stdout, resp.Report)
				return nil
			})
		},
	}
	scanCmd.Flags().BoolVar(&local, "local", false, "Run the scan in-process instead of through the daemon")

	watchlistCmd.AddCommand(listCmd)
	watchlistCmd.AddCommand(scanCmd)
	return watchlistCmd
}

func newLocalWatchlist(cfg *config.Config, st *store.Store, logger *slog.Logger) *watchlist.Watchlist {
	return watchlist.New(cfg, st.Journal(), st, nil, logger)
}
