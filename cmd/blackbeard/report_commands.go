package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"blackbeard/internal/ipc"
	"blackbeard/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Inspect stored reports",
	}

	var latestKind string
	var formatted bool
	latestCmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the most recent report",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Report(latestKind, "")
				if err != nil {
					return err
				}
				if resp.Report == nil {
					fmt.Fprintln(stdout, "No reports stored yet")
					return nil
				}
				return printReport(stdout, ctx, resp.Report, formatted)
			})
		},
	}
	latestCmd.Flags().StringVar(&latestKind, "kind", "scan", "Report kind (scan or watchlist)")
	latestCmd.Flags().BoolVar(&formatted, "formatted", false, "Print the delivery-ready alert text")

	var listKind string
	var listLimit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ReportList(listKind, listLimit)
				if err != nil {
					return err
				}
				if len(resp.Reports) == 0 {
					fmt.Fprintln(stdout, "No reports stored yet")
					return nil
				}
				rows := make([][]string, 0, len(resp.Reports))
				for _, summary := range resp.Reports {
					rows = append(rows, []string{
						summary.Date,
						summary.Kind,
						summary.CreatedAt.Local().Format(time.Kitchen),
						fmt.Sprintf("%d", summary.MentionCount),
						fmt.Sprintf("%d", summary.EventCount),
						summary.ID,
					})
				}
				fmt.Fprintln(stdout, renderTable(
					[]string{"Date", "Kind", "Time", "Mentions", "Events", "ID"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}))
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&listKind, "kind", "", "Filter by report kind")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of reports to list")

	var showKind string
	var showFormatted bool
	showCmd := &cobra.Command{
		Use:   "show <date>",
		Short: "Show the report for a UTC date (2006-01-02)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Report(showKind, args[0])
				if err != nil {
					return err
				}
				if resp.Report == nil {
					fmt.Fprintf(stdout, "No %s report stored for %s\n", reportKindLabel(showKind), args[0])
					return nil
				}
				return printReport(stdout, ctx, resp.Report, showFormatted)
			})
		},
	}
	showCmd.Flags().StringVar(&showKind, "kind", "scan", "Report kind (scan or watchlist)")
	showCmd.Flags().BoolVar(&showFormatted, "formatted", false, "Print the delivery-ready alert text")

	reportCmd.AddCommand(latestCmd)
	reportCmd.AddCommand(listCmd)
	reportCmd.AddCommand(showCmd)
	return reportCmd
}

func printReport(stdout io.Writer, ctx *commandContext, r *report.Report, formatted bool) error {
	if formatted {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return err
		}
		formatter := report.NewFormatter(cfg.Scan.HighUrgencyScore)
		text := formatter.FormatScan(r)
		if r.Kind == report.KindWatchlist {
			text = formatter.FormatWatchlist(r)
		}
		if text == "" {
			fmt.Fprintln(stdout, "Report is empty; nothing to format")
			return nil
		}
		fmt.Fprintln(stdout, text)
		return nil
	}

	fmt.Fprintf(stdout, "Report %s (%s) from %s\n", r.ID, r.Kind, r.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(stdout, "Duration %.1fs, %d mentions, %d new keys\n\n", r.Duration.Seconds(), r.TotalMentions, len(r.NewKeys))

	if r.Kind == report.KindWatchlist {
		if len(r.Finds) == 0 {
			fmt.Fprintln(stdout, "No finds")
			return nil
		}
		rows := make([][]string, 0, len(r.Finds))
		for _, find := range r.Finds {
			rows = append(rows, []string{find.Artist, find.Tier, find.Venue, find.Date, find.Source})
		}
		fmt.Fprintln(stdout, renderTable([]string{"Artist", "Tier", "Venue", "Date", "Source"}, rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft}))
		return nil
	}

	if len(r.Events) == 0 {
		fmt.Fprintln(stdout, "No events")
		return nil
	}
	rows := make([][]string, 0, len(r.Events))
	for i, event := range r.Events {
		marker := ""
		if event.New {
			marker = "new"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			event.DisplayName,
			event.Category,
			fmt.Sprintf("%d", event.Score),
			fmt.Sprintf("%d", event.MentionCount),
			marker,
		})
	}
	fmt.Fprintln(stdout, renderTable([]string{"#", "Event", "Category", "Score", "Mentions", ""}, rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft}))
	return nil
}

func reportKindLabel(kind string) string {
	if kind == "" {
		return "scan"
	}
	return kind
}
