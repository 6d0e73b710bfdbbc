package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"blackbeard/internal/ipc"
)

func newDaemonCommands(ctx *commandContext) []*cobra.Command {
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start the blackbeard daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()

			if client, err := ipc.Dial(ctx.socketPath()); err == nil {
				client.Close()
				fmt.Fprintln(stdout, "Daemon already running")
				return nil
			}

			exe, err := daemonExecutable()
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, "Daemon not running, launching...")
			if err := launchDaemon(exe); err != nil {
				return err
			}
			if err := waitForSocket(ctx.socketPath(), 10*time.Second); err != nil {
				return err
			}
			fmt.Fprintln(stdout, "Daemon started")
			return nil
		},
	}

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the blackbeard daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			err := ctx.withClient(func(client *ipc.Client) error {
				_, stopErr := client.Stop()
				return stopErr
			})
			if err != nil {
				fmt.Fprintln(stdout, "Daemon is not running")
				return nil
			}
			fmt.Fprintln(stdout, "Daemon stopped")
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon and report status",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			return ctx.withClient(func(client *ipc.Client) error {
				status, err := client.Status()
				if err != nil {
					return err
				}
				health, healthErr := client.DatabaseHealth()

				rows := [][]string{
					{"Running", yesNo(status.Running)},
					{"PID", fmt.Sprintf("%d", status.PID)},
					{"Database", status.DBPath},
					{"Lock file", status.LockPath},
				}
				if !status.StartedAt.IsZero() {
					rows = append(rows, []string{"Started", status.StartedAt.Format(time.RFC3339)})
				}
				if status.LastScan != nil {
					rows = append(rows, []string{"Last scan", fmt.Sprintf("%s (%d events)", status.LastScan.Date, status.LastScan.EventCount)})
				}
				if status.LastWatchlist != nil {
					rows = append(rows, []string{"Last watchlist", fmt.Sprintf("%s (%d finds)", status.LastWatchlist.Date, status.LastWatchlist.EventCount)})
				}
				if healthErr == nil && health != nil {
					rows = append(rows, []string{"Reports stored", fmt.Sprintf("%d", health.ReportCount)})
					rows = append(rows, []string{"Novelty keys", fmt.Sprintf("%d", health.NoveltyKeyCount)})
				}

				fmt.Fprintln(stdout, renderTable([]string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignLeft}))
				return nil
			})
		},
	}

	return []*cobra.Command{startCmd, stopCmd, statusCmd}
}

// daemonExecutable locates blackbeardd next to the CLI binary, falling
// back to PATH.
func daemonExecutable() (string, error) {
	self, err := os.Executable()
	if err == nil {
		candidate := filepath.Join(filepath.Dir(self), "blackbeardd")
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	path, err := exec.LookPath("blackbeardd")
	if err != nil {
		return "", fmt.Errorf("locate blackbeardd executable: %w", err)
	}
	return path, nil
}

func launchDaemon(exe string) error {
	cmd := exec.Command(exe)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch daemon: %w", err)
	}
	// Reap the child when it exits so it never lingers as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

func waitForSocket(socket string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		client, err := ipc.Dial(socket)
		if err == nil {
			client.Close()
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("daemon did not come up within %s", timeout)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
