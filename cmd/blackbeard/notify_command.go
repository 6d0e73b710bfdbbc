package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blackbeard/internal/ipc"
	"blackbeard/internal/notifications"
)

func newTestNotifyCommand(ctx *commandContext) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "test-notify",
		Short: "Send a test notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout := cmd.OutOrStdout()
			if local {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				service := notifications.NewService(cfg)
				if err := service.TestNotification(cmd.Context()); err != nil {
					return fmt.Errorf("send test notification: %w", err)
				}
				fmt.Fprintln(stdout, "Test notification sent")
				return nil
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.TestNotification()
				if err != nil {
					return err
				}
				if resp.Sent {
					fmt.Fprintln(stdout, "Test notification sent")
				} else {
					fmt.Fprintln(stdout, resp.Message)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Send directly instead of through the daemon")
	return cmd
}
