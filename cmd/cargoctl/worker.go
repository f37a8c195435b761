package main

import (
	"context"
	"os/signal"
	"syscall"

	"cargo-consolidation/cmd/bootstrap/components"

	"github.com/spf13/cobra"
)

func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the notification outbox worker and the scheduler without HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return withApp(ctx, func(ctx context.Context) error {
				<-ctx.Done()
				return nil
			}, components.WorkerModule)
		},
	}
}
