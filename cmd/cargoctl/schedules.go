package main

import (
	"context"
	"io"
	"time"

	resdto "cargo-consolidation/internal/handler/dto/response"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newSchedulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedules",
		Short: "List periodic tasks with their last and next run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var tasks queries.ScheduleQueries
			return withApp(cmd.Context(), func(ctx context.Context) error {
				items, err := tasks.List(ctx)
				if err != nil {
					return err
				}
				res, err := resdto.FromScheduleList(items)
				if err != nil {
					return err
				}
				return printResult(cmd, res, func(w io.Writer) {
					for _, t := range items {
						state := "enabled"
						if !t.Enabled {
							state = "disabled"
						}
						last := "never"
						if t.LastRunAt != nil {
							last = t.LastRunAt.Format(time.RFC3339) + " " + t.LastStatus
						}
						writeLine(w, "%-18s %-14s %-8s next=%s last=%s",
							t.Name, t.Schedule, state, t.NextRunAt.Format(time.RFC3339), last)
					}
				})
			}, fx.Populate(&tasks))
		},
	}
}
