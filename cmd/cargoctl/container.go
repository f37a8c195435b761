package main

import (
	"context"
	"io"

	resdto "cargo-consolidation/internal/handler/dto/response"
	"cargo-consolidation/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newCheckDispatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-dispatch",
		Short: "Notify admins and mark the open batch ready when the container is full",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var container commands.ContainerCommands
			return withApp(cmd.Context(), func(ctx context.Context) error {
				report, err := container.CheckDispatch(ctx)
				if err != nil {
					return err
				}
				return printResult(cmd, resdto.FromDispatchReport(report), func(w io.Writer) {
					writeLine(w, "%s", report.Message)
				})
			}, fx.Populate(&container))
		},
	}
}

func newCheckMilestonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-milestones",
		Short: "Alert admins for reached capacity milestones and record a snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var container commands.ContainerCommands
			return withApp(cmd.Context(), func(ctx context.Context) error {
				report, err := container.CheckMilestones(ctx)
				if err != nil {
					return err
				}
				res := resdto.FromMilestoneReport(report)
				return printResult(cmd, res, func(w io.Writer) {
					writeLine(w, "Booked %sm³ of %sm³ (%s%%)", res.TotalVolume, res.GoalVolume, res.Percent)
					if len(res.Reached) == 0 {
						writeLine(w, "No milestone reached")
					}
					for _, m := range res.Reached {
						status := "notified"
						if !m.Notified {
							status = "notification failed: " + m.Error
						}
						writeLine(w, "%d%% milestone (%sm³): %s", m.Percent, m.Threshold, status)
					}
				})
			}, fx.Populate(&container))
		},
	}
}

func newMarkReadyBatchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark-ready-batches",
		Short: "Mark every open batch that reached its target volume as ready",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var container commands.ContainerCommands
			return withApp(cmd.Context(), func(ctx context.Context) error {
				lines, err := container.MarkReadyBatches(ctx)
				if err != nil {
					return err
				}
				res, err := resdto.FromBatchReadiness(lines)
				if err != nil {
					return err
				}
				return printResult(cmd, res, func(w io.Writer) {
					if len(lines) == 0 {
						writeLine(w, "No open batches")
					}
					for _, l := range lines {
						writeLine(w, "%s", l.Line)
					}
				})
			}, fx.Populate(&container))
		},
	}
}
