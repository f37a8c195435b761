package worker

import (
	"context"
	"log/slog"

	"cargo-consolidation/internal/domain/schedule"
	"cargo-consolidation/internal/pkg/config"
	"cargo-consolidation/internal/usecase/commands"
)

const jobBatchSize = 20

// OutboxLoop drains due notification jobs. A full batch is followed
// immediately by another claim so a backlog does not wait for the next tick.
func OutboxLoop(proc commands.JobProcessor, cfg config.WorkerConfig, logger *slog.Logger) Loop {
	return Loop{
		Name:     "outbox",
		Interval: cfg.PollInterval,
		Fn: func(ctx context.Context) error {
			for {
				n, err := proc.ProcessDue(ctx, jobBatchSize)
				if err != nil {
					return err
				}
				if n > 0 {
					logger.DebugContext(ctx, "processed notification jobs", "count", n)
				}
				if n < jobBatchSize || ctx.Err() != nil {
					return nil
				}
			}
		},
	}
}

func SchedulerLoop(sched commands.ScheduleCommands, cfg config.SchedulerConfig, logger *slog.Logger) Loop {
	return Loop{
		Name:     "scheduler",
		Interval: cfg.Tick,
		Fn: func(ctx context.Context) error {
			runs, err := sched.RunDue(ctx)
			if err != nil {
				return err
			}
			for _, run := range runs {
				if run.Err != nil {
					logger.WarnContext(ctx, "periodic task failed", "task", run.Name, "error", run.Err)
				}
			}
			return nil
		},
	}
}

// TaskRunners binds periodic task names to container operations.
func TaskRunners(container commands.ContainerCommands) map[string]commands.TaskFunc {
	return map[string]commands.TaskFunc{
		schedule.TaskCheckMilestones: func(ctx context.Context) error {
			_, err := container.CheckMilestones(ctx)
			return err
		},
		schedule.TaskCheckDispatch: func(ctx context.Context) error {
			_, err := container.CheckDispatch(ctx)
			return err
		},
	}
}
