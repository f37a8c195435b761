package components

import (
	"context"
	"log/slog"

	"cargo-consolidation/internal/pkg/config"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(NewWorkerRunner),
	fx.Invoke(startWorker),
)

// NewWorkerRunner assembles the loops enabled in config.
func NewWorkerRunner(
	cfg config.Config,
	jobs commands.JobProcessor,
	schedules commands.ScheduleCommands,
	logger *slog.Logger,
) *worker.Runner {
	var loops []worker.Loop
	if cfg.Worker.Enabled {
		loops = append(loops, worker.OutboxLoop(jobs, cfg.Worker, logger))
	}
	if cfg.Scheduler.Enabled {
		loops = append(loops, worker.SchedulerLoop(schedules, cfg.Scheduler, logger))
	}
	return worker.NewRunner(logger, loops...)
}

func startWorker(lc fx.Lifecycle, cfg config.Config, runner *worker.Runner, schedules commands.ScheduleCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Scheduler.Enabled {
				if err := schedules.EnsureDefaults(ctx); err != nil {
					logger.Error("failed to register default periodic tasks", "error", err)
				}
			}
			runner.Start(ctx)
			return nil
		},
		OnStop: runner.Stop,
	})
}
