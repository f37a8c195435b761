package commands

import (
	"context"
	"log/slog"

	"cargo-consolidation/internal/domain/schedule"
	reqdto "cargo-consolidation/internal/handler/dto/request"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"
)

var ErrNoTaskRunner = errs.New("no runner registered for periodic task")

type TaskFunc func(ctx context.Context) error

type TaskRun struct {
	Name string
	Err  error
}

type ScheduleCommands interface {
	UpdateSchedule(ctx context.Context, name string, req reqdto.UpdateScheduleRequest) error
	// EnsureDefaults creates missing rows for built-in tasks. Existing rows keep their schedule.
	EnsureDefaults(ctx context.Context) error
	// RunDue claims tasks whose next run has passed, advances them, and runs them.
	RunDue(ctx context.Context) ([]TaskRun, error)
}

type scheduleUseCaseImpl struct {
	uow     shared.UnitOfWork
	runners map[string]TaskFunc
	clock   clock.Clock
	logger  *slog.Logger
}

func NewScheduleUseCase(uow shared.UnitOfWork, runners map[string]TaskFunc, clk clock.Clock, logger *slog.Logger) ScheduleCommands {
	return &scheduleUseCaseImpl{
		uow:     uow,
		runners: runners,
		clock:   clk,
		logger:  logger.With("component", "scheduler"),
	}
}

func (uc *scheduleUseCaseImpl) UpdateSchedule(ctx context.Context, name string, req reqdto.UpdateScheduleRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		task, err := tx.Schedules().FindForUpdate(ctx, tx.DB(), name)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrScheduleNotFound)
			}
			return err
		}
		if req.Schedule != nil {
			if err := task.Reschedule(*req.Schedule, uc.clock.Now()); err != nil {
				return err
			}
		}
		if req.Enabled != nil {
			task.Enabled = *req.Enabled
		}
		return tx.Schedules().Save(ctx, tx.DB(), task)
	})
}

func (uc *scheduleUseCaseImpl) EnsureDefaults(ctx context.Context) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for name := range uc.runners {
			expr, ok := schedule.Defaults[name]
			if !ok {
				continue
			}
			task, err := schedule.NewTask(name, expr, now)
			if err != nil {
				return err
			}
			if err := tx.Schedules().Ensure(ctx, tx.DB(), task); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *scheduleUseCaseImpl) RunDue(ctx context.Context) ([]TaskRun, error) {
	var due []*schedule.Task
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		due = nil
		now := uc.clock.Now()
		tasks, err := tx.Schedules().ClaimDue(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			// Advance before running so a concurrent scheduler skips this slot.
			if err := t.Reschedule(t.Schedule, now); err != nil {
				uc.logger.ErrorContext(ctx, "disabling task with invalid schedule",
					"task", t.Name, "schedule", t.Schedule, "error", err)
				t.Enabled = false
				if err := tx.Schedules().Save(ctx, tx.DB(), t); err != nil {
					return err
				}
				continue
			}
			if err := tx.Schedules().Save(ctx, tx.DB(), t); err != nil {
				return err
			}
			due = append(due, t)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to claim periodic tasks")
	}

	runs := make([]TaskRun, 0, len(due))
	for _, t := range due {
		runs = append(runs, TaskRun{Name: t.Name, Err: uc.runOne(ctx, t.Name)})
	}
	return runs, nil
}

func (uc *scheduleUseCaseImpl) runOne(ctx context.Context, name string) error {
	started := uc.clock.Now()
	runErr := ErrNoTaskRunner
	if fn, ok := uc.runners[name]; ok {
		runErr = fn(ctx)
	}
	if runErr != nil {
		uc.logger.ErrorContext(ctx, "periodic task failed", "task", name, "error", runErr)
	} else {
		uc.logger.InfoContext(ctx, "periodic task finished", "task", name, "duration", uc.clock.Now().Sub(started))
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		task, err := tx.Schedules().FindForUpdate(ctx, tx.DB(), name)
		if err != nil {
			return err
		}
		if err := task.Complete(started, runErr); err != nil {
			return err
		}
		return tx.Schedules().Save(ctx, tx.DB(), task)
	})
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to record task run", "task", name, "error", err)
	}
	return runErr
}
