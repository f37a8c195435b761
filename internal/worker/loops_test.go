//go:build unit

package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargo-consolidation/internal/domain/schedule"
	"cargo-consolidation/internal/pkg/config"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/worker"
	commandsmock "cargo-consolidation/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxLoop(t *testing.T) {
	ctx := context.Background()
	cfg := config.WorkerConfig{PollInterval: 2 * time.Second}

	t.Run("drains a backlog within one tick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		proc := commandsmock.NewMockJobProcessor(ctrl)
		gomock.InOrder(
			proc.EXPECT().ProcessDue(ctx, 20).Return(20, nil),
			proc.EXPECT().ProcessDue(ctx, 20).Return(20, nil),
			proc.EXPECT().ProcessDue(ctx, 20).Return(3, nil),
		)

		loop := worker.OutboxLoop(proc, cfg, discardLogger())

		assert.Equal(t, "outbox", loop.Name)
		assert.Equal(t, 2*time.Second, loop.Interval)
		require.NoError(t, loop.Fn(ctx))
	})

	t.Run("stops on claim errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		proc := commandsmock.NewMockJobProcessor(ctrl)
		proc.EXPECT().ProcessDue(ctx, 20).Return(0, errors.New("db down"))

		err := worker.OutboxLoop(proc, cfg, discardLogger()).Fn(ctx)
		assert.EqualError(t, err, "db down")
	})

	t.Run("stops draining once cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		proc := commandsmock.NewMockJobProcessor(ctrl)
		cctx, cancel := context.WithCancel(ctx)
		proc.EXPECT().ProcessDue(cctx, 20).DoAndReturn(func(context.Context, int) (int, error) {
			cancel()
			return 20, nil
		})

		require.NoError(t, worker.OutboxLoop(proc, cfg, discardLogger()).Fn(cctx))
	})
}

func TestSchedulerLoop(t *testing.T) {
	ctx := context.Background()

	t.Run("task failures do not fail the tick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sched := commandsmock.NewMockScheduleCommands(ctrl)
		sched.EXPECT().RunDue(ctx).Return([]commands.TaskRun{
			{Name: schedule.TaskCheckDispatch},
			{Name: schedule.TaskCheckMilestones, Err: errors.New("smtp down")},
		}, nil)

		loop := worker.SchedulerLoop(sched, config.SchedulerConfig{Tick: 30 * time.Second}, discardLogger())

		assert.Equal(t, "scheduler", loop.Name)
		assert.Equal(t, 30*time.Second, loop.Interval)
		assert.NoError(t, loop.Fn(ctx))
	})

	t.Run("claim failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sched := commandsmock.NewMockScheduleCommands(ctrl)
		sched.EXPECT().RunDue(ctx).Return(nil, errors.New("db down"))

		err := worker.SchedulerLoop(sched, config.SchedulerConfig{Tick: time.Second}, discardLogger()).Fn(ctx)
		assert.Error(t, err)
	})
}

func TestTaskRunners(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	container := commandsmock.NewMockContainerCommands(ctrl)
	container.EXPECT().CheckMilestones(ctx).Return(&commands.MilestoneReport{}, nil)
	container.EXPECT().CheckDispatch(ctx).Return(nil, errors.New("db down"))

	runners := worker.TaskRunners(container)

	require.Len(t, runners, 2)
	assert.NoError(t, runners[schedule.TaskCheckMilestones](ctx))
	assert.EqualError(t, runners[schedule.TaskCheckDispatch](ctx), "db down")
	for name := range runners {
		_, ok := schedule.Defaults[name]
		assert.True(t, ok, "runner %s has no default schedule", name)
	}
}
