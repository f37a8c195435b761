package repository

import (
	"context"
	"time"

	"cargo-consolidation/internal/domain/schedule"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const taskColumns = `name, schedule, enabled, last_run_at, next_run_at, last_status, last_error`

const (
	ensureTaskSQL = `
INSERT INTO periodic_tasks (name, schedule, enabled, next_run_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO NOTHING`

	// SKIP LOCKED keeps two scheduler replicas from running the same task.
	claimDueTasksSQL = `
SELECT ` + taskColumns + `
FROM periodic_tasks
WHERE enabled AND next_run_at <= $1
ORDER BY name
FOR UPDATE SKIP LOCKED`

	selectTaskForUpdateSQL = `SELECT ` + taskColumns + ` FROM periodic_tasks WHERE name = $1 FOR UPDATE`

	updateTaskSQL = `
UPDATE periodic_tasks
SET schedule = $2, enabled = $3, last_run_at = $4, next_run_at = $5, last_status = $6, last_error = $7
WHERE name = $1`
)

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

// Ensure inserts the task unless a row with its name already exists.
func (r *ScheduleRepository) Ensure(ctx context.Context, tx db.DBTX, t *schedule.Task) error {
	_, err := tx.Exec(ctx, ensureTaskSQL, t.Name, t.Schedule, t.Enabled, pgconv.TimeToPgtype(t.NextRunAt))
	if err != nil {
		return infra.WrapRepoErr("failed to ensure periodic task", err)
	}
	return nil
}

func (r *ScheduleRepository) ClaimDue(ctx context.Context, tx db.DBTX, now time.Time) ([]*schedule.Task, error) {
	rows, err := tx.Query(ctx, claimDueTasksSQL, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim periodic tasks", err)
	}
	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*schedule.Task, error) {
		return scanTask(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan periodic tasks", err)
	}
	return tasks, nil
}

func (r *ScheduleRepository) FindForUpdate(ctx context.Context, tx db.DBTX, name string) (*schedule.Task, error) {
	t, err := scanTask(tx.QueryRow(ctx, selectTaskForUpdateSQL, name))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock periodic task", err)
	}
	return t, nil
}

func (r *ScheduleRepository) Save(ctx context.Context, tx db.DBTX, t *schedule.Task) error {
	return execOne(ctx, tx, "periodic task", updateTaskSQL,
		t.Name,
		t.Schedule,
		t.Enabled,
		pgconv.TimePtrToPgtype(t.LastRunAt),
		pgconv.TimeToPgtype(t.NextRunAt),
		string(t.LastStatus),
		t.LastError,
	)
}

func scanTask(row pgx.Row) (*schedule.Task, error) {
	var (
		t       schedule.Task
		lastRun pgtype.Timestamptz
		status  string
	)
	if err := row.Scan(&t.Name, &t.Schedule, &t.Enabled, &lastRun, &t.NextRunAt, &status, &t.LastError); err != nil {
		return nil, err
	}
	t.LastRunAt = pgconv.TimePtrFromPgtype(lastRun)
	t.LastStatus = schedule.RunStatus(status)
	return &t, nil
}
