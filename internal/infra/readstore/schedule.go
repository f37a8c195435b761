package readstore

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listSchedulesSQL = `
SELECT name, schedule, enabled, last_run_at, next_run_at, last_status, last_error
FROM periodic_tasks
ORDER BY name`

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(db db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: db}
}

func (r *ScheduleReadStore) List(ctx context.Context) ([]*queries.ScheduleView, error) {
	rows, err := r.db.Query(ctx, listSchedulesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list periodic tasks", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.ScheduleView, error) {
		var (
			v       queries.ScheduleView
			lastRun pgtype.Timestamptz
		)
		if err := row.Scan(&v.Name, &v.Schedule, &v.Enabled, &lastRun, &v.NextRunAt, &v.LastStatus, &v.LastError); err != nil {
			return nil, err
		}
		v.LastRunAt = pgconv.TimePtrFromPgtype(lastRun)
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan periodic tasks", err)
	}
	return views, nil
}
