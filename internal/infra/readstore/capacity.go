package readstore

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// The aggregate stays in numeric; the divisor is applied once to the exact sum.
const totalBookedVolumeSQL = `
SELECT COALESCE(SUM(bt.length_cm::numeric * bt.width_cm * bt.height_cm * b.quantity), 0) / 1000000
FROM bookings b
JOIN box_types bt ON bt.id = b.box_type_id`

const listCapacitySnapshotsSQL = `
SELECT id, total_volume, goal_volume, percent, recorded_at
FROM capacity_snapshots
ORDER BY recorded_at DESC, id DESC
LIMIT $1`

type CapacityReadStore struct {
	db db.DBTX
}

func NewCapacityReadStore(db db.DBTX) *CapacityReadStore {
	return &CapacityReadStore{db: db}
}

func (r *CapacityReadStore) TotalBookedVolume(ctx context.Context) (decimal.Decimal, error) {
	var total pgtype.Numeric
	if err := r.db.QueryRow(ctx, totalBookedVolumeSQL).Scan(&total); err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to aggregate booked volume", err)
	}
	d, err := pgconv.DecimalFromNumeric(total)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to convert booked volume", err)
	}
	return d, nil
}

func (r *CapacityReadStore) History(ctx context.Context, limit int32) ([]*queries.CapacitySnapshotView, error) {
	rows, err := r.db.Query(ctx, listCapacitySnapshotsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list capacity snapshots", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.CapacitySnapshotView, error) {
		var (
			v                    queries.CapacitySnapshotView
			total, goal, percent pgtype.Numeric
			err                  error
		)
		if err = row.Scan(&v.ID, &total, &goal, &percent, &v.RecordedAt); err != nil {
			return nil, err
		}
		if v.TotalVolume, err = pgconv.DecimalFromNumeric(total); err != nil {
			return nil, err
		}
		if v.GoalVolume, err = pgconv.DecimalFromNumeric(goal); err != nil {
			return nil, err
		}
		if v.Percent, err = pgconv.DecimalFromNumeric(percent); err != nil {
			return nil, err
		}
		return &v, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan capacity snapshots", err)
	}
	return views, nil
}
