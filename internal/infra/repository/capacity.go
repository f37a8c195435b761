package repository

import (
	"context"

	"cargo-consolidation/internal/domain/capacity"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/infra/readstore"
	"cargo-consolidation/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

const recordCapacitySnapshotSQL = `
INSERT INTO capacity_snapshots (total_volume, goal_volume, percent, recorded_at)
VALUES ($1, $2, $3, $4)`

type CapacityRepository struct{}

func NewCapacityRepository() *CapacityRepository {
	return &CapacityRepository{}
}

// TotalBookedVolume runs the read-side aggregate inside the caller's transaction.
func (r *CapacityRepository) TotalBookedVolume(ctx context.Context, tx db.DBTX) (decimal.Decimal, error) {
	return readstore.NewCapacityReadStore(tx).TotalBookedVolume(ctx)
}

func (r *CapacityRepository) RecordSnapshot(ctx context.Context, tx db.DBTX, s capacity.Snapshot) error {
	_, err := tx.Exec(ctx, recordCapacitySnapshotSQL,
		pgconv.DecimalToNumeric(s.TotalVolume),
		pgconv.DecimalToNumeric(s.GoalVolume),
		pgconv.DecimalToNumeric(s.Percent),
		pgconv.TimeToPgtype(s.RecordedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record capacity snapshot", err)
	}
	return nil
}
