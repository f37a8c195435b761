package repository

import (
	"context"

	"cargo-consolidation/internal/domain/tracking"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
)

const createTrackingRecordSQL = `
INSERT INTO tracking_records (booking_id, status, location, timestamp)
VALUES ($1, $2, $3, $4)
RETURNING id`

type TrackingRepository struct{}

func NewTrackingRepository() *TrackingRepository {
	return &TrackingRepository{}
}

func (r *TrackingRepository) Create(ctx context.Context, tx db.DBTX, rec *tracking.Record) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, createTrackingRecordSQL,
		rec.BookingID, rec.Status, rec.Location, pgconv.TimeToPgtype(rec.Timestamp),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create tracking record", err)
	}
	return id, nil
}
