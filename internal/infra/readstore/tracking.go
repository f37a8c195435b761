package readstore

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	getTrackingByIDSQL       = `SELECT id, booking_id, status, location, timestamp FROM tracking_records WHERE id = $1`
	listTrackingByBookingSQL = `SELECT id, booking_id, status, location, timestamp FROM tracking_records WHERE booking_id = $1 ORDER BY timestamp, id`
)

type TrackingReadStore struct {
	db db.DBTX
}

func NewTrackingReadStore(db db.DBTX) *TrackingReadStore {
	return &TrackingReadStore{db: db}
}

func (r *TrackingReadStore) FindByID(ctx context.Context, id int64) (*queries.TrackingView, error) {
	var v queries.TrackingView
	err := r.db.QueryRow(ctx, getTrackingByIDSQL, id).Scan(&v.ID, &v.BookingID, &v.Status, &v.Location, &v.Timestamp)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tracking record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get tracking record", err)
	}
	return &v, nil
}

// ListByBooking is oldest first so the history reads as a timeline.
func (r *TrackingReadStore) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.TrackingView, error) {
	rows, err := r.db.Query(ctx, listTrackingByBookingSQL, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tracking records", err)
	}
	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.TrackingView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan tracking records", err)
	}
	return views, nil
}
