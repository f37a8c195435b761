package queries

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTrackingNotFound = errs.New("tracking record not found")

type TrackingReadStore interface {
	FindByID(ctx context.Context, id int64) (*TrackingView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*TrackingView, error)
}

type TrackingQueries interface {
	GetByID(ctx context.Context, id int64) (*TrackingView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*TrackingView, error)
}

type trackingQueriesImpl struct {
	store TrackingReadStore
}

func NewTrackingQueries(store TrackingReadStore) TrackingQueries {
	return &trackingQueriesImpl{store: store}
}

func (q *trackingQueriesImpl) GetByID(ctx context.Context, id int64) (*TrackingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrTrackingNotFound)
		}
		return nil, err
	}
	return v, nil
}

// ListByBooking returns records oldest first.
func (q *trackingQueriesImpl) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*TrackingView, error) {
	return q.store.ListByBooking(ctx, bookingID)
}
