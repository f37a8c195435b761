package queries

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByReferenceCode(ctx context.Context, code string) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, after *Keyset, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	Track(ctx context.Context, referenceCode string) (*BookingTrackView, error)
	List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store    BookingReadStore
	tracking TrackingReadStore
}

func NewBookingQueries(store BookingReadStore, tracking TrackingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store, tracking: tracking}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *bookingQueriesImpl) Track(ctx context.Context, referenceCode string) (*BookingTrackView, error) {
	v, err := q.store.FindByReferenceCode(ctx, referenceCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	records, err := q.tracking.ListByBooking(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	return &BookingTrackView{
		ReferenceCode: v.ReferenceCode,
		BoxTypeName:   v.BoxTypeName,
		Quantity:      v.Quantity,
		PickupDate:    v.PickupDate,
		PickupSlot:    v.PickupSlot,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
		Tracking:      records,
	}, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := DecodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := Page(rows, limit, func(b *BookingView) string {
		return EncodeAfterCursor(b.CreatedAt, b.ID)
	})
	return rows, next, nil
}
