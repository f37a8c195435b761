package readstore

import (
	"context"

	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewSelect = `
SELECT b.id, b.reference_code, b.user_id, b.box_type_id, bt.name, b.quantity, b.weight_kg,
       b.customer_name, b.customer_email, b.customer_whatsapp, b.pickup_address,
       b.pickup_date, b.pickup_slot,
       (bt.length_cm::numeric * bt.width_cm * bt.height_cm * b.quantity) / 1000000,
       b.cost, r.code, b.batch_id, b.status, b.notification_status, b.created_at
FROM bookings b
JOIN box_types bt ON bt.id = b.box_type_id
LEFT JOIN referrals r ON r.id = b.referral_id`

const (
	getBookingByIDSQL            = bookingViewSelect + ` WHERE b.id = $1`
	getBookingByReferenceCodeSQL = bookingViewSelect + ` WHERE b.reference_code = $1`
	referenceCodeExistsSQL       = `SELECT EXISTS (SELECT 1 FROM bookings WHERE reference_code = $1)`

	listBookingsSQL = bookingViewSelect + `
WHERE ($1 = '' OR b.status = $1)
  AND ($2::bigint IS NULL OR b.batch_id = $2)
  AND ($3 = '' OR lower(b.customer_email) = lower($3))
  AND ($4::timestamptz IS NULL OR (b.created_at, b.id) < ($4, $5::uuid))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $6`
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, err := scanBooking(r.db.QueryRow(ctx, getBookingByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return v, nil
}

func (r *BookingReadStore) FindByReferenceCode(ctx context.Context, code string) (*queries.BookingView, error) {
	v, err := scanBooking(r.db.QueryRow(ctx, getBookingByReferenceCodeSQL, code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by reference code", err)
	}
	return v, nil
}

func (r *BookingReadStore) ReferenceCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, referenceCodeExistsSQL, code).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check reference code", err)
	}
	return exists, nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter, after *queries.Keyset, limit int32) ([]*queries.BookingView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, listBookingsSQL,
		filter.Status,
		pgconv.Int64PtrToPgtype(filter.BatchID),
		filter.Email,
		afterAt, afterID,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.BookingView, error) {
		return scanBooking(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan bookings", err)
	}
	return views, nil
}

func scanBooking(row pgx.Row) (*queries.BookingView, error) {
	var (
		v                    queries.BookingView
		userID               pgtype.UUID
		weight, volume, cost pgtype.Numeric
		pickupDate           pgtype.Date
		referralCode         pgtype.Text
		batchID              pgtype.Int8
		err                  error
	)
	err = row.Scan(
		&v.ID, &v.ReferenceCode, &userID, &v.BoxTypeID, &v.BoxTypeName, &v.Quantity, &weight,
		&v.CustomerName, &v.CustomerEmail, &v.CustomerWhatsApp, &v.PickupAddress,
		&pickupDate, &v.PickupSlot,
		&volume,
		&cost, &referralCode, &batchID, &v.Status, &v.NotificationStatus, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.UserID = pgconv.UUIDPtrFromPgtype(userID)
	v.PickupDate = pgconv.DateFromPgtype(pickupDate)
	v.ReferralCode = pgconv.StringPtrFromPgtype(referralCode)
	v.BatchID = pgconv.Int64PtrFromPgtype(batchID)
	if v.WeightKg, err = pgconv.DecimalPtrFromNumeric(weight); err != nil {
		return nil, err
	}
	if v.Volume, err = pgconv.DecimalFromNumeric(volume); err != nil {
		return nil, err
	}
	if v.Cost, err = pgconv.DecimalFromNumeric(cost); err != nil {
		return nil, err
	}
	return &v, nil
}
