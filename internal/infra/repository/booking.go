package repository

import (
	"context"

	"cargo-consolidation/internal/domain/booking"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/infra/db"
	"cargo-consolidation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReferenceCodeConstraint is the unique index guarding reference codes.
const ReferenceCodeConstraint = "bookings_reference_code_key"

const (
	createBookingSQL = `
INSERT INTO bookings (
    id, reference_code, user_id, box_type_id, quantity, weight_kg,
    customer_name, customer_email, customer_whatsapp, pickup_address,
    pickup_date, pickup_slot, cost, referral_id, batch_id,
    status, notification_status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)`

	markBookingConfirmedSQL = `
UPDATE bookings
SET status = 'confirmed', notification_status = 'sent', updated_at = now()
WHERE id = $1`

	markBookingNotificationFailedSQL = `
UPDATE bookings
SET notification_status = 'failed', updated_at = now()
WHERE id = $1`
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking, batchID int64) error {
	contact := b.Contact()
	_, err := tx.Exec(ctx, createBookingSQL,
		b.ID(),
		b.ReferenceCode().String(),
		pgconv.UUIDPtrToPgtype(b.UserID()),
		b.BoxTypeID(),
		b.Quantity().Value(),
		pgconv.DecimalPtrToNumeric(b.WeightKg()),
		contact.Name(),
		contact.Email(),
		contact.WhatsApp(),
		b.PickupAddress().String(),
		pgconv.DateToPgtype(b.PickupDate()),
		b.PickupSlot().String(),
		pgconv.DecimalToNumeric(b.Cost()),
		pgconv.UUIDPtrToPgtype(b.ReferralID()),
		pgtype.Int8{Int64: batchID, Valid: true},
		string(b.Status()),
		string(b.NotificationStatus()),
		pgconv.TimeToPgtype(b.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) MarkConfirmed(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return execOne(ctx, tx, "booking", markBookingConfirmedSQL, id)
}

func (r *BookingRepository) MarkNotificationFailed(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return execOne(ctx, tx, "booking", markBookingNotificationFailedSQL, id)
}
