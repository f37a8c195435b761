package commands

import (
	"context"
	"encoding/json"

	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/pkg/clock"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingConfirmationPayload is the outbox body of a booking_confirmation job.
type BookingConfirmationPayload struct {
	BookingID uuid.UUID `json:"booking_id"`
}

// OutboxNotifier enqueues a booking_confirmation job in the caller's transaction.
type OutboxNotifier struct {
	maxAttempts int
	clock       clock.Clock
}

func NewOutboxNotifier(maxAttempts int, clk clock.Clock) *OutboxNotifier {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &OutboxNotifier{maxAttempts: maxAttempts, clock: clk}
}

func (n *OutboxNotifier) BookingCreated(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) error {
	payload, err := json.Marshal(BookingConfirmationPayload{BookingID: bookingID})
	if err != nil {
		return errs.Wrap(err, "failed to marshal confirmation payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(),
		notification.KindBookingConfirmation,
		bookingID.String(),
		payload,
		n.clock.Now(),
		n.maxAttempts,
	)
}
