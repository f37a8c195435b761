package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/infra"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/shared"
)

// ErrPermanent marks job failures that retrying cannot fix.
var ErrPermanent = errs.New("permanent job failure")

// JobHandler runs claimed outbox jobs of one kind.
type JobHandler interface {
	Kind() string
	Handle(ctx context.Context, job *shared.NotificationJob) error
	// Exhausted runs once after the final attempt has failed.
	Exhausted(ctx context.Context, job *shared.NotificationJob, cause error) error
}

type bookingConfirmationHandler struct {
	uow        shared.UnitOfWork
	dispatcher NotificationDispatcher
	logger     *slog.Logger
}

func NewBookingConfirmationHandler(uow shared.UnitOfWork, dispatcher NotificationDispatcher, logger *slog.Logger) JobHandler {
	return &bookingConfirmationHandler{
		uow:        uow,
		dispatcher: dispatcher,
		logger:     logger.With("component", "booking_confirmation"),
	}
}

func (h *bookingConfirmationHandler) Kind() string { return notification.KindBookingConfirmation }

// Handle sends the confirmation email, then a best-effort WhatsApp message.
// Only the email decides whether the job succeeds.
func (h *bookingConfirmationHandler) Handle(ctx context.Context, job *shared.NotificationJob) error {
	var payload BookingConfirmationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return errs.Mark(errs.Wrap(err, "invalid confirmation payload"), ErrPermanent)
	}
	b, err := h.uow.CommandReads().BookingByID(ctx, payload.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrPermanent)
		}
		return err
	}

	vars := BookingVars(b)
	err = h.dispatcher.Dispatch(ctx, DispatchRequest{
		Channel:   notification.ChannelEmail,
		Recipient: b.CustomerEmail,
		Template:  notification.TemplateBookingConfirmationEmail,
		Vars:      vars,
		BookingID: &b.ID,
	})
	if err != nil {
		return err
	}

	if b.CustomerWhatsApp != "" {
		werr := h.dispatcher.Dispatch(ctx, DispatchRequest{
			Channel:   notification.ChannelWhatsApp,
			Recipient: b.CustomerWhatsApp,
			Template:  notification.TemplateBookingConfirmationWhatsApp,
			Vars:      vars,
			BookingID: &b.ID,
		})
		if werr != nil {
			h.logger.WarnContext(ctx, "whatsapp confirmation failed; not retried",
				"booking_id", b.ID, "error", werr)
		}
	}

	return h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().MarkConfirmed(ctx, tx.DB(), b.ID)
	})
}

func (h *bookingConfirmationHandler) Exhausted(ctx context.Context, job *shared.NotificationJob, cause error) error {
	var payload BookingConfirmationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return nil
	}
	h.logger.ErrorContext(ctx, "booking confirmation gave up",
		"booking_id", payload.BookingID, "attempts", job.Attempts, "error", cause)
	err := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().MarkNotificationFailed(ctx, tx.DB(), payload.BookingID)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return nil
	}
	return err
}

// BookingVars are the placeholders available to booking templates.
func BookingVars(b *shared.BookingSnapshot) map[string]string {
	return map[string]string{
		"customer_name":  b.CustomerName,
		"reference_code": b.ReferenceCode,
		"quantity":       strconv.Itoa(b.Quantity),
		"box_type":       b.BoxTypeName,
		"volume":         b.Volume.StringFixed(2),
		"pickup_date":    b.PickupDate.Format(time.DateOnly),
		"pickup_slot":    b.PickupSlot,
		"pickup_address": b.PickupAddress,
		"cost":           b.Cost.StringFixed(2),
	}
}
