package commands

import (
	"context"

	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingNotifier schedules follow-up messaging for a new booking. It runs in
// the booking's transaction, so the booking and its notification commit together.
type BookingNotifier interface {
	BookingCreated(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) error
}

// ChannelSender delivers a rendered message over one channel.
type ChannelSender interface {
	Send(ctx context.Context, msg notification.Message) error
}

type ChannelSenders struct {
	Email    ChannelSender
	WhatsApp ChannelSender
}

func (s ChannelSenders) For(ch notification.Channel) ChannelSender {
	switch ch {
	case notification.ChannelEmail:
		return s.Email
	case notification.ChannelWhatsApp:
		return s.WhatsApp
	}
	return nil
}

// ProgressInvalidator drops cached container progress after bookings change it.
type ProgressInvalidator interface {
	Invalidate(ctx context.Context) error
}
