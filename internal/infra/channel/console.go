package channel

import (
	"context"
	"log/slog"

	"cargo-consolidation/internal/domain/notification"
)

// ConsoleSender logs messages instead of delivering them. It stands in for a
// provider whose credentials are not configured.
type ConsoleSender struct {
	logger *slog.Logger
}

func NewConsoleSender(logger *slog.Logger, channel notification.Channel) *ConsoleSender {
	return &ConsoleSender{logger: logger.With("component", "console_sender", "channel", channel.String())}
}

func (s *ConsoleSender) Send(ctx context.Context, msg notification.Message) error {
	s.logger.InfoContext(ctx, "notification (console)",
		"recipient", msg.Recipient,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
