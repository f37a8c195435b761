package components

import (
	"log/slog"
	"time"

	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/infra/channel"
	"cargo-consolidation/internal/pkg/config"
	"cargo-consolidation/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(NewChannelSenders),
)

// NewChannelSenders uses the provider APIs when credentials are configured
// and falls back to logging each message otherwise.
func NewChannelSenders(cfg config.Config, logger *slog.Logger) (commands.ChannelSenders, error) {
	n := cfg.Notify
	senders := commands.ChannelSenders{
		Email:    channel.NewConsoleSender(logger, notification.ChannelEmail),
		WhatsApp: channel.NewConsoleSender(logger, notification.ChannelWhatsApp),
	}

	if n.SendGridAPIKey != "" {
		sg, err := channel.NewSendGridSender(channel.SendGridConfig{
			APIKey:       n.SendGridAPIKey,
			BaseURL:      n.SendGridBaseURL,
			FromEmail:    n.FromEmail,
			FromName:     n.FromName,
			Timeout:      n.HTTPTimeout,
			MaxRetries:   n.HTTPMaxRetries,
			RetryBackoff: 500 * time.Millisecond,
		}, logger)
		if err != nil {
			return commands.ChannelSenders{}, err
		}
		senders.Email = sg
	} else {
		logger.Warn("SENDGRID_API_KEY not set; emails are logged only")
	}

	if n.TwilioAccountSID != "" {
		tw, err := channel.NewTwilioWhatsAppSender(channel.TwilioConfig{
			AccountSID:   n.TwilioAccountSID,
			AuthToken:    n.TwilioAuthToken,
			FromNumber:   n.TwilioWhatsApp,
			BaseURL:      n.TwilioBaseURL,
			Timeout:      n.HTTPTimeout,
			MaxRetries:   n.HTTPMaxRetries,
			RetryBackoff: 500 * time.Millisecond,
		}, logger)
		if err != nil {
			return commands.ChannelSenders{}, err
		}
		senders.WhatsApp = tw
	} else {
		logger.Warn("TWILIO_ACCOUNT_SID not set; WhatsApp messages are logged only")
	}
	return senders, nil
}
