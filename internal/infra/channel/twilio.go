package channel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cargo-consolidation/internal/domain/notification"
)

type TwilioConfig struct {
	AccountSID   string
	AuthToken    string
	FromNumber   string
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// TwilioWhatsAppSender sends WhatsApp messages through the Twilio Messages API.
type TwilioWhatsAppSender struct {
	cfg TwilioConfig
	req *requester
}

func NewTwilioWhatsAppSender(cfg TwilioConfig, logger *slog.Logger) (*TwilioWhatsAppSender, error) {
	cfg.AccountSID = strings.TrimSpace(cfg.AccountSID)
	cfg.AuthToken = strings.TrimSpace(cfg.AuthToken)
	cfg.FromNumber = strings.TrimSpace(cfg.FromNumber)
	switch {
	case cfg.AccountSID == "":
		return nil, errors.New("twilio: missing account sid")
	case cfg.AuthToken == "":
		return nil, errors.New("twilio: missing auth token")
	case cfg.FromNumber == "":
		return nil, errors.New("twilio: missing whatsapp sender number")
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.twilio.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = time.Second
	}
	return &TwilioWhatsAppSender{
		cfg: cfg,
		req: &requester{
			provider:   "twilio",
			httpClient: &http.Client{Timeout: cfg.Timeout},
			maxRetries: max(cfg.MaxRetries, 0),
			backoff:    cfg.RetryBackoff,
			logger:     logger.With("component", "twilio"),
		},
	}, nil
}

func whatsAppAddress(number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}

func (s *TwilioWhatsAppSender) Send(ctx context.Context, msg notification.Message) error {
	if strings.TrimSpace(msg.Recipient) == "" {
		return errors.New("twilio: recipient required")
	}
	form := url.Values{}
	form.Set("To", whatsAppAddress(msg.Recipient))
	form.Set("From", whatsAppAddress(s.cfg.FromNumber))
	form.Set("Body", msg.Body)
	encoded := form.Encode()

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.cfg.BaseURL, url.PathEscape(s.cfg.AccountSID))
	_, err := s.req.do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")
		req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)
		return req, nil
	})
	return err
}
