package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cargo-consolidation/internal/domain/notification"
)

type SendGridConfig struct {
	APIKey       string
	BaseURL      string
	FromEmail    string
	FromName     string
	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
}

// SendGridSender posts plain-text mail to the SendGrid v3 mail send API.
type SendGridSender struct {
	cfg SendGridConfig
	req *requester
}

func NewSendGridSender(cfg SendGridConfig, logger *slog.Logger) (*SendGridSender, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, errors.New("sendgrid: missing api key")
	}
	if strings.TrimSpace(cfg.FromEmail) == "" {
		return nil, errors.New("sendgrid: missing from email")
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.sendgrid.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = time.Second
	}
	return &SendGridSender{
		cfg: cfg,
		req: &requester{
			provider:   "sendgrid",
			httpClient: &http.Client{Timeout: cfg.Timeout},
			maxRetries: max(cfg.MaxRetries, 0),
			backoff:    cfg.RetryBackoff,
			logger:     logger.With("component", "sendgrid"),
		},
	}, nil
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgMailSend struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

func (s *SendGridSender) Send(ctx context.Context, msg notification.Message) error {
	if strings.TrimSpace(msg.Recipient) == "" {
		return errors.New("sendgrid: recipient required")
	}
	body, err := json.Marshal(sgMailSend{
		Personalizations: []sgPersonalization{{To: []sgAddress{{Email: msg.Recipient}}}},
		From:             sgAddress{Email: s.cfg.FromEmail, Name: s.cfg.FromName},
		Subject:          msg.Subject,
		Content:          []sgContent{{Type: "text/plain", Value: msg.Body}},
	})
	if err != nil {
		return err
	}

	_, err = s.req.do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/v3/mail/send", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	return err
}
