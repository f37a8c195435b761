//go:build unit

package channel_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cargo-consolidation/internal/domain/notification"
	"cargo-consolidation/internal/infra/channel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func emailMessage() notification.Message {
	return notification.Message{
		Channel:   notification.ChannelEmail,
		Recipient: "ada@example.com",
		Subject:   "Booking ABCDE12345 received",
		Body:      "Dear Ada",
	}
}

func newSendGrid(t *testing.T, baseURL string, retries int) *channel.SendGridSender {
	t.Helper()
	s, err := channel.NewSendGridSender(channel.SendGridConfig{
		APIKey:       "SG.test",
		BaseURL:      baseURL,
		FromEmail:    "no-reply@example.com",
		FromName:     "Cargo Test",
		Timeout:      2 * time.Second,
		MaxRetries:   retries,
		RetryBackoff: time.Millisecond,
	}, discard)
	require.NoError(t, err)
	return s
}

func TestSendGridSender(t *testing.T) {
	t.Run("posts mail send payload with bearer auth", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v3/mail/send", r.URL.Path)
			assert.Equal(t, "Bearer SG.test", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		err := newSendGrid(t, srv.URL, 0).Send(context.Background(), emailMessage())

		require.NoError(t, err)
		assert.Equal(t, "Booking ABCDE12345 received", got["subject"])
		from := got["from"].(map[string]any)
		assert.Equal(t, "no-reply@example.com", from["email"])
		assert.Equal(t, "Cargo Test", from["name"])
		to := got["personalizations"].([]any)[0].(map[string]any)["to"].([]any)[0].(map[string]any)
		assert.Equal(t, "ada@example.com", to["email"])
		content := got["content"].([]any)[0].(map[string]any)
		assert.Equal(t, "text/plain", content["type"])
		assert.Equal(t, "Dear Ada", content["value"])
	})

	t.Run("client error is returned without retry", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":[{"message":"invalid email"}]}`))
		}))
		defer srv.Close()

		err := newSendGrid(t, srv.URL, 3).Send(context.Background(), emailMessage())

		require.Error(t, err)
		var he *channel.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.StatusCode)
		assert.Contains(t, err.Error(), "invalid email")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("server error is retried until success", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		err := newSendGrid(t, srv.URL, 2).Send(context.Background(), emailMessage())

		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		err := newSendGrid(t, srv.URL, 1).Send(context.Background(), emailMessage())

		require.Error(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("missing api key is rejected at construction", func(t *testing.T) {
		_, err := channel.NewSendGridSender(channel.SendGridConfig{FromEmail: "x@example.com"}, discard)
		assert.Error(t, err)
	})
}

func TestTwilioWhatsAppSender(t *testing.T) {
	newSender := func(t *testing.T, baseURL string) *channel.TwilioWhatsAppSender {
		t.Helper()
		s, err := channel.NewTwilioWhatsAppSender(channel.TwilioConfig{
			AccountSID:   "AC123",
			AuthToken:    "secret",
			FromNumber:   "+14155238886",
			BaseURL:      baseURL,
			Timeout:      2 * time.Second,
			RetryBackoff: time.Millisecond,
		}, discard)
		require.NoError(t, err)
		return s
	}

	t.Run("posts form with whatsapp addresses and basic auth", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "AC123", user)
			assert.Equal(t, "secret", pass)
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "whatsapp:+233201234567", r.PostForm.Get("To"))
			assert.Equal(t, "whatsapp:+14155238886", r.PostForm.Get("From"))
			assert.Equal(t, "Hi Ada", r.PostForm.Get("Body"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"sid":"SM1","status":"queued"}`))
		}))
		defer srv.Close()

		err := newSender(t, srv.URL).Send(context.Background(), notification.Message{
			Channel:   notification.ChannelWhatsApp,
			Recipient: "+233201234567",
			Body:      "Hi Ada",
		})

		require.NoError(t, err)
	})

	t.Run("api error surfaces provider message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number"}`))
		}))
		defer srv.Close()

		err := newSender(t, srv.URL).Send(context.Background(), notification.Message{
			Channel:   notification.ChannelWhatsApp,
			Recipient: "+1",
			Body:      "Hi",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid 'To' Phone Number")
	})

	t.Run("missing credentials are rejected at construction", func(t *testing.T) {
		_, err := channel.NewTwilioWhatsAppSender(channel.TwilioConfig{AccountSID: "AC123"}, discard)
		assert.Error(t, err)
	})
}

func TestConsoleSender(t *testing.T) {
	s := channel.NewConsoleSender(discard, notification.ChannelEmail)

	assert.NoError(t, s.Send(context.Background(), emailMessage()))
}
