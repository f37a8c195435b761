// Package channel delivers rendered notifications through email and WhatsApp providers.
package channel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const maxRetryWait = 10 * time.Second

// HTTPError is a non-2xx provider response.
type HTTPError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "<empty body>"
	}
	if len(msg) > 1000 {
		msg = msg[:1000] + "..."
	}
	return fmt.Sprintf("%s http %d: %s", e.Provider, e.StatusCode, msg)
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode == http.StatusTooManyRequests || he.StatusCode >= 500
	}
	var ne net.Error
	return errors.As(err, &ne)
}

// retryAfter honours a Retry-After header in seconds, capped at maxRetryWait.
func retryAfter(resp *http.Response, fallback time.Duration) time.Duration {
	if resp != nil {
		if s := strings.TrimSpace(resp.Header.Get("Retry-After")); s != "" {
			if secs, err := strconv.Atoi(s); err == nil && secs >= 0 {
				fallback = time.Duration(secs) * time.Second
			}
		}
	}
	return min(fallback, maxRetryWait)
}

type requester struct {
	provider   string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
	logger     *slog.Logger
}

// do sends the request built by newReq, retrying rate limits, server errors
// and network failures with exponential backoff.
func (r *requester) do(ctx context.Context, newReq func(ctx context.Context) (*http.Request, error)) ([]byte, error) {
	backoff := r.backoff
	for attempt := 0; ; attempt++ {
		raw, resp, err := r.doOnce(ctx, newReq)
		if err == nil {
			return raw, nil
		}
		if !isRetryable(err) || attempt >= r.maxRetries {
			return nil, err
		}

		wait := retryAfter(resp, backoff)
		r.logger.WarnContext(ctx, "provider request retrying",
			"provider", r.provider,
			"attempt", attempt+1,
			"max_retries", r.maxRetries,
			"sleep", wait.String(),
			"error", err.Error(),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		backoff *= 2
	}
}

func (r *requester) doOnce(ctx context.Context, newReq func(ctx context.Context) (*http.Request, error)) ([]byte, *http.Response, error) {
	req, err := newReq(ctx)
	if err != nil {
		return nil, nil, err
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, resp, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp, &HTTPError{Provider: r.provider, StatusCode: resp.StatusCode, Message: string(raw)}
	}
	return raw, resp, nil
}
