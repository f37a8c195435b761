//go:build unit

package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cargo-consolidation/internal/handler/middleware"
	"cargo-consolidation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, middleware.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, middleware.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, middleware.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, middleware.ParseLevel("verbose"))
}

func TestLoggingMiddlewareRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "15:04:05"})
	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	router.GET("/api/bookings/track/:reference_code", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	cases := []struct {
		name    string
		inbound string
		keep    bool
	}{
		{name: "generated when absent", inbound: "", keep: false},
		{name: "caller id is echoed", inbound: "edge-7f3a.1", keep: true},
		{name: "unsafe caller id is replaced", inbound: "bad id\n", keep: false},
		{name: "oversized caller id is replaced", inbound: strings.Repeat("a", 65), keep: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/bookings/track/ABCDE12345", nil)
			if tc.inbound != "" {
				req.Header.Set(middleware.RequestIDHeader, tc.inbound)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			got := w.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, got, w.Body.String())
			if tc.keep {
				assert.Equal(t, tc.inbound, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}
