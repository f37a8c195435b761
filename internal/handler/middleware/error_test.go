//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cargo-consolidation/internal/handler/httperr"
	"cargo-consolidation/internal/handler/middleware"
	"cargo-consolidation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.DiscardHandler)
	r := gin.New()
	r.Use(middleware.CustomRecovery(logger))
	r.Use(middleware.NewLogger(config.LogConfig{Level: "error"}).LoggingMiddleware())
	r.Use(middleware.ErrorHandler(logger))
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders a recorded public error", func(t *testing.T) {
		r := errorRouter()
		r.GET("/api/boxes/:id", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusConflict}
			resp.Error.Message = "Box type already exists"
			_ = c.Error(&gin.Error{Err: errors.New("duplicate"), Type: gin.ErrorTypePublic, Meta: resp})
		})
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boxes/1", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Box type already exists"}}`, w.Body.String())
	})

	t.Run("written responses pass through", func(t *testing.T) {
		r := errorRouter()
		r.GET("/api/boxes", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })
		w := httptest.NewRecorder()

		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/boxes", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("panic becomes a 500 carrying the request id", func(t *testing.T) {
		r := errorRouter()
		r.POST("/api/bookings", func(*gin.Context) { panic("nil box type") })
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var body struct {
			Error  struct{ Message string } `json:"error"`
			Detail map[string]string        `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body.Error.Message)
		assert.Equal(t, "req-42", body.Detail["request_id"])
	})
}
