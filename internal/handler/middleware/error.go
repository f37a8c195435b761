package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"cargo-consolidation/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error for handlers that recorded one
// without writing a body, and logs the cause of every 5xx.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= http.StatusInternalServerError {
			for _, e := range c.Errors {
				logger.ErrorContext(c.Request.Context(), "request failed",
					"error", e.Err, "route", c.FullPath(), "request_id", GetRequestID(c))
			}
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		internalError(c)
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(c.Request.Context(), "recovered from panic",
					"panic", rec, "route", c.FullPath(), "request_id", GetRequestID(c), "stack", string(debug.Stack()))
				internalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func internalError(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	if id := GetRequestID(c); id != "" {
		resp.Detail = map[string]string{"request_id": id}
	}
	c.JSON(http.StatusInternalServerError, resp)
}
