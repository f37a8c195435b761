package api

import (
	"net/http"
	"strconv"

	"cargo-consolidation/internal/handler/httperr"
	"cargo-consolidation/internal/pkg/errs"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var notFoundErrs = []error{
	commands.ErrBookingNotFound,
	commands.ErrReferralNotFound,
	commands.ErrApplicationNotFound,
	commands.ErrTemplateNotFound,
	commands.ErrBatchNotFound,
	commands.ErrScheduleNotFound,
	queries.ErrAgentApplicationNotFound,
	queries.ErrBatchNotFound,
	queries.ErrBookingNotFound,
	queries.ErrBoxTypeNotFound,
	queries.ErrTemplateNotFound,
	queries.ErrReferralNotFound,
	queries.ErrTrackingNotFound,
}

// respondError maps use case and query errors onto status codes.
// Field-tagged errors win over sentinels so that a missing box type on a
// booking is reported as a bad request rather than a missing resource.
func respondError(c *gin.Context, err error, msg string) {
	if detail := httperr.FieldDetail(err); detail != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, detail)
		return
	}
	for _, target := range notFoundErrs {
		if errs.Is(err, target) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
	}
	switch {
	case errs.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, msg, map[string]string{"status": err.Error()})
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", map[string]string{"after": "invalid cursor"})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

// respondJSON writes body unless building it failed.
func respondJSON(c *gin.Context, status int, body any, err error) {
	if err != nil {
		respondError(c, err, "Internal error")
		return
	}
	c.JSON(status, body)
}

func respondBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.FieldDetail(err))
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", map[string]string{name: "must be a uuid"})
		return uuid.Nil, false
	}
	return id, true
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", map[string]string{name: "must be a positive integer"})
		return 0, false
	}
	return id, true
}

// pageParams reads the keyset pagination query: after and limit.
func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func page[T any](items []T, next *queries.Cursor) gin.H {
	resp := gin.H{"items": items}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	return resp
}
