package api

import (
	"net/http"

	reqdto "cargo-consolidation/internal/handler/dto/request"
	resdto "cargo-consolidation/internal/handler/dto/response"
	"cargo-consolidation/internal/handler/httperr"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TrackingHandler struct {
	cmds commands.TrackingCommands
	q    queries.TrackingQueries
}

func NewTrackingHandler(cmds commands.TrackingCommands, q queries.TrackingQueries) *TrackingHandler {
	return &TrackingHandler{cmds: cmds, q: q}
}

// @Summary List tracking records
// @Description Tracking history for a booking, oldest first
// @Tags tracking
// @Produce json
// @Param booking_id query string true "Booking ID"
// @Success 200 {array} resdto.TrackingResponse
// @Failure 400 {object} map[string]string
// @Router /tracking [get]
func (h *TrackingHandler) ListByBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Query("booking_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", map[string]string{"booking_id": "must be a uuid"})
		return
	}
	items, err := h.q.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err, "Failed to list tracking records")
		return
	}
	res, err := resdto.FromTrackingList(items)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Get tracking record
// @Tags tracking
// @Produce json
// @Param id path int true "Tracking record ID"
// @Success 200 {object} resdto.TrackingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tracking/{id} [get]
func (h *TrackingHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load tracking record")
		return
	}
	res, err := resdto.FromTrackingView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Add tracking record
// @Tags tracking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTrackingRecordRequest true "Tracking record"
// @Success 201 {object} resdto.TrackingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tracking [post]
func (h *TrackingHandler) Create(c *gin.Context) {
	var req reqdto.CreateTrackingRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.cmds.AddRecord(c.Request.Context(), req.BookingID, req.Status, req.Location)
	if err != nil {
		respondError(c, err, "Add tracking record failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load tracking record")
		return
	}
	res, err := resdto.FromTrackingView(view)
	respondJSON(c, http.StatusCreated, res, err)
}
