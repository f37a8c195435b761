package api

import (
	"net/http"
	"strconv"

	reqdto "cargo-consolidation/internal/handler/dto/request"
	resdto "cargo-consolidation/internal/handler/dto/response"
	"cargo-consolidation/internal/handler/httperr"
	"cargo-consolidation/internal/handler/middleware"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a box pickup. Authentication is optional; a valid token links the booking to the caller.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}
	result, err := h.cmds.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Create booking failed")
		return
	}
	res, err := resdto.FromCreateBookingResult(result)
	respondJSON(c, http.StatusCreated, res, err)
}

// @Summary Track booking
// @Description Public lookup of a booking's status and tracking history by reference code
// @Tags bookings
// @Produce json
// @Param reference_code path string true "Booking reference code"
// @Success 200 {object} resdto.BookingTrackResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/track/{reference_code} [get]
func (h *BookingHandler) Track(c *gin.Context) {
	view, err := h.q.Track(c.Request.Context(), c.Param("reference_code"))
	if err != nil {
		respondError(c, err, "Failed to track booking")
		return
	}
	res, err := resdto.FromBookingTrackView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load booking")
		return
	}
	res, err := resdto.FromBookingView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary List bookings
// @Description List bookings newest first with optional filters and keyset pagination
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status"
// @Param batch_id query int false "Container batch ID"
// @Param email query string false "Customer email"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	filter := queries.BookingFilter{
		Status: c.Query("status"),
		Email:  c.Query("email"),
	}
	if v := c.Query("batch_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", map[string]string{"batch_id": "must be an integer"})
			return
		}
		filter.BatchID = &id
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		respondError(c, err, "Failed to list bookings")
		return
	}
	res, err := resdto.FromBookingList(items)
	respondJSON(c, http.StatusOK, page(res, next), err)
}
