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

type NotificationHandler struct {
	cmds commands.TemplateCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.TemplateCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List notification templates
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param channel query string false "email or whatsapp"
// @Success 200 {array} resdto.TemplateResponse
// @Failure 403 {object} map[string]string
// @Router /notification-templates [get]
func (h *NotificationHandler) ListTemplates(c *gin.Context) {
	items, err := h.q.ListTemplates(c.Request.Context(), c.Query("channel"))
	if err != nil {
		respondError(c, err, "Failed to list templates")
		return
	}
	res, err := resdto.FromTemplateList(items)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Get notification template
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 404 {object} map[string]string
// @Router /notification-templates/{id} [get]
func (h *NotificationHandler) GetTemplate(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetTemplate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load template")
		return
	}
	res, err := resdto.FromTemplateView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Create notification template
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTemplateRequest true "Template"
// @Success 201 {object} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Router /notification-templates [post]
func (h *NotificationHandler) CreateTemplate(c *gin.Context) {
	var req reqdto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.cmds.CreateTemplate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Create template failed")
		return
	}
	view, err := h.q.GetTemplate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load template")
		return
	}
	res, err := resdto.FromTemplateView(view)
	respondJSON(c, http.StatusCreated, res, err)
}

// @Summary Update notification template
// @Description Partial update; omitted fields keep their value
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Param request body reqdto.UpdateTemplateRequest true "Template changes"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notification-templates/{id} [put]
func (h *NotificationHandler) UpdateTemplate(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.cmds.UpdateTemplate(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "Update template failed")
		return
	}
	view, err := h.q.GetTemplate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load template")
		return
	}
	res, err := resdto.FromTemplateView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Delete notification template
// @Tags notifications
// @Security BearerAuth
// @Param id path int true "Template ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /notification-templates/{id} [delete]
func (h *NotificationHandler) DeleteTemplate(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeleteTemplate(c.Request.Context(), id); err != nil {
		respondError(c, err, "Delete template failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List notification logs
// @Description Audit trail of every delivery attempt, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param booking_id query string false "Booking ID"
// @Param channel query string false "email or whatsapp"
// @Param status query string false "success or failed"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /notification-logs [get]
func (h *NotificationHandler) ListLogs(c *gin.Context) {
	filter := queries.NotificationLogFilter{
		Channel: c.Query("channel"),
		Status:  c.Query("status"),
	}
	if v := c.Query("booking_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", map[string]string{"booking_id": "must be a uuid"})
			return
		}
		filter.BookingID = &id
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListLogs(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		respondError(c, err, "Failed to list notification logs")
		return
	}
	res, err := resdto.FromNotificationLogList(items)
	respondJSON(c, http.StatusOK, page(res, next), err)
}
