package api

import (
	"net/http"

	reqdto "cargo-consolidation/internal/handler/dto/request"
	resdto "cargo-consolidation/internal/handler/dto/response"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the container management operations that also run
// on a schedule and from cargoctl.
type AdminHandler struct {
	container commands.ContainerCommands
	schedules commands.ScheduleCommands
	batches   queries.BatchQueries
	tasks     queries.ScheduleQueries
}

func NewAdminHandler(
	container commands.ContainerCommands,
	schedules commands.ScheduleCommands,
	batches queries.BatchQueries,
	tasks queries.ScheduleQueries,
) *AdminHandler {
	return &AdminHandler{container: container, schedules: schedules, batches: batches, tasks: tasks}
}

// @Summary Check dispatch readiness
// @Description Notify admins and mark the open batch ready when the container is full
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DispatchReportResponse
// @Failure 403 {object} map[string]string
// @Router /admin/check-dispatch [get]
func (h *AdminHandler) CheckDispatch(c *gin.Context) {
	report, err := h.container.CheckDispatch(c.Request.Context())
	if err != nil {
		respondError(c, err, "Dispatch check failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDispatchReport(report))
}

// @Summary Check capacity milestones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MilestoneReportResponse
// @Failure 403 {object} map[string]string
// @Router /admin/check-milestones [post]
func (h *AdminHandler) CheckMilestones(c *gin.Context) {
	report, err := h.container.CheckMilestones(c.Request.Context())
	if err != nil {
		respondError(c, err, "Milestone check failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromMilestoneReport(report))
}

// @Summary Mark full batches ready
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BatchReadinessResponse
// @Failure 403 {object} map[string]string
// @Router /admin/mark-ready-batches [post]
func (h *AdminHandler) MarkReadyBatches(c *gin.Context) {
	lines, err := h.container.MarkReadyBatches(c.Request.Context())
	if err != nil {
		respondError(c, err, "Mark ready batches failed")
		return
	}
	res, err := resdto.FromBatchReadiness(lines)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Dispatch batch
// @Description Mark a ready batch as dispatched
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} resdto.BatchResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/batches/{id}/dispatch [post]
func (h *AdminHandler) DispatchBatch(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.container.DispatchBatch(c.Request.Context(), id); err != nil {
		respondError(c, err, "Dispatch batch failed")
		return
	}
	view, err := h.batches.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load batch")
		return
	}
	res, err := resdto.FromBatchView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary List container batches
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "open, ready or dispatched"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Router /admin/batches [get]
func (h *AdminHandler) ListBatches(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.batches.List(c.Request.Context(), c.Query("status"), cursor, limit)
	if err != nil {
		respondError(c, err, "Failed to list batches")
		return
	}
	res, err := resdto.FromBatchList(items)
	respondJSON(c, http.StatusOK, page(res, next), err)
}

// @Summary List periodic tasks
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ScheduleResponse
// @Router /admin/schedules [get]
func (h *AdminHandler) ListSchedules(c *gin.Context) {
	items, err := h.tasks.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list schedules")
		return
	}
	res, err := resdto.FromScheduleList(items)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Update periodic task
// @Description Change a task's cron schedule or enable/disable it
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Task name"
// @Param request body reqdto.UpdateScheduleRequest true "Schedule changes"
// @Success 200 {array} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/schedules/{name} [patch]
func (h *AdminHandler) UpdateSchedule(c *gin.Context) {
	var req reqdto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.schedules.UpdateSchedule(c.Request.Context(), c.Param("name"), req); err != nil {
		respondError(c, err, "Update schedule failed")
		return
	}
	h.ListSchedules(c)
}
