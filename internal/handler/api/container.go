package api

import (
	"net/http"
	"strconv"

	resdto "cargo-consolidation/internal/handler/dto/response"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ContainerHandler struct {
	q queries.CapacityQueries
}

func NewContainerHandler(q queries.CapacityQueries) *ContainerHandler {
	return &ContainerHandler{q: q}
}

// @Summary Container progress
// @Description Total booked volume against container capacity
// @Tags container
// @Produce json
// @Success 200 {object} resdto.ProgressResponse
// @Failure 500 {object} map[string]string
// @Router /container/progress [get]
func (h *ContainerHandler) Progress(c *gin.Context) {
	view, err := h.q.Progress(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute progress")
		return
	}
	res, err := resdto.FromProgressView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Capacity history
// @Description Recent capacity snapshots recorded by milestone checks, newest first
// @Tags container
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.CapacitySnapshotResponse
// @Failure 500 {object} map[string]string
// @Router /container/capacity/history [get]
func (h *ContainerHandler) History(c *gin.Context) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	items, err := h.q.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to load capacity history")
		return
	}
	res, err := resdto.FromCapacityHistory(items)
	respondJSON(c, http.StatusOK, res, err)
}
