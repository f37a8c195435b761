package api

import (
	"net/http"

	reqdto "cargo-consolidation/internal/handler/dto/request"
	resdto "cargo-consolidation/internal/handler/dto/response"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BoxHandler struct {
	cmds commands.BoxCommands
	q    queries.BoxQueries
}

func NewBoxHandler(cmds commands.BoxCommands, q queries.BoxQueries) *BoxHandler {
	return &BoxHandler{cmds: cmds, q: q}
}

// @Summary List box types
// @Description List every box type with its volume and prices
// @Tags boxes
// @Produce json
// @Success 200 {array} resdto.BoxTypeResponse
// @Failure 500 {object} map[string]string
// @Router /boxes [get]
func (h *BoxHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list box types")
		return
	}
	res, err := resdto.FromBoxTypeList(items)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Get box type
// @Tags boxes
// @Produce json
// @Param id path int true "Box type ID"
// @Success 200 {object} resdto.BoxTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /boxes/{id} [get]
func (h *BoxHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load box type")
		return
	}
	res, err := resdto.FromBoxTypeView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary Create box type
// @Description Add a box type to the catalogue (staff only)
// @Tags boxes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBoxTypeRequest true "Box type"
// @Success 201 {object} resdto.BoxTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /boxes [post]
func (h *BoxHandler) Create(c *gin.Context) {
	var req reqdto.CreateBoxTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.cmds.CreateBoxType(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Create box type failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load box type")
		return
	}
	res, err := resdto.FromBoxTypeView(view)
	respondJSON(c, http.StatusCreated, res, err)
}
