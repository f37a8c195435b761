package api

import (
	"net/http"

	reqdto "cargo-consolidation/internal/handler/dto/request"
	resdto "cargo-consolidation/internal/handler/dto/response"
	"cargo-consolidation/internal/handler/httperr"
	"cargo-consolidation/internal/handler/middleware"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AgentHandler struct {
	cmds commands.AgentCommands
	q    queries.AgentQueries
}

func NewAgentHandler(cmds commands.AgentCommands, q queries.AgentQueries) *AgentHandler {
	return &AgentHandler{cmds: cmds, q: q}
}

// @Summary Apply as agent
// @Description Submit an agent application; it starts pending review
// @Tags agents
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAgentApplicationRequest true "Agent application"
// @Success 201 {object} resdto.AgentApplicationResponse
// @Failure 400 {object} map[string]string
// @Router /agents [post]
func (h *AgentHandler) Apply(c *gin.Context) {
	var req reqdto.CreateAgentApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	id, err := h.cmds.Apply(c.Request.Context(), commands.ApplyAgentRequest{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Company:    req.Company,
		Experience: req.Experience,
	})
	if err != nil {
		respondError(c, err, "Application failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load application")
		return
	}
	res, err := resdto.FromAgentApplicationView(view)
	respondJSON(c, http.StatusCreated, res, err)
}

// @Summary Get agent application
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} resdto.AgentApplicationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /agents/{id} [get]
func (h *AgentHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load application")
		return
	}
	res, err := resdto.FromAgentApplicationView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary List agent applications
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Param status query string false "Application status"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /agents [get]
func (h *AgentHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.q.List(c.Request.Context(), c.Query("status"), cursor, limit)
	if err != nil {
		respondError(c, err, "Failed to list applications")
		return
	}
	res, err := resdto.FromAgentApplicationList(items)
	respondJSON(c, http.StatusOK, page(res, next), err)
}

// @Summary Review agent application
// @Description Move an application to under_review, approved or rejected
// @Tags agents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body reqdto.ReviewAgentApplicationRequest true "Review decision"
// @Success 200 {object} resdto.AgentApplicationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /agents/{id}/review [patch]
func (h *AgentHandler) Review(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusForbidden, nil, "Forbidden", nil)
		return
	}
	var req reqdto.ReviewAgentApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	err := h.cmds.Review(c.Request.Context(), id, commands.ReviewApplicationRequest{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	}, reviewerID)
	if err != nil {
		respondError(c, err, "Review failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load application")
		return
	}
	res, err := resdto.FromAgentApplicationView(view)
	respondJSON(c, http.StatusOK, res, err)
}
