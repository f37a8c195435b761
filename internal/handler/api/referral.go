package api

import (
	"net/http"
	"strings"

	reqdto "cargo-consolidation/internal/handler/dto/request"
	resdto "cargo-consolidation/internal/handler/dto/response"
	"cargo-consolidation/internal/usecase/commands"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	cmds commands.ReferralCommands
	q    queries.ReferralQueries
}

func NewReferralHandler(cmds commands.ReferralCommands, q queries.ReferralQueries) *ReferralHandler {
	return &ReferralHandler{cmds: cmds, q: q}
}

// @Summary Create referral
// @Description Issue a referral code and shareable link for an email address
// @Tags referrals
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReferralRequest true "Create referral request"
// @Success 201 {object} resdto.ReferralResponse
// @Failure 400 {object} map[string]string
// @Router /referrals [post]
func (h *ReferralHandler) Create(c *gin.Context) {
	var req reqdto.CreateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	result, err := h.cmds.CreateReferral(c.Request.Context(), commands.CreateReferralRequest{
		Email:      req.Email,
		ReferrerID: req.ReferrerID,
	})
	if err != nil {
		respondError(c, err, "Create referral failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ID)
	if err != nil {
		respondError(c, err, "Failed to load referral")
		return
	}
	res, err := resdto.FromReferralView(view)
	respondJSON(c, http.StatusCreated, res, err)
}

// @Summary Track referral click
// @Description Count a visit through a referral link
// @Tags referrals
// @Param id path string true "Referral code"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /referrals/{id}/clicks [post]
func (h *ReferralHandler) TrackClick(c *gin.Context) {
	// Shares the :id segment with the staff routes; here it carries the code.
	code := strings.ToUpper(strings.TrimSpace(c.Param("id")))
	if err := h.cmds.TrackClick(c.Request.Context(), code); err != nil {
		respondError(c, err, "Track click failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get referral
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral ID"
// @Success 200 {object} resdto.ReferralResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /referrals/{id} [get]
func (h *ReferralHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load referral")
		return
	}
	res, err := resdto.FromReferralView(view)
	respondJSON(c, http.StatusOK, res, err)
}

// @Summary List referrals
// @Tags referrals
// @Produce json
// @Security BearerAuth
// @Param reward_status query string false "Reward status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /referrals [get]
func (h *ReferralHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.q.List(c.Request.Context(), c.Query("reward_status"), cursor, limit)
	if err != nil {
		respondError(c, err, "Failed to list referrals")
		return
	}
	res, err := resdto.FromReferralList(items)
	respondJSON(c, http.StatusOK, page(res, next), err)
}

// @Summary Update reward status
// @Description Move a referral reward through pending, approved, paid or rejected
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Referral ID"
// @Param request body reqdto.UpdateRewardStatusRequest true "New reward status"
// @Success 200 {object} resdto.ReferralResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /referrals/{id}/reward [patch]
func (h *ReferralHandler) UpdateReward(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateRewardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.cmds.ChangeRewardStatus(c.Request.Context(), id, req.RewardStatus); err != nil {
		respondError(c, err, "Update reward status failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load referral")
		return
	}
	res, err := resdto.FromReferralView(view)
	respondJSON(c, http.StatusOK, res, err)
}
