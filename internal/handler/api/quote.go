package api

import (
	"net/http"

	reqdto "cargo-consolidation/internal/handler/dto/request"
	resdto "cargo-consolidation/internal/handler/dto/response"
	"cargo-consolidation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q queries.QuoteQueries
}

func NewQuoteHandler(q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary Volume calculator
// @Description Price a mix of boxes with volume tier discounts
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.VolumeCalcRequest true "Boxes to price"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Router /volume-calc [post]
func (h *QuoteHandler) VolumeCalc(c *gin.Context) {
	var req reqdto.VolumeCalcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	items := make([]queries.QuoteItem, 0, len(req.Boxes))
	for _, b := range req.Boxes {
		items = append(items, queries.QuoteItem{BoxTypeID: b.TypeID, Quantity: b.Quantity})
	}
	view, err := h.q.Calculate(c.Request.Context(), items)
	if err != nil {
		respondError(c, err, "Volume calculation failed")
		return
	}
	res, err := resdto.FromQuoteView(view)
	respondJSON(c, http.StatusOK, res, err)
}
