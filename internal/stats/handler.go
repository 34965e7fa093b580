package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ruangpeduli/donation-backend/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, gin.H{
		"total_raised":    summary.TotalRaised,
		"total_disbursed": summary.TotalDisbursed,
		"donor_count":     summary.DonorCount,
	})
}
