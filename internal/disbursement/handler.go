package disbursement

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ruangpeduli/donation-backend/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Feed serves the public disbursement timeline.
func (h *Handler) Feed(c *gin.Context) {
	page, limit := utils.ParsePageLimit(c)
	trees, total, err := h.svc.PublicFeed(c.Request.Context(), page, limit)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	if trees == nil {
		trees = []DisbursementTree{}
	}
	utils.JSON(c, http.StatusOK, gin.H{
		"data":       trees,
		"pagination": utils.BuildPageInfo(total, page, limit),
	})
}

// AdminList reuses the public tree shape; admins see the same rows.
func (h *Handler) AdminList(c *gin.Context) {
	h.Feed(c)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDisbursementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	d, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, gin.H{"data": d})
}

func (h *Handler) Activities(c *gin.Context) {
	id, ok := h.disbursementID(c)
	if !ok {
		return
	}
	trees, err := h.svc.ListActivities(c.Request.Context(), id)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	if trees == nil {
		trees = []ActivityTree{}
	}
	utils.JSON(c, http.StatusOK, gin.H{"data": trees})
}

func (h *Handler) CreateActivity(c *gin.Context) {
	id, ok := h.disbursementID(c)
	if !ok {
		return
	}
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	tree, err := h.svc.CreateActivity(c.Request.Context(), id, req)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, gin.H{"data": tree})
}

func (h *Handler) disbursementID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.Error(c, http.StatusBadRequest, "validation_error", "invalid disbursement id", nil)
		return 0, false
	}
	return uint(id), true
}
