package adminauth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ruangpeduli/donation-backend/utils"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	session, err := h.svc.Login(c.Request.Context(), req.Password)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, gin.H{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	})
}
