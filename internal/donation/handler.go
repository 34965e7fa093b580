package donation

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ruangpeduli/donation-backend/internal/payment"
	"github.com/ruangpeduli/donation-backend/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/donations.
func (h *Handler) Create(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resp, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		utils.DomainError(c, err)
		return
	}

	utils.JSON(c, http.StatusCreated, gin.H{
		"donation_id": resp.DonationID,
		"order_id":    resp.OrderID,
		"payment_url": resp.PaymentURL,
	})
}

// Feed handles GET /api/donations, the redacted public feed.
func (h *Handler) Feed(c *gin.Context) {
	page, limit := utils.ParsePageLimit(c)

	feed, total, err := h.svc.PublicFeed(c.Request.Context(), page, limit)
	if err != nil {
		utils.DomainError(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, gin.H{
		"data":       feed,
		"pagination": utils.BuildPageInfo(total, page, limit),
	})
}

// Notification handles POST /api/midtrans/notification. The endpoint
// is acknowledged unconditionally: a non-200 here would make the
// gateway retry-storm us, and a failed transition is recoverable from
// logs while a retry storm is not.
func (h *Handler) Notification(c *gin.Context) {
	var n payment.Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		log.Printf("unreadable midtrans notification: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	if err := h.svc.HandleNotification(c.Request.Context(), n); err != nil {
		log.Printf("midtrans notification processing failed: order_id=%s err=%v", n.OrderID, err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AdminList handles GET /api/admin/donations.
func (h *Handler) AdminList(c *gin.Context) {
	filters := h.parseFilters(c)

	donations, total, err := h.svc.AdminList(c.Request.Context(), filters)
	if err != nil {
		utils.DomainError(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, gin.H{
		"data":       donations,
		"pagination": utils.BuildPageInfo(total, filters.Page, filters.Limit),
	})
}

// Export handles GET /api/admin/donations/export?format=csv|xlsx|pdf.
func (h *Handler) Export(c *gin.Context) {
	filters := h.parseFilters(c)
	format := c.DefaultQuery("format", "csv")

	data, filename, contentType, err := h.svc.Export(c.Request.Context(), filters, format)
	if err != nil {
		utils.DomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

func (h *Handler) parseFilters(c *gin.Context) AdminFilters {
	page, limit := utils.ParsePageLimit(c)
	filters := AdminFilters{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filters.From = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.Add(24*time.Hour - time.Second)
			filters.To = &end
		}
	}
	return filters
}
