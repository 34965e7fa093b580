package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ruangpeduli/donation-backend/internal/domain"
)

// RequestIDKey is the gin context key the request-id middleware sets.
const RequestIDKey = "request_id"

// GetRequestID extracts the request id from gin context when available.
func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if v, ok := c.Get(RequestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// JSON writes an object body with the request id injected. Array
// bodies never pass through here; handlers wrap lists in an envelope
// so client-side array handling is preserved.
func JSON(c *gin.Context, status int, payload gin.H) {
	if rid := GetRequestID(c); rid != "" {
		payload[RequestIDKey] = rid
	}
	c.JSON(status, payload)
}

// Error writes the standard error envelope:
// {error: <code>, message, details?, request_id?}.
func Error(c *gin.Context, status int, code, message string, details any) {
	payload := gin.H{
		"error":   code,
		"message": message,
	}
	if details != nil {
		payload["details"] = details
	}
	if rid := GetRequestID(c); rid != "" {
		payload[RequestIDKey] = rid
	}
	c.JSON(status, payload)
}

// DomainError logs the error with request context and maps it onto
// the envelope. Internal details stay out of the response.
func DomainError(c *gin.Context, err error) {
	log.Printf("[ERROR] request_id=%s path=%s err=%v", GetRequestID(c), c.Request.URL.Path, err)

	switch {
	case domain.IsValidation(err):
		var v domain.ValidationError
		errors.As(err, &v)
		Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"field": v.Field})
	case domain.IsUnauthorized(err):
		Error(c, http.StatusUnauthorized, "unauthorized", "unauthorized", nil)
	case domain.IsNotFound(err):
		Error(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsGateway(err):
		Error(c, http.StatusBadGateway, "gateway_error", err.Error(), nil)
	default:
		Error(c, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}
