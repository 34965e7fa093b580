package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ruangpeduli/donation-backend/utils"
)

// TokenValidator checks an admin session token. Implementations can
// be backed by stored opaque tokens or by signed tokens.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) error
}

// AdminAuth guards admin-only endpoints. Every rejection path yields
// the identical 401 envelope so a caller cannot distinguish missing,
// malformed, unknown and expired tokens.
func AdminAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			reject(c)
			return
		}

		if err := validator.ValidateToken(c.Request.Context(), parts[1]); err != nil {
			reject(c)
			return
		}

		c.Next()
	}
}

func reject(c *gin.Context) {
	payload := gin.H{
		"error":   "unauthorized",
		"message": "unauthorized",
	}
	if rid := utils.GetRequestID(c); rid != "" {
		payload[utils.RequestIDKey] = rid
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, payload)
}
