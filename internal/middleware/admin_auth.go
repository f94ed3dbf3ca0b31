package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "finpro/internal/errors"
)

// AdminAuthMiddleware creates a Gin middleware that validates the X-API-Key
// header against the configured admin API key. An empty configured key
// disables the admin surface entirely.
func AdminAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.AbortWithStatusJSON(apperrors.ErrAdminNotConfigured.StatusCode,
				gin.H{"error": gin.H{"code": apperrors.ErrAdminNotConfigured.Code, "message": apperrors.ErrAdminNotConfigured.Message}})
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(apperrors.ErrInvalidAPIKey.StatusCode,
				gin.H{"error": gin.H{"code": apperrors.ErrInvalidAPIKey.Code, "message": apperrors.ErrInvalidAPIKey.Message}})
			return
		}
		c.Next()
	}
}
