package middleware

import (
	"net/http"
	"strings"

	"homevest-listings/internal/auth"
	apperrors "homevest-listings/internal/errors"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID   = "user_id"
	ContextFullName = "full_name"
	ContextEmail    = "email"
)

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "authorization header required", nil)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "invalid authorization header format", nil)
			return
		}

		claims, err := auth.ValidateJWT(parts[1], secret)
		if err != nil {
			unauthorized(c, err.Error(), err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextFullName, claims.FullName)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

func unauthorized(c *gin.Context, reason string, err error) {
	_ = c.Error(apperrors.NewAppError(apperrors.ErrAuthRequired, reason, apperrors.MsgAuthRequired, apperrors.ErrCodeAuthRequired, http.StatusUnauthorized, err))
	c.Abort()
}
