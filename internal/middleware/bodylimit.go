package middleware

import (
	"fmt"
	"net/http"

	apperrors "homevest-listings/internal/errors"

	"github.com/gin-gonic/gin"
)

// BodyLimit rejects request bodies larger than maxBytes with 413. Bodies of
// unknown length are capped while they are read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			_ = c.Error(PayloadTooLarge(c.Request.ContentLength, maxBytes))
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func PayloadTooLarge(size, limit int64) *apperrors.AppError {
	return apperrors.NewAppError(apperrors.ErrPayloadTooLarge, fmt.Sprintf("request body of %d bytes exceeds limit of %d", size, limit), apperrors.MsgPayloadTooLarge, apperrors.ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge, nil)
}
