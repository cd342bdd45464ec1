package middleware

import (
	"net/http"
	"sync/atomic"

	apperrors "homevest-listings/internal/errors"
	"homevest-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

// FaultInjector answers the first N requests it sees with 503 so clients can
// exercise their retry path against the sandbox.
type FaultInjector struct {
	remaining atomic.Int64
}

func NewFaultInjector(failFirst int) *FaultInjector {
	f := &FaultInjector{}
	f.remaining.Store(int64(failFirst))
	return f
}

// Remaining reports how many requests will still be rejected.
func (f *FaultInjector) Remaining() int64 {
	if n := f.remaining.Load(); n > 0 {
		return n
	}
	return 0
}

func (f *FaultInjector) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if f.remaining.Add(-1) < 0 {
			c.Next()
			return
		}
		logger.GlobalLogger.Printf("Injecting 503: path=%s, remaining=%d", c.Request.URL.Path, f.Remaining())
		c.Header("Retry-After", "1")
		_ = c.Error(apperrors.NewAppError(apperrors.ErrServiceUnavailable, "injected fault", apperrors.MsgServiceUnavailable, apperrors.ErrCodeServiceUnavailable, http.StatusServiceUnavailable, nil))
		c.Abort()
	}
}
