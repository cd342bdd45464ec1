package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "homevest-listings/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.POST("/", append(handlers, func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			_ = c.Error(PayloadTooLarge(c.Request.ContentLength, 0))
			return
		}
		c.Status(http.StatusCreated)
	})...)
	return r
}

func serve(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestFaultInjector(t *testing.T) {
	faults := NewFaultInjector(2)
	r := newRouter(faults.Middleware())

	for i := 0; i < 2; i++ {
		w := serve(r, "x")
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, apperrors.MsgServiceUnavailable, decode(t, w)["message"])
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
	}
	assert.Zero(t, faults.Remaining())

	assert.Equal(t, http.StatusCreated, serve(r, "x").Code)
	assert.Equal(t, http.StatusCreated, serve(r, "x").Code)
	assert.Zero(t, faults.Remaining())
}

func TestBodyLimit(t *testing.T) {
	r := newRouter(BodyLimit(8))

	assert.Equal(t, http.StatusCreated, serve(r, "12345678").Code)

	w := serve(r, "123456789")
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	payload := decode(t, w)
	assert.Equal(t, apperrors.MsgPayloadTooLarge, payload["message"])
	assert.Equal(t, apperrors.ErrCodePayloadTooLarge, payload["code"])
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newRouter(RateLimitMiddleware(NewPerMinuteLimiter(2)))

	assert.Equal(t, http.StatusCreated, serve(r, "").Code)
	assert.Equal(t, http.StatusCreated, serve(r, "").Code)

	w := serve(r, "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, apperrors.ErrCodeRateLimited, decode(t, w)["code"])
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newRouter(AuthMiddleware("secret"))

	w := serve(r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apperrors.MsgAuthRequired, decode(t, w)["message"])
}
