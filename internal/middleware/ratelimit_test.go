package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	router := gin.New()
	router.GET("/ping", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func ping(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterAllowsBurst(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Minute), 3)
	router := newLimitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := ping(router, "10.0.0.1:5000")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}

	w := ping(router, "10.0.0.1:5000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestRateLimiterKeyedByClient(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Minute), 1)
	router := newLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, ping(router, "10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusTooManyRequests, ping(router, "10.0.0.1:5000").Code)

	// A different client address has its own bucket.
	assert.Equal(t, http.StatusOK, ping(router, "10.0.0.2:5000").Code)
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter(rate.Every(10*time.Millisecond), 1)
	router := newLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, ping(router, "10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusTooManyRequests, ping(router, "10.0.0.1:5000").Code)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, http.StatusOK, ping(router, "10.0.0.1:5000").Code)
}
