package ratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth_backend/internal/platform/http/middleware"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func get(r *gin.Engine) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("requests under the limit pass", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		r := newLimitedRouter(NewRateLimiter(client, 3, time.Minute))

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, get(r).Code)
		}
	})

	t.Run("requests over the limit get 429 envelope", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		r := newLimitedRouter(NewRateLimiter(client, 3, time.Minute))

		for i := 0; i < 3; i++ {
			require.Equal(t, http.StatusOK, get(r).Code)
		}

		w := get(r)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "RATE_LIMIT_EXCEEDED")
		assert.Contains(t, w.Body.String(), "Too many requests")
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		r := newLimitedRouter(NewRateLimiter(client, 1, time.Minute))

		require.Equal(t, http.StatusOK, get(r).Code)
		require.Equal(t, http.StatusTooManyRequests, get(r).Code)

		// ウィンドウ経過をTTLの進行で再現する
		mr.FastForward(time.Minute + time.Second)

		assert.Equal(t, http.StatusOK, get(r).Code)
	})

	t.Run("nil client fails open", func(t *testing.T) {
		r := newLimitedRouter(NewRateLimiter(nil, 1, time.Minute))

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, get(r).Code)
		}
	})

	t.Run("unreachable redis fails open", func(t *testing.T) {
		client, mr := setupTestRedis(t)
		mr.Close()
		r := newLimitedRouter(NewRateLimiter(client, 1, time.Minute))

		assert.Equal(t, http.StatusOK, get(r).Code)
	})
}
