// Package ratelimiter はクライアントIPごとのリクエスト頻度制限を提供します。
package ratelimiter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"auth_backend/internal/shared/response"
	"auth_backend/internal/shared/status"
)

// RateLimiter はRedisの固定ウィンドウカウンターでリクエスト頻度を制限します。
type RateLimiter struct {
	client *redis.Client
	limit  int           // ウィンドウあたりの上限
	window time.Duration // どの単位でリセットするか
	prefix string
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// clientがnilの場合、ミドルウェアは何もせず通します（Redis無しでも起動できる）。
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "ratelimit",
	}
}

// key はクライアントIPに対応するRedisキーを返します。
func (rl *RateLimiter) key(ip string) string {
	return fmt.Sprintf("%s:%s", rl.prefix, ip)
}

// Middleware はレートリミットを適用するginミドルウェアを返します。
// INCRとEXPIREによる固定ウィンドウ方式で、上限超過時は429のエラーエンベロープを返します。
// Redisが利用できない場合はフェイルオープンで通します。
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := rl.key(c.ClientIP())

		count, err := rl.client.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			// ウィンドウの起点。最初のヒットでTTLを張る
			rl.client.Expire(ctx, key, rl.window)
		}

		if count > int64(rl.limit) {
			slog.Warn("rate limit exceeded", "remote_addr", c.ClientIP(), "count", count)
			_ = c.Error(response.NewApiError(status.RateLimitExceeded, "Too many requests, please try again later."))
			c.Abort()
			return
		}

		c.Next()
	}
}
