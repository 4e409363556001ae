// Package router はHTTPルーティングとミドルウェアの配線を提供します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	usershandler "auth_backend/internal/feature/users/transport/handler"
	"auth_backend/internal/platform/http/handler"
	"auth_backend/internal/platform/http/middleware"
	"auth_backend/internal/shared/ratelimiter"
	"auth_backend/internal/shared/response"
	"auth_backend/internal/shared/status"
)

// NewRouter はすべてのルートとミドルウェアを配線したginエンジンを返します。
func NewRouter(authHandler *usershandler.AuthHandler, userHandler *usershandler.UserHandler,
	limiter *ratelimiter.RateLimiter) *gin.Engine {
	r := gin.Default()

	// 失敗の唯一の出口。以降のハンドラーはc.ErrorにApiErrorを積む
	r.Use(middleware.ErrorHandler())
	r.Use(cors.Default())
	r.Use(limiter.Middleware())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 稼働確認ルート
	r.GET("/", func(c *gin.Context) {
		response.Handler(status.OK, "Server is working", gin.H{})(c)
	})

	// エラーエンベロープの動作確認ルート
	r.GET("/error", func(c *gin.Context) {
		_ = c.Error(response.NewApiError(status.RateLimitExceeded, "Too many requests"))
		c.Abort()
	})

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
		}

		users := v1.Group("/users")
		{
			users.GET("", userHandler.List)
			users.GET("/:id", userHandler.GetByID)
		}
	}

	return r
}
