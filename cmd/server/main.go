package main

import (
	"log"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"auth_backend/internal/app/router"
	usersadapters "auth_backend/internal/feature/users/adapters"
	usershandler "auth_backend/internal/feature/users/transport/handler"
	usersusecase "auth_backend/internal/feature/users/usecase"
	"auth_backend/internal/platform/config"
	infradb "auth_backend/internal/platform/db"
	infraredis "auth_backend/internal/platform/redis"
	"auth_backend/internal/shared/ratelimiter"
)

func main() {
	// 設定
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// db
	db := infradb.OpenDB(cfg)

	// Redis（利用不可の場合はレートリミットなしで起動する）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without rate limiting.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := usersadapters.NewUserMySQL(db)
	counterRepo := usersadapters.NewCounterMySQL(db)

	// Usecase
	userUC := usersusecase.NewUserUsecase(userRepo, counterRepo)

	// Handler
	authH := usershandler.NewAuthHandler(userUC)
	userH := usershandler.NewUserHandler(userUC)

	// レートリミッター（100リクエスト/15分、クライアントIPごと）
	limiter := ratelimiter.NewRateLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)

	// ルータ生成
	r := router.NewRouter(authH, userH, limiter)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
