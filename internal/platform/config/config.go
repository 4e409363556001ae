// Package config は環境変数から設定を読み込み、アプリケーション全体で使用する設定を提供します。
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーションの設定を保持する構造体です。
type Config struct {
	// サーバー設定
	Port    string // APIサーバーのポート番号
	GinMode string // Ginの実行モード (debug, release, test)

	// データベース設定
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// trueの場合、起動時にスキーママイグレーションを実行します
	RunMigrations bool

	// Redis設定
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// レートリミット設定
	RateLimitMax    int           // ウィンドウあたりのリクエスト上限
	RateLimitWindow time.Duration // ウィンドウ幅
}

// Load は.envファイル（存在する場合）と環境変数から設定を読み込みます。
func Load() *Config {
	// .envはローカル開発用。無ければ環境変数のみを使う。
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables only")
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_NAME", "auth_backend"),

		RunMigrations: getEnv("RUN_MIGRATIONS", "false") == "true",

		RedisHost:     getEnv("REDIS_HOST", "127.0.0.1"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 15)) * time.Minute,
	}
}

// getEnv は環境変数を取得し、未設定の場合はフォールバック値を返します。
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// getEnvInt は整数の環境変数を取得します。未設定・不正値はフォールバック値になります。
func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer environment variable", "key", key, "value", value)
		return fallback
	}
	return n
}
