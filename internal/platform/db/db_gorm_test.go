package db

import (
	"testing"

	"auth_backend/internal/platform/config"
)

// TestBuildDSN はTCP接続用のDSN文字列が正しく生成されることを検証します。
func TestBuildDSN(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		DBUser:     "testuser",
		DBPassword: "testpass",
		DBName:     "testdb",
		DBHost:     "localhost",
		DBPort:     "3306",
	}

	dsn := BuildDSN(cfg)

	expected := "testuser:testpass@tcp(localhost:3306)/testdb?charset=utf8mb4&parseTime=true&loc=Local"
	if dsn != expected {
		t.Errorf("expected DSN %q, got %q", expected, dsn)
	}
}
