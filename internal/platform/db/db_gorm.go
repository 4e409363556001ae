// Package db はGORMによるデータベース接続の初期化を提供します。
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"auth_backend/internal/feature/users/domain/entity"
	"auth_backend/internal/platform/config"
)

// BuildDSN は設定からMySQLのDSN文字列を組み立てます。
func BuildDSN(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
}

// OpenDB は設定からDSNを組み立ててMySQLに接続します。
// 起動直後のDB未準備に備えて60秒までリトライします。
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := BuildDSN(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, Counter）
		if err := db.AutoMigrate(
			&entity.User{},
			&entity.Counter{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
