// Package db はGORMによるPostgres接続の確立とマイグレーションを提供します。
package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ai_tutor_backend/internal/app/config"
	"ai_tutor_backend/internal/feature/auth/domain/entity"
)

const (
	// connectTimeout は起動時のDB接続リトライの上限時間です。
	connectTimeout = 60 * time.Second
	// retryInterval は接続リトライの間隔です。
	retryInterval = 3 * time.Second
)

// Opener はDSNからgorm.DBを開く関数型です。テストで差し替え可能にします。
type Opener func(dsn string) (*gorm.DB, error)

// DefaultOpener はPostgresドライバで接続するデフォルトのOpenerです。
func DefaultOpener(dsn string) (*gorm.DB, error) {
	return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
}

// ConnectWithRetry は接続に成功するまでリトライし、timeout超過でエラーを返します。
// 起動直後にDBコンテナがまだ受け付けていないケースを吸収します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

// Open は設定に従ってPostgresへ接続し、必要ならマイグレーションを実行します。
// 接続不能は起動時の致命的エラーとして扱います。
func Open(cfg *config.Config) *gorm.DB {
	db, err := ConnectWithRetry(cfg.DSN(), connectTimeout, DefaultOpener)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.RunMigrations {
		// ユーザーテーブルのマイグレーション（emailユニーク制約を含む）
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
