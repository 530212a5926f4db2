// Package redis はクイズキャッシュ用のRedisクライアントを提供します。
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"ai_tutor_backend/internal/app/config"
)

// NewClient は設定に従ってRedisへ接続し、疎通確認まで行います。
// Redisはキャッシュ用途のため、接続失敗時は呼び出し側で縮退運転に切り替えます。
func NewClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.RedisAddr(), "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.RedisAddr())
	return rdb, nil
}
