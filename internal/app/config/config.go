// Package config はプロセス全体の設定を環境変数から読み込みます。
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config はサーバー起動時に一度だけ構築される設定オブジェクトです。
// グローバル変数は使わず、明示的に依存先へ注入します。
type Config struct {
	// Port はHTTPサーバーの待ち受けポートです。
	Port string `env:"PORT" envDefault:"8080"`

	// DBUser / DBPassword / DBName / DBHost / DBPort はPostgres接続情報です。
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`

	// RunMigrations が true の場合、起動時にAutoMigrateを実行します。
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`

	// RedisHost / RedisPort / RedisPassword はクイズキャッシュ用のRedis接続情報です。
	RedisHost     string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// JWTSecret はトークン署名用の共有シークレットです。必須。
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// TokenExpiration はアクセストークンの有効期間です。
	TokenExpiration time.Duration `env:"TOKEN_EXPIRATION" envDefault:"1h"`

	// GeminiModel は文章生成に使用するモデルIDです。
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// GeminiAPIKey はGemini APIの認証キーです。空の場合はADCを使用します。
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// QuizCacheTTL は生成済みクイズをキャッシュする期間です。
	QuizCacheTTL time.Duration `env:"QUIZ_CACHE_TTL" envDefault:"1h"`
}

// Load は環境変数からConfigを構築します。
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// DSN はPostgres接続文字列を組み立てます。
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// RedisAddr はRedisの接続アドレスを返します。
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}
