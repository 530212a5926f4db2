package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.TokenExpiration != time.Hour {
		t.Errorf("expected default token expiration 1h, got %v", cfg.TokenExpiration)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("unexpected default model: %s", cfg.GeminiModel)
	}
	if cfg.RunMigrations {
		t.Error("migrations should be disabled by default")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	// 必須のJWT_SECRETが空の場合はエラーになる
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when JWT_SECRET is empty")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("expected parse env prefix, got %v", err)
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "tutor",
		DBPassword: "pw",
		DBName:     "ai_tutor",
	}

	dsn := cfg.DSN()
	want := "host=db port=5432 user=tutor password=pw dbname=ai_tutor sslmode=disable"
	if dsn != want {
		t.Errorf("expected %q, got %q", want, dsn)
	}
}

func TestConfig_RedisAddr(t *testing.T) {
	cfg := &Config{RedisHost: "cache", RedisPort: "6379"}
	if cfg.RedisAddr() != "cache:6379" {
		t.Errorf("unexpected redis addr: %s", cfg.RedisAddr())
	}
}
