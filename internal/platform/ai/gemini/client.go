// Package gemini はGoogle Gemini APIを使用した文章生成クライアントを提供します。
// チャット・クイズ生成・学習計画・キャリア相談の各フィーチャーから共有されます。
package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"ai_tutor_backend/internal/app/config"
	platformhttp "ai_tutor_backend/internal/platform/http"
	"ai_tutor_backend/internal/shared/ratelimiter"
)

const (
	// requestTimeout はGemini API呼び出し全体のタイムアウトです。
	// 長文の生成があるため通常のAPIより長めに設定します。
	requestTimeout = 60 * time.Second

	// callsPerMinute は1分あたりの上限呼び出し回数です（無料枠クォータ対策）。
	callsPerMinute = 15
)

// Client はGemini APIで役割付きメッセージから補完テキストを生成します。
type Client struct {
	client  *genai.Client
	model   string
	limiter ratelimiter.RateLimiterInterface
}

// NewClient はClientの新しいインスタンスを生成します。
// APIキーが空の場合はADC（Application Default Credentials）にフォールバックします。
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: platformhttp.NewHTTPClient(requestTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{
		client:  client,
		model:   cfg.GeminiModel,
		limiter: ratelimiter.NewRateLimiter(callsPerMinute, time.Minute),
	}, nil
}

// GenerateText はシステム指示とユーザーメッセージの組から補完テキストを生成します。
// systemが空の場合はユーザーメッセージのみを送信します。
func (c *Client) GenerateText(ctx context.Context, system, user string) (string, error) {
	c.limiter.WaitIfNeeded()

	var genCfg *genai.GenerateContentConfig
	if system != "" {
		genCfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(user), genCfg)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
