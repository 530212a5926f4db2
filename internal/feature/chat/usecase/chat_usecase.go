// Package usecase はchatフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
)

// TextGenerator は役割付きメッセージからの文章生成を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TextGenerator interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
}

// chatUsecase は学習者のメッセージをモデルに中継します。
type chatUsecase struct {
	ai TextGenerator
}

// NewChatUsecase はchatUsecaseの新しいインスタンスを生成します。
func NewChatUsecase(ai TextGenerator) *chatUsecase {
	return &chatUsecase{ai: ai}
}

// Reply はメッセージをそのままモデルに渡し、応答テキストを返します。
func (u *chatUsecase) Reply(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("message is required")
	}

	text, err := u.ai.GenerateText(ctx, "", message)
	if err != nil {
		return "", fmt.Errorf("chat reply failed: %w", err)
	}
	return text, nil
}
