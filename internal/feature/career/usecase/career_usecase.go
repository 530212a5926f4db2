// Package usecase はcareerフィーチャーのビジネスロジックを実装します。
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

// careerUsecase は進路相談のクエリをモデルに中継します。
type careerUsecase struct {
	ai TextGenerator
}

// NewCareerUsecase はcareerUsecaseの新しいインスタンスを生成します。
func NewCareerUsecase(ai TextGenerator) *careerUsecase {
	return &careerUsecase{ai: ai}
}

// Advise はクエリをそのままモデルに渡し、進路アドバイスを返します。
func (u *careerUsecase) Advise(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", fmt.Errorf("query is required")
	}

	text, err := u.ai.GenerateText(ctx, "", query)
	if err != nil {
		return "", fmt.Errorf("career advice failed: %w", err)
	}
	return text, nil
}
