// Package usecase はstudyplanフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"ai_tutor_backend/internal/feature/studyplan/domain/entity"
)

// planPromptTemplate は学習計画生成プロンプトのテンプレートです。
const planPromptTemplate = "Create a study plan for %s covering chapters: %s within %s. " +
	"Previous marks: %s%%. Study time available: %s."

// TextGenerator は役割付きメッセージからの文章生成を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TextGenerator interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
}

// studyPlanUsecase は学習計画の生成ロジックを提供します。
type studyPlanUsecase struct {
	ai TextGenerator
}

// NewStudyPlanUsecase はstudyPlanUsecaseの新しいインスタンスを生成します。
func NewStudyPlanUsecase(ai TextGenerator) *studyPlanUsecase {
	return &studyPlanUsecase{ai: ai}
}

// Plan は学習状況からプロンプトを組み立て、学習計画テキストを生成します。
func (u *studyPlanUsecase) Plan(ctx context.Context, req entity.PlanRequest) (string, error) {
	if req.Subject == "" {
		return "", fmt.Errorf("subject is required")
	}

	prompt := fmt.Sprintf(planPromptTemplate,
		req.Subject, req.Chapters, req.Deadline, req.Marks, req.StudyHours)
	text, err := u.ai.GenerateText(ctx, "", prompt)
	if err != nil {
		return "", fmt.Errorf("study plan generation failed: %w", err)
	}
	return text, nil
}
