// Package adapters はquizフィーチャーのQuizGenerator実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"ai_tutor_backend/internal/feature/quiz/domain/entity"
	"ai_tutor_backend/internal/feature/quiz/usecase"
)

// generationPromptTemplate はクイズ生成プロンプトのテンプレートです。
const generationPromptTemplate = "Generate a %s quiz on %s for grade %s with %d questions."

// geminiQuizGenerator は共有のGeminiクライアントでクイズ本文を生成します。
type geminiQuizGenerator struct {
	ai usecase.TextGenerator
}

// geminiQuizGeneratorがQuizGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.QuizGenerator = (*geminiQuizGenerator)(nil)

// NewGeminiQuizGenerator はgeminiQuizGeneratorの新しいインスタンスを生成します。
func NewGeminiQuizGenerator(ai usecase.TextGenerator) *geminiQuizGenerator {
	return &geminiQuizGenerator{ai: ai}
}

// Generate はクイズ生成プロンプトを組み立ててGeminiに送信します。
func (g *geminiQuizGenerator) Generate(ctx context.Context, spec entity.Spec) (string, error) {
	prompt := fmt.Sprintf(generationPromptTemplate, spec.Difficulty, spec.Topic, spec.Grade, spec.NumQuestions)
	text, err := g.ai.GenerateText(ctx, "", prompt)
	if err != nil {
		return "", fmt.Errorf("quiz generation failed: %w", err)
	}
	return text, nil
}
