// Package usecase はquizフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai_tutor_backend/internal/feature/quiz/domain/entity"
)

const (
	// MaxQuestions は1回の生成で許可する最大問題数です。
	MaxQuestions = 20

	// evaluationSystemPrompt は採点時のシステム指示です。
	evaluationSystemPrompt = "You are an AI tutor that evaluates quiz answers."

	// evaluationPromptTemplate は採点プロンプトのテンプレートです。
	// 応答をJSONのみに制限し、後段の厳密なパースを可能にします。
	evaluationPromptTemplate = "Here is a quiz: %s.\n" +
		"The student answered: %s.\n" +
		"Compare the answers and respond with JSON only, no prose and no markdown fences, " +
		"using exactly this shape: " +
		`{"correctCount": <number of correct answers>, "score": <number of correct answers>, ` +
		`"explanations": [{"question": "...", "correctAnswer": "...", "explanation": "..."}]}. ` +
		"Include one explanations entry per wrongly answered question."
)

// QuizGenerator はクイズ生成を抽象化します。Gemini実装とRedisキャッシュの
// デコレーターがこのインターフェースを実装します。
type QuizGenerator interface {
	// Generate はパラメータに従ってクイズ本文を生成します。
	Generate(ctx context.Context, spec entity.Spec) (string, error)
}

// TextGenerator は役割付きメッセージからの文章生成を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TextGenerator interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
}

// quizUsecase はクイズ生成・採点のビジネスロジックを提供します。
type quizUsecase struct {
	generator QuizGenerator
	ai        TextGenerator
}

// NewQuizUsecase はquizUsecaseの新しいインスタンスを生成します。
func NewQuizUsecase(generator QuizGenerator, ai TextGenerator) *quizUsecase {
	return &quizUsecase{generator: generator, ai: ai}
}

// Generate はパラメータを検証したうえでクイズ本文を生成します。
func (u *quizUsecase) Generate(ctx context.Context, spec entity.Spec) (string, error) {
	if spec.Topic == "" {
		return "", fmt.Errorf("topic is required")
	}
	if spec.NumQuestions < 1 || spec.NumQuestions > MaxQuestions {
		return "", fmt.Errorf("numQuestions must be between 1 and %d", MaxQuestions)
	}
	switch spec.Difficulty {
	case "easy", "medium", "hard":
	default:
		return "", fmt.Errorf("difficulty must be one of easy, medium, hard")
	}

	return u.generator.Generate(ctx, spec)
}

// Evaluate はクイズと解答をAIに採点させ、応答を厳密にパースして返します。
// 応答が期待した形にならない場合はErrMalformedAIResponseを返します。
func (u *quizUsecase) Evaluate(ctx context.Context, quiz json.RawMessage, answers map[string]string) (*entity.Evaluation, error) {
	if len(quiz) == 0 {
		return nil, fmt.Errorf("quiz is required")
	}

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}

	prompt := fmt.Sprintf(evaluationPromptTemplate, string(quiz), string(answersJSON))
	reply, err := u.ai.GenerateText(ctx, evaluationSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("quiz evaluation failed: %w", err)
	}

	return parseEvaluation(reply)
}

// parseEvaluation は外部AIの応答を採点結果としてパースします。
// モデルがマークダウンのコードフェンスで包んでくるケースを吸収したうえで、
// JSONとして不正・形が不一致の応答は明示的に失敗させます。
func parseEvaluation(reply string) (*entity.Evaluation, error) {
	s := strings.TrimSpace(reply)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var ev entity.Evaluation
	if err := json.Unmarshal([]byte(s), &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAIResponse, err)
	}
	if ev.CorrectCount < 0 || ev.Score < 0 {
		return nil, fmt.Errorf("%w: negative counts", ErrMalformedAIResponse)
	}
	return &ev, nil
}
