// Package handler はquizフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai_tutor_backend/internal/feature/quiz/domain/entity"
	"ai_tutor_backend/internal/feature/quiz/transport/http/dto"
)

// QuizUsecase はクイズ生成・採点のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuizUsecase interface {
	Generate(ctx context.Context, spec entity.Spec) (string, error)
	Evaluate(ctx context.Context, quiz json.RawMessage, answers map[string]string) (*entity.Evaluation, error)
}

// QuizHandler はクイズ関連のHTTPリクエストを処理します。
type QuizHandler struct {
	uc QuizUsecase
}

// NewQuizHandler は指定されたusecaseでQuizHandlerの新しいインスタンスを生成します。
func NewQuizHandler(uc QuizUsecase) *QuizHandler {
	return &QuizHandler{uc: uc}
}

// Generate はクイズ生成リクエストを処理します。
//
// エンドポイント例:
// POST /api/generate-quiz
func (h *QuizHandler) Generate(c *gin.Context) {
	var req dto.GenerateQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	questions, err := h.uc.Generate(c.Request.Context(), entity.Spec{
		Topic:        req.Topic,
		Grade:        req.Grade,
		Difficulty:   req.Difficulty,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		slog.Error("quiz generation failed", "topic", req.Topic, "error", err)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Failed to generate quiz"})
		return
	}

	c.JSON(http.StatusOK, dto.QuestionsResponse{Questions: questions})
}

// Submit はクイズ採点リクエストを処理します。採点結果をそのままJSONで返します。
//
// エンドポイント例:
// POST /api/submit-quiz
func (h *QuizHandler) Submit(c *gin.Context) {
	var req dto.SubmitQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	evaluation, err := h.uc.Evaluate(c.Request.Context(), req.Quiz, req.Answers)
	if err != nil {
		slog.Error("quiz evaluation failed", "error", err)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Failed to evaluate quiz"})
		return
	}

	c.JSON(http.StatusOK, evaluation)
}
