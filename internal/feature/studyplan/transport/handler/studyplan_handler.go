// Package handler はstudyplanフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai_tutor_backend/internal/feature/studyplan/domain/entity"
	"ai_tutor_backend/internal/feature/studyplan/transport/http/dto"
)

// StudyPlanUsecase は学習計画生成のユースケースインターフェースを定義します。
type StudyPlanUsecase interface {
	Plan(ctx context.Context, req entity.PlanRequest) (string, error)
}

// StudyPlanHandler は学習計画のHTTPリクエストを処理します。
type StudyPlanHandler struct {
	uc StudyPlanUsecase
}

// NewStudyPlanHandler は指定されたusecaseでStudyPlanHandlerの新しいインスタンスを生成します。
func NewStudyPlanHandler(uc StudyPlanUsecase) *StudyPlanHandler {
	return &StudyPlanHandler{uc: uc}
}

// Plan は学習状況を受け取り、生成した学習計画を返します。
//
// エンドポイント例:
// POST /api/learning-process
func (h *StudyPlanHandler) Plan(c *gin.Context) {
	var req dto.PlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ReplyResponse{Reply: "invalid request"})
		return
	}

	plan, err := h.uc.Plan(c.Request.Context(), entity.PlanRequest{
		Subject:    req.Subject,
		Chapters:   req.Chapters,
		Deadline:   req.Deadline,
		Marks:      req.Marks,
		StudyHours: req.StudyHours,
	})
	if err != nil {
		slog.Error("study plan generation failed", "subject", req.Subject, "error", err)
		c.JSON(http.StatusBadGateway, dto.ReplyResponse{Reply: "Error generating study plan"})
		return
	}

	c.JSON(http.StatusOK, dto.ReplyResponse{Reply: plan})
}
