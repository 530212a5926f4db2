// Package handler はcareerフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai_tutor_backend/internal/feature/career/transport/http/dto"
)

// CareerUsecase は進路相談のユースケースインターフェースを定義します。
type CareerUsecase interface {
	Advise(ctx context.Context, query string) (string, error)
}

// CareerHandler は進路相談のHTTPリクエストを処理します。
type CareerHandler struct {
	uc CareerUsecase
}

// NewCareerHandler は指定されたusecaseでCareerHandlerの新しいインスタンスを生成します。
func NewCareerHandler(uc CareerUsecase) *CareerHandler {
	return &CareerHandler{uc: uc}
}

// Advise は進路相談のクエリを受け取り、モデルのアドバイスを返します。
//
// エンドポイント例:
// POST /api/career-recommendation
func (h *CareerHandler) Advise(c *gin.Context) {
	var req dto.CareerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ReplyResponse{Reply: "invalid request"})
		return
	}

	advice, err := h.uc.Advise(c.Request.Context(), req.Query)
	if err != nil {
		slog.Error("career advice failed", "error", err)
		c.JSON(http.StatusBadGateway, dto.ReplyResponse{Reply: "Error fetching career advice"})
		return
	}

	c.JSON(http.StatusOK, dto.ReplyResponse{Reply: advice})
}
