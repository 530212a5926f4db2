// Package handler はchatフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai_tutor_backend/internal/feature/chat/transport/http/dto"
)

// ChatUsecase はチャット中継のユースケースインターフェースを定義します。
type ChatUsecase interface {
	Reply(ctx context.Context, message string) (string, error)
}

// ChatHandler はチャットのHTTPリクエストを処理します。
type ChatHandler struct {
	uc ChatUsecase
}

// NewChatHandler は指定されたusecaseでChatHandlerの新しいインスタンスを生成します。
func NewChatHandler(uc ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Chat は学習者のメッセージをモデルに中継し、応答を返します。
//
// エンドポイント例:
// POST /api/chatbot
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ReplyResponse{Reply: "invalid request"})
		return
	}

	reply, err := h.uc.Reply(c.Request.Context(), req.Message)
	if err != nil {
		slog.Error("chat reply failed", "error", err)
		c.JSON(http.StatusBadGateway, dto.ReplyResponse{Reply: "Error fetching AI response"})
		return
	}

	c.JSON(http.StatusOK, dto.ReplyResponse{Reply: reply})
}
