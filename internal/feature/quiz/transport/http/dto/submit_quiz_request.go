package dto

import "encoding/json"

// SubmitQuizReq はクイズ採点リクエストのペイロードです。
// Quizは生成時に返した本文をそのまま受け取るため、構造を仮定しません。
type SubmitQuizReq struct {
	Quiz    json.RawMessage   `json:"quiz" binding:"required"`
	Answers map[string]string `json:"answers" binding:"required"`
}
