// Package dto はquizフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

// GenerateQuizReq はクイズ生成リクエストのペイロードです。
type GenerateQuizReq struct {
	Topic        string `json:"topic" binding:"required"`
	Grade        string `json:"grade" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required,oneof=easy medium hard"`
	NumQuestions int    `json:"numQuestions" binding:"required,min=1,max=20"`
}
