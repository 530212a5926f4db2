// Package dto はchatフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

// ChatReq はチャットリクエストのペイロードです。
type ChatReq struct {
	Message string `json:"message" binding:"required"`
}

// ReplyResponse はモデルの応答を返すレスポンスです。
type ReplyResponse struct {
	Reply string `json:"reply"`
}
