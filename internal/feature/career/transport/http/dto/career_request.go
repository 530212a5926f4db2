// Package dto はcareerフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

// CareerReq は進路相談リクエストのペイロードです。
type CareerReq struct {
	Query string `json:"query" binding:"required"`
}

// ReplyResponse は進路アドバイスを返すレスポンスです。
type ReplyResponse struct {
	Reply string `json:"reply"`
}
