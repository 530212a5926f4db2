// Package dto はstudyplanフィーチャーのHTTPリクエスト/レスポンス型を定義します。
package dto

// PlanReq は学習計画リクエストのペイロードです。
type PlanReq struct {
	Subject    string `json:"subject" binding:"required"`
	Chapters   string `json:"chapters" binding:"required"`
	Deadline   string `json:"deadline" binding:"required"`
	Marks      string `json:"marks" binding:"required"`
	StudyHours string `json:"studyHours" binding:"required"`
}

// ReplyResponse は生成された学習計画を返すレスポンスです。
type ReplyResponse struct {
	Reply string `json:"reply"`
}
