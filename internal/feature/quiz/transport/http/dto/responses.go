package dto

// QuestionsResponse はクイズ生成レスポンスです。
type QuestionsResponse struct {
	Questions string `json:"questions"`
}

// ErrorResponse はエラーレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}
